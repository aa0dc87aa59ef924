package client

import "errors"

var (
	ErrUnavailable    = errors.New("cannot connect to server")
	ErrServerResponse = errors.New("unexpected server response")
)
