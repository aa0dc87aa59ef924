package services

import (
	"context"

	"github.com/dmitrijs2005/pawsome/internal/dbx"
)

// checkConnection borrows a connection and hands it straight back. The error,
// if any, is a *common.StorageError of kind ErrorStorageUnavailable.
func checkConnection(ctx context.Context, db dbx.Connector) error {
	return dbx.WithConn(ctx, db, func(context.Context, dbx.DBTX) error { return nil })
}

// CheckConnection reports whether a storage connection can be acquired.
// Requests that are rejected before any field is read still answer with the
// storage failure first.
func (s *SignupService) CheckConnection(ctx context.Context) error {
	return checkConnection(ctx, s.db)
}

func (s *LoginService) CheckConnection(ctx context.Context) error {
	return checkConnection(ctx, s.db)
}
