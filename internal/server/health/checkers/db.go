package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type DBChecker struct {
	name string
	db   Pinger
}

func NewDBChecker(name string, db Pinger) *DBChecker {
	return &DBChecker{name: name, db: db}
}

func (c *DBChecker) Name() string { return c.name }

func (c *DBChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.db.PingContext(ctx)
}
