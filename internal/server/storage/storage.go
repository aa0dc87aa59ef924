// Package storage opens the account database and brings its schema up to date.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pawsome/internal/logging"
	"github.com/dmitrijs2005/pawsome/internal/server/repositories/repomanager"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// Open prepares a connection pool for driver ("pgx" or "sqlite") and returns
// it with the matching repository manager. No connection is made here; an
// unreachable database surfaces on first use.
func Open(driver, dsn string) (*sql.DB, repomanager.RepositoryManager, error) {
	m, err := repomanager.New(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, m, nil
}

// MigrateOptions bounds the startup migration loop.
type MigrateOptions struct {
	Attempts int
	Delay    time.Duration
}

var DefaultMigrateOptions = MigrateOptions{Attempts: 5, Delay: 2 * time.Second}

// Migrate runs m's migrations, retrying while the database comes up. It
// returns the last error once the attempts are used or ctx is done.
func Migrate(ctx context.Context, db *sql.DB, m repomanager.RepositoryManager, opts MigrateOptions, log logging.Logger) error {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}

	var err error
	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		if err = m.RunMigrations(ctx, db); err == nil {
			return nil
		}
		log.Warn(ctx, "migrations failed", "attempt", attempt, "of", opts.Attempts, "error", err)

		if attempt == opts.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Delay):
		}
	}
	return fmt.Errorf("migrations: %w", err)
}
