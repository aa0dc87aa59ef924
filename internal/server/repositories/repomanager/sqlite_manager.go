package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/pawsome/internal/dbx"
	"github.com/dmitrijs2005/pawsome/internal/server/migrations"
	"github.com/dmitrijs2005/pawsome/internal/server/repositories/accounts"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. Used for local
// development and the end-to-end tests.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, migrations.Migrations, "sqlite3", migrations.SQLiteDir)
}
