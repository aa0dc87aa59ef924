package accounts

import (
	"errors"

	"github.com/dmitrijs2005/pawsome/internal/dbx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var sqliteDialect = dialect{
	findByEmail: `SELECT id, fullname, email, phone, password, created_at FROM accounts
		 WHERE email = ?
		 `,
	insert: `INSERT INTO accounts (id, fullname, email, phone, password, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 `,
	isUniqueViolation: func(err error) bool {
		var sqErr *sqlite.Error
		if !errors.As(err, &sqErr) {
			return false
		}
		return sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	},
}

// NewSQLiteRepository returns a Repository for SQLite through the
// modernc.org/sqlite driver.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, d: sqliteDialect}
}
