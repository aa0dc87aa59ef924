package accounts

import (
	"errors"

	"github.com/dmitrijs2005/pawsome/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

var postgresDialect = dialect{
	findByEmail: `SELECT id, fullname, email, phone, password, created_at FROM accounts
		 WHERE email = $1
		 `,
	insert: `INSERT INTO accounts (id, fullname, email, phone, password, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `,
	isUniqueViolation: func(err error) bool {
		var pgErr *pgconn.PgError
		return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
	},
}

// NewPostgresRepository returns a Repository for PostgreSQL through the pgx
// stdlib driver.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, d: postgresDialect}
}
