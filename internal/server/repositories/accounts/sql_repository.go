package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pawsome/internal/common"
	"github.com/dmitrijs2005/pawsome/internal/dbx"
	"github.com/dmitrijs2005/pawsome/internal/server/models"
)

// dialect carries the driver specific parts of the account queries.
type dialect struct {
	findByEmail       string
	insert            string
	isUniqueViolation func(error) bool
}

// SQLRepository implements Repository over any dbx.DBTX.
type SQLRepository struct {
	db dbx.DBTX
	d  dialect
}

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, r.d.findByEmail, email).
		Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.PasswordHash, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *SQLRepository) Create(ctx context.Context, a *models.Account) error {
	_, err := r.db.ExecContext(ctx, r.d.insert,
		a.ID, a.FullName, a.Email, a.Phone, a.PasswordHash, a.CreatedAt)

	if err != nil {
		if r.d.isUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
