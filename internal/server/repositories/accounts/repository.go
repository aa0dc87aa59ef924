// Package accounts is the persistent account store.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/pawsome/internal/server/models"
)

// Repository reads and creates accounts.
//
// FindByEmail returns common.ErrorNotFound when no account has the email.
// Create returns common.ErrorAlreadyExists when the email is already taken,
// as reported by the store's uniqueness constraint.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
}
