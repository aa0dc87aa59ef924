// Package services contains the server-side account logic: signup and login.
// Both services borrow one connection per call and return it on every path.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/pawsome/internal/common"
	"github.com/dmitrijs2005/pawsome/internal/dbx"
	"github.com/dmitrijs2005/pawsome/internal/server/auth"
	"github.com/dmitrijs2005/pawsome/internal/server/models"
	"github.com/dmitrijs2005/pawsome/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pawsome/internal/validate"
	"github.com/google/uuid"
)

// SignupRequest is one registration submission as received from the form.
type SignupRequest struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

type SignupService struct {
	db          dbx.Connector
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	now         func() time.Time
}

func NewSignupService(db dbx.Connector, m repomanager.RepositoryManager, h auth.PasswordHasher) *SignupService {
	return &SignupService{
		db:          db,
		repomanager: m,
		hasher:      h,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Signup validates req and creates the account.
//
// Errors:
//   - *common.StorageError of kind ErrorStorageUnavailable when no connection
//     could be acquired (nothing else is evaluated);
//   - *ValidationError with every violated rule, the duplicate-email check
//     included;
//   - *common.StorageError of kind ErrorStorage or ErrorAccountCreate for
//     lookup and insert failures;
//   - an error wrapping common.ErrorInternal when hashing fails.
func (s *SignupService) Signup(ctx context.Context, req SignupRequest) error {
	return dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		repo := s.repomanager.Accounts(conn)

		name := strings.TrimSpace(req.FullName)
		email := strings.TrimSpace(req.Email)
		phone := strings.TrimSpace(req.Phone)

		var violations []string
		if !validate.FullName(name) {
			violations = append(violations, MsgNameTooShort)
		}
		if !validate.Email(email) {
			violations = append(violations, MsgInvalidEmail)
		}
		if !validate.Phone(phone) {
			violations = append(violations, MsgInvalidPhone)
		}
		switch {
		case !validate.Password(req.Password):
			violations = append(violations, MsgPasswordTooShort)
		case !validate.PasswordFits(req.Password):
			violations = append(violations, MsgPasswordTooLong)
		}
		if !validate.PasswordsMatch(req.Password, req.ConfirmPassword) {
			violations = append(violations, MsgPasswordMismatch)
		}

		_, err := repo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			violations = append(violations, MsgEmailRegistered)
		case !errors.Is(err, common.ErrorNotFound):
			return storageError(common.ErrorStorage, err)
		}

		if len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
		}

		account := &models.Account{
			ID:           uuid.NewString(),
			FullName:     name,
			Email:        email,
			Phone:        validate.NormalizePhone(phone),
			PasswordHash: hash,
			CreatedAt:    s.now(),
		}

		if err := repo.Create(ctx, account); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return &ValidationError{Violations: []string{MsgEmailRegistered}}
			}
			return storageError(common.ErrorAccountCreate, err)
		}
		return nil
	})
}
