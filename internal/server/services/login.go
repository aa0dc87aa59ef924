package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pawsome/internal/common"
	"github.com/dmitrijs2005/pawsome/internal/dbx"
	"github.com/dmitrijs2005/pawsome/internal/server/auth"
	"github.com/dmitrijs2005/pawsome/internal/server/models"
	"github.com/dmitrijs2005/pawsome/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pawsome/internal/validate"
)

type LoginRequest struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginResult is what a verified login produces. The caller stores Session
// server-side and, when RememberToken is set, hands it to the client.
type LoginResult struct {
	Account       models.AccountSummary
	Session       models.Session
	RememberToken string
}

type LoginService struct {
	db          dbx.Connector
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	newToken    func() (string, error)
}

func NewLoginService(db dbx.Connector, m repomanager.RepositoryManager, h auth.PasswordHasher) *LoginService {
	return &LoginService{
		db:          db,
		repomanager: m,
		hasher:      h,
		newToken:    auth.NewRememberToken,
	}
}

// Login checks req against the stored account. Failures are, in order of
// evaluation: common.ErrorMissingFields, common.ErrorInvalidEmail,
// common.ErrorAccountNotFound and common.ErrorIncorrectPassword. Storage
// failures are reported as *common.StorageError.
func (s *LoginService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var result *LoginResult

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		email := strings.TrimSpace(req.Email)

		if email == "" || req.Password == "" {
			return common.ErrorMissingFields
		}
		if !validate.Email(email) {
			return common.ErrorInvalidEmail
		}

		account, err := s.repomanager.Accounts(conn).FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorAccountNotFound
			}
			return storageError(common.ErrorStorage, err)
		}

		if !s.hasher.Verify(req.Password, account.PasswordHash) {
			return common.ErrorIncorrectPassword
		}

		result = &LoginResult{
			Account: models.NewAccountSummary(account),
			Session: models.NewSession(account),
		}

		if req.RememberMe {
			token, err := s.newToken()
			if err != nil {
				return fmt.Errorf("%w: remember token: %v", common.ErrorInternal, err)
			}
			result.RememberToken = token
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
