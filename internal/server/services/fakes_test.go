package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pawsome/internal/common"
	"github.com/dmitrijs2005/pawsome/internal/dbx"
	"github.com/dmitrijs2005/pawsome/internal/server/models"
	"github.com/dmitrijs2005/pawsome/internal/server/repositories/accounts"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory accounts.Repository.
type fakeRepo struct {
	mu       sync.Mutex
	byEmail  map[string]*models.Account
	findErr  error
	createFn func(a *models.Account) error
	finds    int
	creates  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*models.Account{}}
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) Create(_ context.Context, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.createFn != nil {
		if err := r.createFn(a); err != nil {
			return err
		}
	}
	if _, ok := r.byEmail[a.Email]; ok {
		return common.ErrorAlreadyExists
	}
	cp := *a
	r.byEmail[a.Email] = &cp
	return nil
}

// fakeManager hands out the same fakeRepo for any connection.
type fakeManager struct {
	repo *fakeRepo
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeManager) Accounts(dbx.DBTX) accounts.Repository { return m.repo }

// plainHasher is a reversible stand-in for bcrypt.
type plainHasher struct {
	err error
}

func (h plainHasher) Hash(p string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + p, nil
}

func (h plainHasher) Verify(p, hash string) bool { return hash == "hashed:"+p }

// newMockConnector returns a *sql.DB whose connections are backed by sqlmock;
// the services only need to borrow and release them.
func newMockConnector(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func closedConnector(t *testing.T) *sql.DB {
	t.Helper()
	db := newMockConnector(t)
	require.NoError(t, db.Close())
	return db
}

var errDriver = errors.New("driver exploded")

func wrapDB(err error) error {
	return fmt.Errorf("db error: %w", err)
}
