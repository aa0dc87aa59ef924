// Package services contains application services for the Pawsome CLI.
// This file defines the profile service: remembering the signed-in account
// between runs and forgetting it on logout.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/pawsome/internal/client/models"
	"github.com/dmitrijs2005/pawsome/internal/client/repositories/profile"
	"github.com/dmitrijs2005/pawsome/internal/dbx"
)

// Profile keys.
const (
	KeyUser       = "user"
	KeyIsLoggedIn = "isLoggedIn"
)

// ProfileService persists the account summary returned by a login.
//
// Contract:
//   - Save: store the user and mark the profile logged in, atomically.
//   - Load: return the stored user, or (nil, nil) when nobody is logged in.
//   - Clear: forget everything stored locally.
type ProfileService interface {
	Save(ctx context.Context, u *models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

type profileService struct {
	db *sql.DB
}

func NewProfileService(db *sql.DB) ProfileService {
	return &profileService{db: db}
}

func (s *profileService) repo(db dbx.DBTX) profile.Repository {
	return profile.NewSQLiteRepository(db)
}

func (s *profileService) Save(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("save profile: nil user")
	}
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, KeyUser, data); err != nil {
			return err
		}
		return r.Set(ctx, KeyIsLoggedIn, []byte("true"))
	})
}

func (s *profileService) Load(ctx context.Context) (*models.User, error) {
	r := s.repo(s.db)

	flag, err := r.Get(ctx, KeyIsLoggedIn)
	if err != nil {
		return nil, err
	}
	if string(flag) != "true" {
		return nil, nil
	}

	data, err := r.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &u, nil
}

func (s *profileService) Clear(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}
