package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAccount() *Account {
	return &Account{
		ID:           "7d0e5c1a-0000-4000-8000-000000000001",
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "5551234567",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(sampleAccount())
	assert.Equal(t, Session{
		UserID:       "7d0e5c1a-0000-4000-8000-000000000001",
		UserFullName: "Jane Doe",
		UserEmail:    "jane@example.com",
	}, s)
}

func TestAccountSummary_JSONOmitsSecrets(t *testing.T) {
	b, err := json.Marshal(NewAccountSummary(sampleAccount()))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"7d0e5c1a-0000-4000-8000-000000000001","name":"Jane Doe","email":"jane@example.com"}`, string(b))
	assert.NotContains(t, string(b), "$2a$")
	assert.NotContains(t, string(b), "555")
}
