// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/sec"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	editor := Editor{Username: "booker", PasswordHash: hash, Role: sec.RoleEditor}
	tokens := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "fyyur.test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewService(editor, tokens, NewMemoryRevocationStore(), time.Hour, logger)
}

/*
TestLogin issues a verifiable token for the configured editor only.
*/
func TestLogin(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, LoginInput{Username: "booker", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Equal(t, string(sec.RoleEditor), session.Role)

	claims, err := service.VerifyToken(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "booker", claims.Username)

	tests := []struct {
		name  string
		input LoginInput
		code  string
	}{
		{"wrong_password", LoginInput{Username: "booker", Password: "nope"}, apperr.CodeUnauthorized},
		{"wrong_username", LoginInput{Username: "admin", Password: "correct horse"}, apperr.CodeUnauthorized},
		{"empty", LoginInput{}, apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(ctx, tt.input)
			assert.True(t, apperr.HasCode(err, tt.code))
		})
	}
}

/*
TestLogout revokes the token until it expires.
*/
func TestLogout(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, LoginInput{Username: "booker", Password: "correct horse"})
	require.NoError(t, err)

	claims, err := service.VerifyToken(ctx, session.AccessToken)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, claims))

	_, err = service.VerifyToken(ctx, session.AccessToken)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	// A second login yields a fresh, unrevoked token id.
	again, err := service.Login(ctx, LoginInput{Username: "booker", Password: "correct horse"})
	require.NoError(t, err)
	_, err = service.VerifyToken(ctx, again.AccessToken)
	assert.NoError(t, err)
}

/*
TestVerifyToken_Garbage rejects tokens that do not parse.
*/
func TestVerifyToken_Garbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.VerifyToken(context.Background(), "not-a-jwt")
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
}

/*
TestMemoryRevocationStore expires entries after their TTL.
*/
func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()
	current := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = store.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)

	current = current.Add(2 * time.Minute)
	revoked, _ = store.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-3", time.Minute))
	assert.NotContains(t, store.expires, "jti-1")
}
