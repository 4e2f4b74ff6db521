// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return NewTokenServiceFromKeys(key, &key.PublicKey, "fyyur.test")
}

/*
TestRole_AtLeast checks the editor/admin hierarchy.
*/
func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleEditor))
	assert.True(t, RoleEditor.AtLeast(RoleEditor))
	assert.False(t, RoleEditor.AtLeast(RoleAdmin))
	assert.False(t, UserRole("guest").AtLeast(RoleEditor))

	_, ok := ParseRole("moderator")
	assert.False(t, ok)

	role, ok := ParseRole("editor")
	assert.True(t, ok)
	assert.Equal(t, RoleEditor, role)
}

/*
TestTokenService_RoundTrip issues and verifies an access token.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	token, issued, err := service.GenerateAccessToken("booker", RoleEditor, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, issued.TokenID())

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "booker", claims.Username)
	assert.Equal(t, string(RoleEditor), claims.Role)
	assert.Equal(t, issued.TokenID(), claims.TokenID())
	assert.WithinDuration(t, issued.Expiry(), claims.Expiry(), time.Second)
}

/*
TestTokenService_Rejections covers expiry, tampering and foreign keys.
*/
func TestTokenService_Rejections(t *testing.T) {
	service := newTestTokenService(t)

	t.Run("expired", func(t *testing.T) {
		token, _, err := service.GenerateAccessToken("booker", RoleEditor, time.Minute)
		require.NoError(t, err)

		service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { service.now = time.Now }()

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		token, _, err := service.GenerateAccessToken("booker", RoleEditor, time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other_signer", func(t *testing.T) {
		other := newTestTokenService(t)
		token, _, err := other.GenerateAccessToken("booker", RoleAdmin, time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

/*
TestPasswordHash verifies bcrypt hashing helpers.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
