// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth authenticates the editors allowed to change listings.
//
// # Architecture
//
// Fyyur has a single configured editor account. Login checks its bcrypt hash
// and issues a short-lived RS256 access token. Logout revokes the token's id
// until the token would have expired anyway, so the revocation list never
// outgrows the set of live tokens.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/sec"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// TokenProvider issues and verifies signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(username string, role sec.UserRole, timeToLive time.Duration) (string, *sec.AuthClaims, error)
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Editor is the account allowed to mutate listings.
type Editor struct {
	Username     string
	PasswordHash string
	Role         sec.UserRole
}

// Service implements editor login, logout and token verification.
type Service struct {
	editor   Editor
	tokens   TokenProvider
	revoked  RevocationStore
	tokenTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs an auth [Service].
func NewService(editor Editor, tokens TokenProvider, revoked RevocationStore, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		editor:   editor,
		tokens:   tokens,
		revoked:  revoked,
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the token pair returned by a successful login.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}

/*
Login validates the editor credentials and issues an access token.

Returns:
  - *Session: the signed token and its expiry
  - error: VALIDATION_ERROR for empty fields, UNAUTHORIZED for a bad username or password
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	validator := &validate.Validator{}
	validator.Required("username", input.Username).Required("password", input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// The hash is always checked so a wrong username costs the same as a wrong password.
	usernameMatches := subtle.ConstantTimeCompare([]byte(input.Username), []byte(service.editor.Username)) == 1
	passwordMatches := sec.CheckPasswordHash(input.Password, service.editor.PasswordHash)

	if !usernameMatches || !passwordMatches {
		service.logger.WarnContext(ctx, "editor_login_failed", slog.String("username", input.Username))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	token, claims, err := service.tokens.GenerateAccessToken(service.editor.Username, service.editor.Role, service.tokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	service.logger.InfoContext(ctx, "editor_logged_in",
		slog.String("username", claims.Username),
		slog.String("token_id", claims.TokenID()),
	)

	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.Expiry(),
		Username:    claims.Username,
		Role:        claims.Role,
	}, nil
}

// Logout revokes the token described by claims for the rest of its lifetime.
// Logging out an already expired token is a no-op.
func (service *Service) Logout(ctx context.Context, claims *sec.AuthClaims) error {
	remaining := claims.Expiry().Sub(service.now())
	if remaining <= 0 {
		return nil
	}

	if err := service.revoked.Revoke(ctx, claims.TokenID(), remaining); err != nil {
		return apperr.Persistence(fmt.Errorf("auth_service_revoke_failed: %w", err))
	}

	service.logger.InfoContext(ctx, "editor_logged_out",
		slog.String("username", claims.Username),
		slog.String("token_id", claims.TokenID()),
	)
	return nil
}

// VerifyToken checks the signature and expiry of token and rejects revoked ids.
// It satisfies middleware.TokenVerifier.
func (service *Service) VerifyToken(ctx context.Context, token string) (*sec.AuthClaims, error) {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	revoked, err := service.revoked.IsRevoked(ctx, claims.TokenID())
	if err != nil {
		return nil, apperr.Persistence(fmt.Errorf("auth_service_revocation_lookup_failed: %w", err))
	}
	if revoked {
		return nil, apperr.Unauthorized("Token has been revoked")
	}

	return claims, nil
}
