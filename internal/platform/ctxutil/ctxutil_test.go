// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// 1. Falls back to the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Editor verifies that editor claims travel through the context.
*/
func TestContext_Editor(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetEditor(ctx))

	ctx = ctxutil.WithEditor(ctx, &sec.AuthClaims{Username: "booker", Role: string(sec.RoleEditor)})
	editor := ctxutil.GetEditor(ctx)

	if assert.NotNil(t, editor) {
		assert.Equal(t, "booker", editor.Username)
		assert.Equal(t, "editor", editor.Role)
	}
}
