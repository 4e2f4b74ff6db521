// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")
	t.Setenv("EDITOR_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

/*
TestLoad_Defaults verifies defaults for the memory driver.
*/
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, "admin", cfg.EditorUsername)
	assert.Equal(t, "./data/migrations", cfg.MigrationPath)
}

/*
TestLoad_Failures covers missing and inconsistent settings.
*/
func TestLoad_Failures(t *testing.T) {
	t.Run("postgres_without_url", func(t *testing.T) {
		setRequired(t)
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := config.Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("unknown_driver", func(t *testing.T) {
		setRequired(t)
		t.Setenv("STORE_DRIVER", "sqlite")

		_, err := config.Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("unknown_role", func(t *testing.T) {
		setRequired(t)
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("EDITOR_ROLE", "root")

		_, err := config.Load()
		assert.ErrorContains(t, err, "EDITOR_ROLE")
	})

	t.Run("missing_required", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("JWT_PRIVATE_KEY_PATH", "")
		t.Setenv("EDITOR_PASSWORD_HASH", "")

		_, err := config.Load()
		assert.Error(t, err)
	})
}

/*
TestAllowedOrigin matches the configured production suffix.
*/
func TestAllowedOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOriginSuffix: "fyyur.app"}
	assert.True(t, cfg.AllowedOrigin("https://www.fyyur.app"))
	assert.False(t, cfg.AllowedOrigin("https://evil.example"))
	assert.False(t, (&config.Config{}).AllowedOrigin("https://www.fyyur.app"))
}
