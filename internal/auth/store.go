// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// RevocationStore remembers revoked token ids until they expire.
type RevocationStore interface {
	// Revoke blocks tokenID for ttl.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether tokenID is currently blocked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
