// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore implements [RevocationStore] in process memory.
//
// It is used when REDIS_URL is not configured. Revocations do not survive a
// restart and are not shared between replicas.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore creates an empty in-memory [RevocationStore].
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		expires: map[string]time.Time{},
		now:     time.Now,
	}
}

func (store *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	for id, expiry := range store.expires {
		if !expiry.After(now) {
			delete(store.expires, id)
		}
	}

	store.expires[tokenID] = now.Add(ttl)
	return nil
}

func (store *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	expiry, ok := store.expires[tokenID]
	return ok && expiry.After(store.now()), nil
}
