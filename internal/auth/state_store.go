package auth

import (
	"context"
	"time"

	"xogame/internal/cache"
)

const stateKeyPrefix = "oauth_state:"

// StateStoreInterface defines single-use OAuth state operations.
type StateStoreInterface interface {
	Issue(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

// StateStore keeps OAuth CSRF states in Redis so the callback can verify
// them server side instead of trusting a client cookie. States are
// single use: Consume removes the entry.
type StateStore struct {
	cache *cache.Client
}

// Ensure StateStore implements StateStoreInterface
var _ StateStoreInterface = (*StateStore)(nil)

// NewStateStore creates a new state store.
func NewStateStore(cache *cache.Client) *StateStore {
	return &StateStore{cache: cache}
}

// Issue records a state nonce with a TTL.
func (s *StateStore) Issue(ctx context.Context, state string, ttl time.Duration) error {
	return s.cache.Set(ctx, stateKeyPrefix+state, []byte("1"), ttl)
}

// Consume reports whether the state was previously issued and removes it,
// so a replayed callback with the same state is rejected.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	key := stateKeyPrefix + state
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return false, nil
	}
	_ = s.cache.Delete(ctx, key)
	return true, nil
}
