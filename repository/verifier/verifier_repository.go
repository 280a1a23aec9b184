package verifier

import (
	"context"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/estoquehub/sync-engine/cmd/redis"
)

// Store keeps PKCE verifiers keyed by the opaque authorization state for a
// short TTL. It is injected into the account application so tests can build
// isolated instances instead of sharing module-level state.
type Store interface {
	Put(ctx context.Context, state, value string, ttl time.Duration) error
	// Take returns the stored value and removes it; "" when the state is
	// unknown or expired.
	Take(ctx context.Context, state string) (string, error)
}

const keyPrefix = "pkce:"

type redisStore struct{}

// NewRedisStore returns a Store backed by the shared Redis client. Expiry is
// delegated to Redis key TTLs.
func NewRedisStore() Store {
	return &redisStore{}
}

func (s *redisStore) Put(ctx context.Context, state, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, keyPrefix+state, value, ttl).Err()
}

func (s *redisStore) Take(ctx context.Context, state string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.GetDel(ctx, keyPrefix+state).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an in-process Store. Expired entries are purged
// opportunistically on every lookup.
func NewMemoryStore() Store {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *memoryStore) Put(_ context.Context, state, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[state] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *memoryStore) Take(_ context.Context, state string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}

	e, ok := s.entries[state]
	if !ok {
		return "", nil
	}
	delete(s.entries, state)
	return e.value, nil
}
