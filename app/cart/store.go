package cart

import (
	"sync"
	"time"

	"github.com/Bamimore2000/borokini/pkg/cache"
)

// Store persists cart snapshots between requests. Implementations must
// tolerate concurrent calls for different keys; a single key is only ever
// touched by one request at a time (the session is the scope).
type Store interface {
	Load(key string) (State, bool)
	Save(key string, state State) error
}

// ── Redis store ──────────────────────────────────────────────────────────────

const cartTTL = 7 * 24 * time.Hour

func redisKey(key string) string { return "borokini:cart:" + key }

// RedisStore keeps carts in Redis via pkg/cache. When Redis is down Load
// reports a miss and Save silently no-ops, matching the cache package's
// degrade-to-empty behaviour.
type RedisStore struct{}

func NewRedisStore() *RedisStore { return &RedisStore{} }

func (s *RedisStore) Load(key string) (State, bool) {
	var st State
	if cache.Get(redisKey(key), &st) {
		return st, true
	}
	return State{}, false
}

func (s *RedisStore) Save(key string, state State) error {
	return cache.Set(redisKey(key), state, cartTTL)
}

// ── Memory store ─────────────────────────────────────────────────────────────

// MemoryStore is a map-backed Store for tests and single-process dev runs.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (s *MemoryStore) Load(key string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[key]
	return st, ok
}

func (s *MemoryStore) Save(key string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy the items slice so later mutations don't alias the saved state.
	items := make([]Item, len(state.Items))
	copy(items, state.Items)
	state.Items = items
	s.states[key] = state
	return nil
}
