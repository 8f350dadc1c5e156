package settings

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const prefsKey = "settings:preferences"

// Defaults applied when nothing has been stored yet.
var defaultPrefs = map[string]any{
	"theme":         "light",
	"notifications": true,
}

// Store persists user preferences in Redis with an explicit read/patch
// contract; no process-global mutable state.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get returns the stored preferences, or the defaults if none exist.
func (s *Store) Get(ctx context.Context) (map[string]any, error) {
	b, err := s.rdb.Get(ctx, prefsKey).Bytes()
	if err == redis.Nil {
		return clone(defaultPrefs), nil
	}
	if err != nil {
		return nil, err
	}
	var prefs map[string]any
	if err := json.Unmarshal(b, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// Patch merges updates over the current preferences and persists the result.
func (s *Store) Patch(ctx context.Context, updates map[string]any) (map[string]any, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	for k, v := range updates {
		prefs[k] = v
	}
	b, err := json.Marshal(prefs)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, prefsKey, b, 0).Err(); err != nil {
		return nil, err
	}
	return prefs, nil
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
