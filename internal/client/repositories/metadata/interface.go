// Package metadata persists small key/value pairs in the local session
// database. The session store keeps the bearer credential and the cached
// role here.
package metadata

import (
	"context"
)

// Repository is a key/value store. List with no keys returns every pair;
// keys that are absent are simply missing from the map.
type Repository interface {
	Set(ctx context.Context, key string, value []byte) error
	List(ctx context.Context, keys ...string) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

var _ Repository = (*SQLiteRepository)(nil)
