package types

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
)

// Hash is a handle for a Redis hash.
type Hash struct {
	key string
	rdb redis.Cmdable
}

// NewHash returns a hash handle bound to key.
func NewHash(key string, rdb redis.Cmdable) *Hash {
	return &Hash{key: key, rdb: rdb}
}

func (h *Hash) Key() string { return h.key }

func (h *Hash) Kind() Kind { return KindHash }

// Len returns the number of fields.
func (h *Hash) Len(ctx context.Context) (int64, error) {
	return h.rdb.HLen(ctx, h.key).Result()
}

// Items returns all field/value pairs.
func (h *Hash) Items(ctx context.Context) (map[string]string, error) {
	return h.rdb.HGetAll(ctx, h.key).Result()
}

// Get returns the value of field.
func (h *Hash) Get(ctx context.Context, field string) (string, error) {
	return h.rdb.HGet(ctx, h.key, field).Result()
}

// Set writes a single field.
func (h *Hash) Set(ctx context.Context, field string, value any) error {
	s, err := cast.ToStringE(value)
	if err != nil {
		return err
	}
	return h.rdb.HSet(ctx, h.key, field, s).Err()
}

// Contains reports whether field exists.
func (h *Hash) Contains(ctx context.Context, field string) (bool, error) {
	return h.rdb.HExists(ctx, h.key, field).Result()
}

// Delete removes fields from the hash.
func (h *Hash) Delete(ctx context.Context, fields ...string) error {
	return h.rdb.HDel(ctx, h.key, fields...).Err()
}

// Keys returns all field names.
func (h *Hash) Keys(ctx context.Context) ([]string, error) {
	return h.rdb.HKeys(ctx, h.key).Result()
}
