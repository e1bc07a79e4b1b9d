package types

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Int is a handle for an integer stored through the string encoding.
type Int struct {
	key string
	rdb redis.Cmdable
}

// NewInt returns an integer handle bound to key.
func NewInt(key string, rdb redis.Cmdable) *Int {
	return &Int{key: key, rdb: rdb}
}

func (i *Int) Key() string { return i.key }

func (i *Int) Kind() Kind { return KindInt }

// Value reads and parses the current value.
func (i *Int) Value(ctx context.Context) (int64, error) {
	raw, err := i.rdb.Get(ctx, i.key).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Assign overwrites the value with v.
func (i *Int) Assign(ctx context.Context, v int64) error {
	return i.rdb.Set(ctx, i.key, v, 0).Err()
}

// Incr increments the value by one and returns the result.
func (i *Int) Incr(ctx context.Context) (int64, error) {
	return i.rdb.Incr(ctx, i.key).Result()
}

// IncrBy increments the value by delta and returns the result.
func (i *Int) IncrBy(ctx context.Context, delta int64) (int64, error) {
	return i.rdb.IncrBy(ctx, i.key, delta).Result()
}

// Decr decrements the value by one and returns the result.
func (i *Int) Decr(ctx context.Context) (int64, error) {
	return i.rdb.Decr(ctx, i.key).Result()
}
