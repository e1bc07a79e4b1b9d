package types

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
)

// List is a handle for a Redis list.
type List struct {
	key string
	rdb redis.Cmdable
}

// NewList returns a list handle bound to key.
func NewList(key string, rdb redis.Cmdable) *List {
	return &List{key: key, rdb: rdb}
}

func (l *List) Key() string { return l.key }

func (l *List) Kind() Kind { return KindList }

// Len returns the list length.
func (l *List) Len(ctx context.Context) (int64, error) {
	return l.rdb.LLen(ctx, l.key).Result()
}

// Values returns all elements in list order.
func (l *List) Values(ctx context.Context) ([]string, error) {
	return l.rdb.LRange(ctx, l.key, 0, -1).Result()
}

// Index returns the element at position i (negative counts from the tail).
func (l *List) Index(ctx context.Context, i int64) (string, error) {
	return l.rdb.LIndex(ctx, l.key, i).Result()
}

// Push appends values to the tail of the list.
func (l *List) Push(ctx context.Context, values ...any) error {
	args := make([]any, 0, len(values))
	for _, v := range values {
		s, err := cast.ToStringE(v)
		if err != nil {
			return err
		}
		args = append(args, s)
	}
	return l.rdb.RPush(ctx, l.key, args...).Err()
}

// Pop removes and returns the head of the list.
func (l *List) Pop(ctx context.Context) (string, error) {
	return l.rdb.LPop(ctx, l.key).Result()
}

// Remove deletes all occurrences of value from the list.
func (l *List) Remove(ctx context.Context, value string) error {
	return l.rdb.LRem(ctx, l.key, 0, value).Err()
}
