package types

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
)

// Set is a handle for a Redis set.
type Set struct {
	key string
	rdb redis.Cmdable
}

// NewSet returns a set handle bound to key.
func NewSet(key string, rdb redis.Cmdable) *Set {
	return &Set{key: key, rdb: rdb}
}

func (s *Set) Key() string { return s.key }

func (s *Set) Kind() Kind { return KindSet }

// Len returns the set cardinality.
func (s *Set) Len(ctx context.Context) (int64, error) {
	return s.rdb.SCard(ctx, s.key).Result()
}

// Members returns all members in unspecified order.
func (s *Set) Members(ctx context.Context) ([]string, error) {
	return s.rdb.SMembers(ctx, s.key).Result()
}

// Contains reports whether member is in the set.
func (s *Set) Contains(ctx context.Context, member string) (bool, error) {
	return s.rdb.SIsMember(ctx, s.key, member).Result()
}

// Add inserts members into the set.
func (s *Set) Add(ctx context.Context, members ...any) error {
	args := make([]any, 0, len(members))
	for _, m := range members {
		str, err := cast.ToStringE(m)
		if err != nil {
			return err
		}
		args = append(args, str)
	}
	return s.rdb.SAdd(ctx, s.key, args...).Err()
}

// Remove deletes members from the set.
func (s *Set) Remove(ctx context.Context, members ...string) error {
	args := make([]any, 0, len(members))
	for _, m := range members {
		args = append(args, m)
	}
	return s.rdb.SRem(ctx, s.key, args...).Err()
}
