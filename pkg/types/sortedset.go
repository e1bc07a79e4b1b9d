package types

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// SortedSet is a handle for a Redis sorted set.
type SortedSet struct {
	key string
	rdb redis.Cmdable
}

// NewSortedSet returns a sorted set handle bound to key.
func NewSortedSet(key string, rdb redis.Cmdable) *SortedSet {
	return &SortedSet{key: key, rdb: rdb}
}

func (z *SortedSet) Key() string { return z.key }

func (z *SortedSet) Kind() Kind { return KindSortedSet }

// Len returns the sorted set cardinality.
func (z *SortedSet) Len(ctx context.Context) (int64, error) {
	return z.rdb.ZCard(ctx, z.key).Result()
}

// Members returns all members ordered by ascending score.
func (z *SortedSet) Members(ctx context.Context) ([]string, error) {
	return z.rdb.ZRange(ctx, z.key, 0, -1).Result()
}

// Scores returns all members with their scores.
func (z *SortedSet) Scores(ctx context.Context) (map[string]float64, error) {
	pairs, err := z.rdb.ZRangeWithScores(ctx, z.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		member, ok := pair.Member.(string)
		if !ok {
			continue
		}
		scores[member] = pair.Score
	}
	return scores, nil
}

// Score returns the score of member.
func (z *SortedSet) Score(ctx context.Context, member string) (float64, error) {
	return z.rdb.ZScore(ctx, z.key, member).Result()
}

// Add inserts member with the given score, updating the score if member
// already exists.
func (z *SortedSet) Add(ctx context.Context, member string, score float64) error {
	return z.rdb.ZAdd(ctx, z.key, redis.Z{Score: score, Member: member}).Err()
}

// Remove deletes members from the sorted set.
func (z *SortedSet) Remove(ctx context.Context, members ...string) error {
	args := make([]any, 0, len(members))
	for _, m := range members {
		args = append(args, m)
	}
	return z.rdb.ZRem(ctx, z.key, args...).Err()
}
