package proxy

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"

	"github.com/redish-go/redish/pkg/types"
)

// valueKind classifies a native value into the kind that decides its
// serialization. This is the assignment-side counterpart of types.KindOf.
func valueKind(v any) (types.Kind, error) {
	switch v.(type) {
	case nil:
		return types.KindNone, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *types.Int:
		return types.KindInt, nil
	case string, []byte:
		return types.KindString, nil
	case []string, []any, []int:
		return types.KindList, nil
	case map[string]struct{}, map[string]bool:
		return types.KindSet, nil
	case map[string]float64:
		return types.KindSortedSet, nil
	case map[string]string, map[string]any:
		return types.KindHash, nil
	}
	return types.KindNone, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// valueEmpty reports whether a container value has no elements.
func valueEmpty(v any) bool {
	switch c := v.(type) {
	case []string:
		return len(c) == 0
	case []any:
		return len(c) == 0
	case []int:
		return len(c) == 0
	case map[string]struct{}:
		return len(c) == 0
	case map[string]bool:
		return len(c) == 0
	case map[string]float64:
		return len(c) == 0
	case map[string]string:
		return len(c) == 0
	case map[string]any:
		return len(c) == 0
	}
	return false
}

// intValue normalizes an integer-kinded value to int64. Integer handles are
// resolved against the store.
func intValue(ctx context.Context, v any) (int64, error) {
	if h, ok := v.(*types.Int); ok {
		return h.Value(ctx)
	}
	return cast.ToInt64E(v)
}

// stringValue normalizes a string-kinded value to its UTF-8 bytes.
func stringValue(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v.(string)
}

// appendContainer queues the mutations that rebuild a non-empty container
// under key onto pipe. The caller has already queued the DEL and owns Exec.
func appendContainer(ctx context.Context, pipe redis.Pipeliner, key string, kind types.Kind, value any) error {
	switch kind {
	case types.KindList:
		items, err := listItems(value)
		if err != nil {
			return err
		}
		for _, item := range items {
			pipe.RPush(ctx, key, item)
		}
		return nil

	case types.KindSet:
		for _, member := range setMembers(value) {
			pipe.SAdd(ctx, key, member)
		}
		return nil

	case types.KindHash:
		fields, err := cast.ToStringMapStringE(value)
		if err != nil {
			return err
		}
		pipe.HSet(ctx, key, fields)
		return nil

	case types.KindSortedSet:
		for member, score := range value.(map[string]float64) {
			pipe.ZAdd(ctx, key, redis.Z{Score: score, Member: member})
		}
		return nil
	}
	return fmt.Errorf("%w: kind %s is not a container", ErrUnsupportedType, kind)
}

func listItems(value any) ([]string, error) {
	switch items := value.(type) {
	case []string:
		return items, nil
	case []int:
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, cast.ToString(item))
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
}

// setMembers returns the member names of a set-kinded value. For
// map[string]bool the boolean is ignored; membership is keyed presence.
func setMembers(value any) []string {
	switch members := value.(type) {
	case map[string]struct{}:
		out := make([]string, 0, len(members))
		for m := range members {
			out = append(out, m)
		}
		return out
	case map[string]bool:
		out := make([]string, 0, len(members))
		for m := range members {
			out = append(out, m)
		}
		return out
	}
	return nil
}
