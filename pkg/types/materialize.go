package types

import (
	"context"
	"fmt"
)

// Materialize collapses a proxy read result into a native Go value by reading
// the handle's full contents from the store:
//
//	*Int       -> int64
//	*List      -> []string
//	*Set       -> map[string]struct{}
//	*Hash      -> map[string]string
//	*SortedSet -> map[string]float64
//	string     -> string
func Materialize(ctx context.Context, v any) (any, error) {
	switch h := v.(type) {
	case string:
		return h, nil
	case *Int:
		return h.Value(ctx)
	case *List:
		return h.Values(ctx)
	case *Set:
		members, err := h.Members(ctx)
		if err != nil {
			return nil, err
		}
		native := make(map[string]struct{}, len(members))
		for _, m := range members {
			native[m] = struct{}{}
		}
		return native, nil
	case *Hash:
		return h.Items(ctx)
	case *SortedSet:
		return h.Scores(ctx)
	}
	return nil, fmt.Errorf("cannot materialize value of type %T", v)
}
