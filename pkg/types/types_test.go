package types_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redish-go/redish/pkg/types"
)

var testCtx = context.Background()

func createClient(t *testing.T) redis.Cmdable {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestIntHandle(t *testing.T) {
	rdb := createClient(t)
	n := types.NewInt("counter", rdb)

	require.NoError(t, n.Assign(testCtx, 10))

	v, err := n.Value(testCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	v, err = n.Incr(testCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), v)

	v, err = n.IncrBy(testCtx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(16), v)

	v, err = n.Decr(testCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), v)
}

func TestListHandle(t *testing.T) {
	rdb := createClient(t)
	l := types.NewList("queue", rdb)

	require.NoError(t, l.Push(testCtx, "a", 2, "c"))

	n, err := l.Len(testCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	values, err := l.Values(testCtx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "2", "c"}, values)

	item, err := l.Index(testCtx, -1)
	require.NoError(t, err)
	assert.Equal(t, "c", item)

	head, err := l.Pop(testCtx)
	require.NoError(t, err)
	assert.Equal(t, "a", head)

	require.NoError(t, l.Remove(testCtx, "c"))
	values, err = l.Values(testCtx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, values)
}

func TestSetHandle(t *testing.T) {
	rdb := createClient(t)
	s := types.NewSet("tags", rdb)

	require.NoError(t, s.Add(testCtx, "go", "redis", 3))

	n, err := s.Len(testCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	ok, err := s.Contains(testCtx, "go")
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := s.Members(testCtx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "redis", "3"}, members)

	require.NoError(t, s.Remove(testCtx, "redis", "3"))

	members, err = s.Members(testCtx)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, members)
}

func TestHashHandle(t *testing.T) {
	rdb := createClient(t)
	h := types.NewHash("user", rdb)

	require.NoError(t, h.Set(testCtx, "name", "ada"))
	require.NoError(t, h.Set(testCtx, "age", 36))

	ok, err := h.Contains(testCtx, "name")
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := h.Get(testCtx, "age")
	require.NoError(t, err)
	assert.Equal(t, "36", v)

	items, err := h.Items(testCtx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "ada", "age": "36"}, items)

	keys, err := h.Keys(testCtx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name", "age"}, keys)

	require.NoError(t, h.Delete(testCtx, "age"))
	n, err := h.Len(testCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSortedSetHandle(t *testing.T) {
	rdb := createClient(t)
	z := types.NewSortedSet("board", rdb)

	require.NoError(t, z.Add(testCtx, "ada", 9))
	require.NoError(t, z.Add(testCtx, "bob", 3))

	n, err := z.Len(testCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	score, err := z.Score(testCtx, "ada")
	require.NoError(t, err)
	assert.Equal(t, float64(9), score)

	members, err := z.Members(testCtx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "ada"}, members)

	scores, err := z.Scores(testCtx)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"ada": 9, "bob": 3}, scores)

	require.NoError(t, z.Remove(testCtx, "bob"))
	members, err = z.Members(testCtx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ada"}, members)
}

func TestMaterialize(t *testing.T) {
	rdb := createClient(t)

	require.NoError(t, rdb.RPush(testCtx, "l", "a", "b").Err())
	require.NoError(t, rdb.SAdd(testCtx, "s", "x").Err())
	require.NoError(t, rdb.HSet(testCtx, "h", "f", "v").Err())
	require.NoError(t, rdb.ZAdd(testCtx, "z", redis.Z{Score: 1.5, Member: "m"}).Err())
	require.NoError(t, rdb.Set(testCtx, "n", 7, 0).Err())

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"string", "plain", "plain"},
		{"int", types.NewInt("n", rdb), int64(7)},
		{"list", types.NewList("l", rdb), []string{"a", "b"}},
		{"set", types.NewSet("s", rdb), map[string]struct{}{"x": {}}},
		{"hash", types.NewHash("h", rdb), map[string]string{"f": "v"}},
		{"zset", types.NewSortedSet("z", rdb), map[string]float64{"m": 1.5}},
	}

	for _, tt := range tests {
		got, err := types.Materialize(testCtx, tt.value)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := types.Materialize(testCtx, 42)
	assert.Error(t, err)
}
