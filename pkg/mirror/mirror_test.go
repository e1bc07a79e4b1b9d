package mirror_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redish-go/redish/pkg/mirror"
	"github.com/redish-go/redish/pkg/proxy"
	"github.com/redish-go/redish/pkg/types"
)

var testCtx = context.Background()

func createKeyspaces(t *testing.T) (source, target *proxy.Namespaced) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	p := proxy.New(rdb)

	source, err := p.Namespaced("src:%s")
	require.NoError(t, err)
	target, err = p.Namespaced("dst:%s")
	require.NoError(t, err)
	return source, target
}

func TestMirrorOnce(t *testing.T) {
	source, target := createKeyspaces(t)

	expected := map[string]any{
		"greeting": "hello",
		"counter":  int64(42),
		"queue":    []string{"a", "b", "c"},
		"tags":     map[string]struct{}{"x": {}, "y": {}},
		"user":     map[string]string{"name": "ada"},
		"board":    map[string]float64{"ada": 9, "bob": 3},
	}
	for key, value := range expected {
		require.NoError(t, source.Set(testCtx, key, value))
	}
	// Empty containers are invisible to pattern listing; mirror by key.
	require.NoError(t, source.Set(testCtx, "empty", map[string]string{}))

	manager, err := mirror.Start(source, target,
		mirror.WithPatterns("*"),
		mirror.WithKeys("empty"),
		mirror.WithRunOnce(),
	)
	require.NoError(t, err)
	manager.Wait()

	for key, want := range expected {
		value, err := target.Get(testCtx, key)
		require.NoError(t, err, key)

		// Counter comes back as an int handle; compare through Materialize
		// like any other value.
		native, err := types.Materialize(testCtx, value)
		require.NoError(t, err, key)
		assert.Equal(t, want, native, key)
	}

	ok, err := target.Contains(testCtx, "empty")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMirrorPeriodic(t *testing.T) {
	source, target := createKeyspaces(t)

	require.NoError(t, source.Set(testCtx, "a", "value-a"))

	manager, err := mirror.Start(source, target,
		mirror.WithKeys("a"),
		mirror.WithPeriod(10*time.Millisecond),
	)
	require.NoError(t, err)

	// Wait for at least the first pass, then stop
	time.Sleep(50 * time.Millisecond)
	manager.Stop()
	manager.Wait()

	got, err := target.Get(testCtx, "a")
	require.NoError(t, err)
	assert.Equal(t, "value-a", got)
}

func TestMirrorValidation(t *testing.T) {
	source, target := createKeyspaces(t)

	_, err := mirror.Start(nil, target, mirror.WithKeys("a"))
	assert.Error(t, err)

	_, err = mirror.Start(source, nil, mirror.WithKeys("a"))
	assert.Error(t, err)

	_, err = mirror.Start(source, target)
	assert.Error(t, err)
}

func TestMirrorBadSchedule(t *testing.T) {
	source, target := createKeyspaces(t)

	_, err := mirror.Start(source, target,
		mirror.WithKeys("a"),
		mirror.WithSchedule("not a schedule"),
	)
	assert.Error(t, err)
}

func TestJobGetSchedule(t *testing.T) {
	job := &mirror.Job{}
	assert.Equal(t, mirror.DefaultJobSchedule, job.GetSchedule())

	job.Schedule = "definitely not cron"
	assert.Equal(t, mirror.DefaultJobSchedule, job.GetSchedule())

	job.Schedule = "@daily"
	assert.Equal(t, "@daily", job.GetSchedule())
}
