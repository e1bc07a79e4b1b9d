// Package proxy maps native Go container values onto a Redis keyspace. Reads
// return typed handles bound to the key, writes serialize containers into the
// matching Redis structure, and assigned-but-empty containers are remembered
// locally so their type survives the store reporting the key absent.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/redish-go/redish/pkg/types"
)

var (
	// ErrNotFound is returned by Get for a key with no value and no
	// empty-container record.
	ErrNotFound = errors.New("proxy: key not found")

	// ErrUnsupportedType is returned by Set for values with no mapping to a
	// store structure.
	ErrUnsupportedType = errors.New("proxy: unsupported value type")

	// ErrBadTemplate is returned by Namespaced for format strings without
	// exactly one %s slot.
	ErrBadTemplate = errors.New("proxy: namespace template must contain exactly one %s")
)

// Keyspace is the key-shaped surface shared by Proxy and Namespaced.
type Keyspace interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any) error
	Contains(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	DeleteMatch(ctx context.Context, pattern string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
	Iterate(ctx context.Context, pattern string) (*Iter, error)
}

// Proxy wraps a Redis client with container-shaped access. It is a synchronous
// façade: no retries, no timeouts beyond the context, and client errors
// propagate to the caller unmodified.
//
// The empties registry is guarded so registry updates are atomic with respect
// to each other, but not with respect to store round-trips; concurrent writers
// racing on the same key can lose an empty-container record.
type Proxy struct {
	rdb    redis.Cmdable
	logger logrus.FieldLogger

	mu      sync.Mutex
	empties map[string]types.Handle
}

// Option customizes Proxy behavior.
type Option func(*Proxy)

// WithLogger specifies the logger used for operation logging.
// Defaults to the standard logrus logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Proxy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Proxy over rdb. The client stays owned by the caller; the
// proxy never closes it.
func New(rdb redis.Cmdable, opts ...Option) *Proxy {
	p := &Proxy{
		rdb:     rdb,
		logger:  logrus.StandardLogger(),
		empties: make(map[string]types.Handle),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Conn returns the underlying client for connection-level operations that
// must not go through key rewriting.
func (p *Proxy) Conn() redis.Cmdable {
	return p.rdb
}

// Get returns the value stored at key: a *types.Int for integer-parseable
// strings, a plain string otherwise, or a typed container handle bound to
// (key, client). Keys assigned an empty container resolve to their recorded
// placeholder handle. Returns ErrNotFound when neither the store nor the
// empties registry knows the key.
func (p *Proxy) Get(ctx context.Context, key string) (any, error) {
	typeName, err := p.rdb.Type(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	kind, ok := types.KindOf(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: store reports type %q for key %q", ErrUnsupportedType, typeName, key)
	}

	// Strings can be legitimately empty, so they resolve before the
	// empties registry gets a say.
	if kind == types.KindString {
		raw, err := p.rdb.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
			}
			return nil, err
		}
		if _, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			return types.NewInt(key, p.rdb), nil
		}
		return raw, nil
	}

	if placeholder, ok := p.lookupEmpty(key); ok {
		if kind == types.KindNone {
			return placeholder, nil
		}
		// The store has a real value now; the record is stale.
		p.forgetEmpty(key)
	}

	if kind == types.KindNone {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	handle, ok := types.NewHandle(kind, key, p.rdb)
	if !ok {
		return nil, fmt.Errorf("%w: no handle for kind %s", ErrUnsupportedType, kind)
	}
	return handle, nil
}

// Set copies the contents of value into the store under key. Integers and
// strings are stored through SET; non-empty containers are serialized as one
// transactional pipeline that replaces any existing value; empty containers
// delete the key and record a placeholder so the key keeps its type; nil
// deletes the key outright.
func (p *Proxy) Set(ctx context.Context, key string, value any) error {
	p.forgetEmpty(key)

	kind, err := valueKind(value)
	if err != nil {
		return err
	}

	p.logger.WithField("key", key).Debugf("setting %s value", kind)

	switch kind {
	case types.KindNone:
		return p.rdb.Del(ctx, key).Err()

	case types.KindInt:
		n, err := intValue(ctx, value)
		if err != nil {
			return err
		}
		return p.rdb.Set(ctx, key, n, 0).Err()

	case types.KindString:
		return p.rdb.Set(ctx, key, stringValue(value), 0).Err()
	}

	if valueEmpty(value) {
		if err := p.rdb.Del(ctx, key).Err(); err != nil {
			return err
		}
		placeholder, ok := types.NewHandle(kind, key, p.rdb)
		if !ok {
			return fmt.Errorf("%w: no placeholder for kind %s", ErrUnsupportedType, kind)
		}
		p.recordEmpty(key, placeholder)
		return nil
	}

	pipe := p.rdb.TxPipeline()
	pipe.Del(ctx, key)
	if err := appendContainer(ctx, pipe, key, kind, value); err != nil {
		return err
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Contains reports whether key holds a value. Local knowledge is consulted
// too: a key assigned an empty container exists here even though the store
// reports it absent.
func (p *Proxy) Contains(ctx context.Context, key string) (bool, error) {
	n, err := p.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	_, ok := p.lookupEmpty(key)
	return ok, nil
}

// Delete removes keys from both the empties registry and the store. All keys
// go out in a single batched DEL.
func (p *Proxy) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	for _, key := range keys {
		p.forgetEmpty(key)
	}
	return p.rdb.Del(ctx, keys...).Err()
}

// DeleteMatch resolves pattern against the store's key listing and deletes
// every match.
func (p *Proxy) DeleteMatch(ctx context.Context, pattern string) error {
	keys, err := p.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	return p.Delete(ctx, keys...)
}

// Keys returns the keys currently matching pattern.
func (p *Proxy) Keys(ctx context.Context, pattern string) ([]string, error) {
	return p.rdb.Keys(ctx, pattern).Result()
}

// Iterate returns a single-pass iterator over the keys matching pattern at
// call time. Values are resolved lazily, one Get per Next.
func (p *Proxy) Iterate(ctx context.Context, pattern string) (*Iter, error) {
	keys, err := p.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, err
	}
	return &Iter{src: p, keys: keys}, nil
}

func (p *Proxy) lookupEmpty(key string) (types.Handle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.empties[key]
	return h, ok
}

func (p *Proxy) recordEmpty(key string, h types.Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.empties[key] = h
}

func (p *Proxy) forgetEmpty(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.empties, key)
}
