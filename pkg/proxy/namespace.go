package proxy

import (
	"context"
	"fmt"
	"strings"
)

// Namespaced scopes a Proxy to a keyspace described by a format template with
// a single %s slot, e.g. "session:41:%s". Every key-shaped operation expands
// the caller's key through the template before delegating, and enumeration
// strips the template again, so keys observed through the view always feed
// back into the same view. The view exposes exactly the keyspace surface;
// connection-level operations stay on the underlying proxy, reachable via
// Proxy.
type Namespaced struct {
	proxy  *Proxy
	format string
	prefix string
	suffix string
}

// Namespaced returns a view of p scoped through format. The template is
// immutable; it must contain exactly one %s and no other verbs.
func (p *Proxy) Namespaced(format string) (*Namespaced, error) {
	literal := strings.ReplaceAll(format, "%%", "")
	if strings.Count(literal, "%") != 1 || !strings.Contains(literal, "%s") {
		return nil, fmt.Errorf("%w: %q", ErrBadTemplate, format)
	}
	slot := strings.Index(format, "%s")
	return &Namespaced{
		proxy:  p,
		format: format,
		prefix: strings.ReplaceAll(format[:slot], "%%", "%"),
		suffix: strings.ReplaceAll(format[slot+2:], "%%", "%"),
	}, nil
}

// Format expands key through the namespace template.
func (n *Namespaced) Format(key string) string {
	return fmt.Sprintf(n.format, key)
}

// strip undoes Format, recovering the logical key from a store key.
func (n *Namespaced) strip(storeKey string) (string, bool) {
	key, ok := strings.CutPrefix(storeKey, n.prefix)
	if !ok {
		return "", false
	}
	key, ok = strings.CutSuffix(key, n.suffix)
	if !ok {
		return "", false
	}
	return key, true
}

// Proxy returns the underlying unscoped proxy.
func (n *Namespaced) Proxy() *Proxy {
	return n.proxy
}

// Get reads the namespaced key through the underlying proxy.
func (n *Namespaced) Get(ctx context.Context, key string) (any, error) {
	return n.proxy.Get(ctx, n.Format(key))
}

// Set writes value under the namespaced key.
func (n *Namespaced) Set(ctx context.Context, key string, value any) error {
	return n.proxy.Set(ctx, n.Format(key), value)
}

// Contains reports whether the namespaced key holds a value.
func (n *Namespaced) Contains(ctx context.Context, key string) (bool, error) {
	return n.proxy.Contains(ctx, n.Format(key))
}

// Delete removes the namespaced keys.
func (n *Namespaced) Delete(ctx context.Context, keys ...string) error {
	expanded := make([]string, 0, len(keys))
	for _, key := range keys {
		expanded = append(expanded, n.Format(key))
	}
	return n.proxy.Delete(ctx, expanded...)
}

// DeleteMatch deletes every key matching the namespaced pattern.
func (n *Namespaced) DeleteMatch(ctx context.Context, pattern string) error {
	return n.proxy.DeleteMatch(ctx, n.Format(pattern))
}

// Keys returns the logical keys matching pattern inside the namespace. Store
// keys that match the expanded pattern but not the template shape are
// skipped.
func (n *Namespaced) Keys(ctx context.Context, pattern string) ([]string, error) {
	storeKeys, err := n.proxy.Keys(ctx, n.Format(pattern))
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(storeKeys))
	for _, storeKey := range storeKeys {
		if key, ok := n.strip(storeKey); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Iterate iterates the logical keys matching pattern inside the namespace.
func (n *Namespaced) Iterate(ctx context.Context, pattern string) (*Iter, error) {
	keys, err := n.Keys(ctx, pattern)
	if err != nil {
		return nil, err
	}
	return &Iter{src: n, keys: keys}, nil
}

// Field binds a single key in the view, so callers can keep member-like state
// in the store behind a pair of accessors.
func (n *Namespaced) Field(key string) *Field {
	return &Field{view: n, key: key}
}

// Field is a (view, key) binding with property-style access.
type Field struct {
	view *Namespaced
	key  string
}

// Key returns the unexpanded key this field is bound to.
func (f *Field) Key() string { return f.key }

// Get reads the bound key.
func (f *Field) Get(ctx context.Context) (any, error) {
	return f.view.Get(ctx, f.key)
}

// Set writes the bound key.
func (f *Field) Set(ctx context.Context, value any) error {
	return f.view.Set(ctx, f.key, value)
}

// Exists reports whether the bound key holds a value.
func (f *Field) Exists(ctx context.Context) (bool, error) {
	return f.view.Contains(ctx, f.key)
}

// Delete removes the bound key.
func (f *Field) Delete(ctx context.Context) error {
	return f.view.Delete(ctx, f.key)
}
