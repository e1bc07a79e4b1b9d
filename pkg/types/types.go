// Package types provides typed handles for container values that live in a
// Redis keyspace. A handle is a lightweight view bound to a key and a client;
// it holds no data of its own and every method is a store round-trip.
package types

import (
	"github.com/redis/go-redis/v9"
)

// Handle is a view over a store-resident value, bound to a key and a client.
// Handles carry no persistent identity; they are created per access and can
// be discarded freely.
type Handle interface {
	Key() string
	Kind() Kind
}

// NewHandle returns the handle matching kind, bound to key and rdb.
// The second return value is false for kinds without a container handle
// (KindNone, KindString).
func NewHandle(kind Kind, key string, rdb redis.Cmdable) (Handle, bool) {
	switch kind {
	case KindInt:
		return NewInt(key, rdb), true
	case KindList:
		return NewList(key, rdb), true
	case KindSet:
		return NewSet(key, rdb), true
	case KindHash:
		return NewHash(key, rdb), true
	case KindSortedSet:
		return NewSortedSet(key, rdb), true
	}
	return nil, false
}
