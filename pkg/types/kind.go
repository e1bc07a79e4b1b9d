package types

// Kind enumerates the value kinds a key in the store can hold.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindInt
	KindList
	KindSet
	KindHash
	KindSortedSet
)

// String returns a human readable kind name for logs and errors.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindHash:
		return "hash"
	case KindSortedSet:
		return "zset"
	}
	return "unknown"
}

// KindOf maps a Redis TYPE reply to a Kind. The second return value is false
// for type names this package does not model (e.g. "stream").
func KindOf(typeName string) (Kind, bool) {
	switch typeName {
	case "none":
		return KindNone, true
	case "string":
		return KindString, true
	case "list":
		return KindList, true
	case "set":
		return KindSet, true
	case "hash":
		return KindHash, true
	case "zset":
		return KindSortedSet, true
	}
	return KindNone, false
}
