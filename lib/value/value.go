package value

import "github.com/cch137/gokv/lib/container"

// Tag identifies which payload field of a Value is live.
type Tag uint8

const (
	TagString Tag = iota
	TagList
	TagSortedSet
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagList:
		return "list"
	case TagSortedSet:
		return "zset"
	default:
		return "unknown"
	}
}

// Value is the payload an Entry owns: exactly one of Str, List or ZSet is
// meaningful, selected by Tag. A Value never changes Tag in place - callers
// that need to change a key's type build a new Value and let the old one
// be garbage collected. Go's GC performs the freeing; there is nothing
// else to do.
type Value struct {
	Tag  Tag
	Str  string
	List *container.List
	ZSet *container.SortedSet
}

// NewString returns a Value holding s.
func NewString(s string) *Value {
	return &Value{Tag: TagString, Str: s}
}

// NewList returns a Value holding an empty list.
func NewList() *Value {
	return &Value{Tag: TagList, List: container.NewList()}
}

// NewSortedSet returns a Value holding an empty sorted set.
func NewSortedSet() *Value {
	return &Value{Tag: TagSortedSet, ZSet: container.NewSortedSet()}
}

// SizeBytes estimates the heap footprint of the value for
// INFO_DATASET_MEMORY: whatever its payload owns (string bytes, plus link
// pointers per list node or a score per sorted-set member); the Value
// struct itself is not counted.
// This is an estimate, not an instrumented allocator total - Go offers no
// portable way to ask the runtime for a value's exact retained size.
func (v *Value) SizeBytes() int {
	const wordSize = 8
	switch v.Tag {
	case TagString:
		return len(v.Str)
	case TagList:
		size := 0
		v.List.Each(func(s string) {
			size += len(s) + 2*wordSize // payload + two link pointers
		})
		return size
	case TagSortedSet:
		size := 0
		v.ZSet.Each(func(member string, _ float64) {
			size += len(member) + wordSize // member string + score
		})
		return size
	default:
		return 0
	}
}
