package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cch137/gokv/lib/hash"
	"github.com/cch137/gokv/lib/value"
)

// docZSetMember is the JSON shape of one sorted-set member. String and
// list values are encoded directly as a JSON string and array, with no
// dedicated named type. A raw JSON document is just
// map[string]json.RawMessage at the top level, keyed by the entry's key;
// which concrete shape a given entry unmarshals into is decided by
// entryTag below.
type docZSetMember struct {
	Member string  `json:"member"`
	Score  float64 `json:"score"`
}

// entryTag is the discriminator stored alongside each entry's payload, so
// Load can tell a list of one string apart from a string, and an array of
// zset members apart from a list of strings.
type entryTag string

const (
	tagString entryTag = "string"
	tagList   entryTag = "list"
	tagZSet   entryTag = "zset"
)

type docEntry struct {
	Type  entryTag        `json:"type"`
	Value json.RawMessage `json:"value"`
}

// document is the top-level JSON shape: a flat object from key to entry.
type document map[string]json.RawMessage

// Save serialises every live entry in s to path as a single JSON document.
// It traverses both of s's tables even mid-rehash, which is always safe
// because only the single worker thread ever calls Save, and it never
// observes a half-moved bucket from its own goroutine.
func Save(path string, s *hash.Store) error {
	doc := make(document, s.Count())

	var outerErr error
	s.ForEach(func(key string, v *value.Value) bool {
		raw, err := encodeEntry(v)
		if err != nil {
			outerErr = fmt.Errorf("encode key %q: %w", key, err)
			return false
		}
		doc[key] = raw
		return true
	})
	if outerErr != nil {
		return outerErr
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Load restores s from the JSON document at path, inserting entries in
// the order json.Unmarshal produces (Go's encoding/json does not
// guarantee map key order, so "insertion order" here is best-effort - the
// round-trip guarantee this gives callers concerns set equality, not
// order). A missing file yields an empty, untouched store with no error;
// a malformed file is reported as an error so the caller can log a
// warning rather than silently discarding a corrupt snapshot.
func Load(path string, s *hash.Store) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	for key, raw := range doc {
		v, err := decodeEntry(raw)
		if err != nil {
			return fmt.Errorf("decode key %q: %w", key, err)
		}
		s.Set(key, v)
	}
	return nil
}

func encodeEntry(v *value.Value) (json.RawMessage, error) {
	var (
		payload any
		tag     entryTag
	)
	switch v.Tag {
	case value.TagString:
		tag, payload = tagString, v.Str
	case value.TagList:
		elems := make([]string, 0, v.List.Len())
		v.List.Each(func(s string) { elems = append(elems, s) })
		tag, payload = tagList, elems
	case value.TagSortedSet:
		members := make([]docZSetMember, 0, v.ZSet.Card())
		v.ZSet.Each(func(member string, score float64) {
			members = append(members, docZSetMember{Member: member, Score: score})
		})
		tag, payload = tagZSet, members
	default:
		return nil, fmt.Errorf("unknown value tag %v", v.Tag)
	}

	valueBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(docEntry{Type: tag, Value: valueBytes})
}

func decodeEntry(raw json.RawMessage) (*value.Value, error) {
	var e docEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	switch e.Type {
	case tagString:
		var s string
		if err := json.Unmarshal(e.Value, &s); err != nil {
			return nil, err
		}
		return value.NewString(s), nil
	case tagList:
		var elems []string
		if err := json.Unmarshal(e.Value, &elems); err != nil {
			return nil, err
		}
		v := value.NewList()
		for _, s := range elems {
			v.List.PushRight(s)
		}
		return v, nil
	case tagZSet:
		var members []docZSetMember
		if err := json.Unmarshal(e.Value, &members); err != nil {
			return nil, err
		}
		v := value.NewSortedSet()
		for _, m := range members {
			v.ZSet.Add(m.Member, m.Score)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown entry type %q", e.Type)
	}
}
