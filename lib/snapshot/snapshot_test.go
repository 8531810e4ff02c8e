package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cch137/gokv/lib/hash"
	"github.com/cch137/gokv/lib/value"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	src := hash.NewStore(1)
	src.Set("str", value.NewString("hello"))

	list := value.NewList()
	list.List.PushRight("a")
	list.List.PushRight("b")
	src.Set("list", list)

	zset := value.NewSortedSet()
	zset.ZSet.Add("m1", 1.5)
	zset.ZSet.Add("m2", 2.5)
	src.Set("zset", zset)

	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := hash.NewStore(1)
	if err := Load(path, dst); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if dst.Count() != 3 {
		t.Fatalf("Count() after Load = %d, want 3", dst.Count())
	}

	v, ok := dst.Get("str")
	if !ok || v.Tag != value.TagString || v.Str != "hello" {
		t.Fatalf("str = %+v, %v, want String(hello)", v, ok)
	}

	v, ok = dst.Get("list")
	if !ok || v.Tag != value.TagList {
		t.Fatalf("list = %+v, %v, want a List", v, ok)
	}
	if v.List.Len() != 2 {
		t.Fatalf("list length = %d, want 2", v.List.Len())
	}

	v, ok = dst.Get("zset")
	if !ok || v.Tag != value.TagSortedSet {
		t.Fatalf("zset = %+v, %v, want a SortedSet", v, ok)
	}
	score, ok := v.ZSet.Score("m2")
	if !ok || score != 2.5 {
		t.Fatalf("score(m2) = %v, %v, want 2.5, true", score, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := hash.NewStore(1)
	if err := Load(filepath.Join(t.TempDir(), "missing.json"), s); err != nil {
		t.Fatalf("Load on a missing file = %v, want nil", err)
	}
	if s.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", s.Count())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s := hash.NewStore(1)
	if err := Load(path, s); err == nil {
		t.Fatalf("Load on a malformed file returned nil, want an error")
	}
}
