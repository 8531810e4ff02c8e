package container

import "github.com/google/btree"

// --------------------------------------------------------------------------
// SortedSet
// --------------------------------------------------------------------------

// zitem is one entry in a SortedSet's score-ordered sequence. Ordering is
// (score ascending, member ascending).
type zitem struct {
	score  float64
	member string
}

func zitemLess(a, b zitem) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.member < b.member
}

const zsetBTreeDegree = 32

// SortedSet is an ordered set of members with numeric scores. It combines a
// member->score map (O(1) ZSCORE) with a (score, member)-ordered btree, the
// ordered sequence ZRANGE/ZRANGEBYSCORE/ZRANK walk. Both structures are
// kept in lockstep by Add and Remove; a SortedSet is never observed with
// one updated and not the other.
type SortedSet struct {
	scores map[string]float64
	seq    *btree.BTreeG[zitem]
}

// NewSortedSet returns an empty sorted set.
func NewSortedSet() *SortedSet {
	return &SortedSet{
		scores: make(map[string]float64),
		seq:    btree.NewG(zsetBTreeDegree, zitemLess),
	}
}

// Card returns the number of members.
func (z *SortedSet) Card() int {
	return len(z.scores)
}

// Score returns the score for member, or ok=false if absent.
func (z *SortedSet) Score(member string) (score float64, ok bool) {
	score, ok = z.scores[member]
	return
}

// Add inserts member with score, or updates its score if already present.
// Returns false (a no-op) when member already has exactly this score.
func (z *SortedSet) Add(member string, score float64) bool {
	if old, ok := z.scores[member]; ok {
		if old == score {
			return false
		}
		z.seq.Delete(zitem{score: old, member: member})
	}
	z.scores[member] = score
	z.seq.ReplaceOrInsert(zitem{score: score, member: member})
	return true
}

// Remove deletes member. Returns false if member was absent.
func (z *SortedSet) Remove(member string) bool {
	score, ok := z.scores[member]
	if !ok {
		return false
	}
	delete(z.scores, member)
	z.seq.Delete(zitem{score: score, member: member})
	return true
}

// Rank returns the 0-based rank of member in ascending (score, member)
// order, or ok=false if absent. Implementation note: google/btree has no
// order-statistics augmentation, so this walks the sequence from the
// smallest item and counts; this is O(rank) rather than the O(log n) a
// skip list would give.
func (z *SortedSet) Rank(member string) (rank int, ok bool) {
	score, present := z.scores[member]
	if !present {
		return 0, false
	}
	target := zitem{score: score, member: member}
	i := 0
	found := false
	z.seq.Ascend(func(it zitem) bool {
		if it == target {
			found = true
			return false
		}
		i++
		return true
	})
	if !found {
		return 0, false
	}
	return i, true
}

// RangeByRank returns the members for ranks [start, stop] inclusive,
// together with a parallel slice of their scores, clamped to the set's
// bounds like List.Range.
func (z *SortedSet) RangeByRank(start, stop int) (members []string, scores []float64) {
	n := z.Card()
	if n == 0 || start > stop {
		return []string{}, []float64{}
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop {
		return []string{}, []float64{}
	}

	members = make([]string, 0, stop-start+1)
	scores = make([]float64, 0, stop-start+1)
	i := 0
	z.seq.Ascend(func(it zitem) bool {
		if i > stop {
			return false
		}
		if i >= start {
			members = append(members, it.member)
			scores = append(scores, it.score)
		}
		i++
		return true
	})
	return members, scores
}

// ScoreRange describes a (possibly open) interval [min, max] used by
// ZCOUNT/ZRANGEBYSCORE/ZREMRANGEBYSCORE.
type ScoreRange struct {
	Min, Max                   float64
	MinInclusive, MaxInclusive bool
}

// contains reports whether score falls within r.
func (r ScoreRange) contains(score float64) bool {
	if score < r.Min || (score == r.Min && !r.MinInclusive) {
		return false
	}
	if score > r.Max || (score == r.Max && !r.MaxInclusive) {
		return false
	}
	return true
}

// RangeByScore returns members and scores ordered by (score, member) whose
// score falls within r.
func (z *SortedSet) RangeByScore(r ScoreRange) (members []string, scores []float64) {
	members = []string{}
	scores = []float64{}
	z.seq.Ascend(func(it zitem) bool {
		if it.score > r.Max {
			return false
		}
		if r.contains(it.score) {
			members = append(members, it.member)
			scores = append(scores, it.score)
		}
		return true
	})
	return members, scores
}

// CountByScore returns the number of members whose score falls within r.
func (z *SortedSet) CountByScore(r ScoreRange) int {
	count := 0
	z.seq.Ascend(func(it zitem) bool {
		if it.score > r.Max {
			return false
		}
		if r.contains(it.score) {
			count++
		}
		return true
	})
	return count
}

// RemoveRangeByScore removes every member whose score falls within r and
// returns the count removed.
func (z *SortedSet) RemoveRangeByScore(r ScoreRange) int {
	var victims []string
	z.seq.Ascend(func(it zitem) bool {
		if it.score > r.Max {
			return false
		}
		if r.contains(it.score) {
			victims = append(victims, it.member)
		}
		return true
	})
	for _, m := range victims {
		z.Remove(m)
	}
	return len(victims)
}

// Each calls fn for every (member, score) pair in ascending order.
func (z *SortedSet) Each(fn func(member string, score float64)) {
	z.seq.Ascend(func(it zitem) bool {
		fn(it.member, it.score)
		return true
	})
}
