package store

import (
	"strconv"
	"strings"

	"github.com/cch137/gokv/lib/command"
	"github.com/cch137/gokv/lib/container"
	"github.com/cch137/gokv/lib/value"
)

// getOrCreateZSet mirrors getOrCreateList for sorted sets.
func (s *Store) getOrCreateZSet(key string) (v *value.Value, ok bool) {
	v, found := s.get(key)
	if !found {
		v = value.NewSortedSet()
		s.set(key, v)
		return v, true
	}
	if v.Tag != value.TagSortedSet {
		return nil, false
	}
	return v, true
}

func parseBoolToken(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}

// execZadd implements ZADD. Arguments after the key are
// (score, member) pairs; re-adding a member with an identical score is a
// no-op, otherwise its score is overwritten unconditionally - there is no
// update-only-if-lower/higher flag.
func execZadd(s *Store, req *command.Request) *command.Reply {
	if req.Len() < 3 || (req.Len()-1)%2 != 0 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	v, ok := s.getOrCreateZSet(key.AsString())
	if !ok {
		return command.NewErrorReply(command.ErrWrongType)
	}

	var added uint64
	for i := 1; i < req.Len(); i += 2 {
		scoreArg, _ := req.Arg(i)
		memberArg, _ := req.Arg(i + 1)
		score, ok := scoreArg.AsFloat()
		if !ok {
			return command.NewErrorReply(command.ErrWrongArguments)
		}
		if v.ZSet.Add(memberArg.AsString(), score) {
			added++
		}
	}
	return command.NewUIntReply(added)
}

// execZscore implements ZSCORE.
func execZscore(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 2 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	member, _ := req.Arg(1)

	v, found := s.get(key.AsString())
	if !found {
		return command.NewNullReply()
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	score, ok := v.ZSet.Score(member.AsString())
	if !ok {
		return command.NewNullReply()
	}
	return command.NewDoubleReply(score)
}

// execZcard implements ZCARD.
func execZcard(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 1 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)

	v, found := s.get(key.AsString())
	if !found {
		return command.NewUIntReply(0)
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	return command.NewUIntReply(uint64(v.ZSet.Card()))
}

// parseScoreRange reads the (min, minInclusive, max, maxInclusive) four
// tokens that ZCOUNT, ZRANGEBYSCORE and ZREMRANGEBYSCORE all share,
// starting at req.Args[argsFrom].
func parseScoreRange(req *command.Request, argsFrom int) (container.ScoreRange, bool) {
	if req.Len() < argsFrom+4 {
		return container.ScoreRange{}, false
	}
	minArg, _ := req.Arg(argsFrom)
	minInclArg, _ := req.Arg(argsFrom + 1)
	maxArg, _ := req.Arg(argsFrom + 2)
	maxInclArg, _ := req.Arg(argsFrom + 3)

	min, ok := minArg.AsFloat()
	if !ok {
		return container.ScoreRange{}, false
	}
	minIncl, ok := parseBoolToken(minInclArg.AsString())
	if !ok {
		return container.ScoreRange{}, false
	}
	max, ok := maxArg.AsFloat()
	if !ok {
		return container.ScoreRange{}, false
	}
	maxIncl, ok := parseBoolToken(maxInclArg.AsString())
	if !ok {
		return container.ScoreRange{}, false
	}
	return container.ScoreRange{Min: min, MinInclusive: minIncl, Max: max, MaxInclusive: maxIncl}, true
}

// execZcount implements ZCOUNT.
func execZcount(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 5 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	r, ok := parseScoreRange(req, 1)
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}

	v, found := s.get(key.AsString())
	if !found {
		return command.NewUIntReply(0)
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	return command.NewUIntReply(uint64(v.ZSet.CountByScore(r)))
}

// flattenMembers renders parallel member/score slices into a single List
// reply, optionally interleaving scores when withScores is set - a flat
// member/score array, the same convention WITHSCORES replies use
// throughout the sorted-set executors.
func flattenMembers(members []string, scores []float64, withScores bool) []string {
	if !withScores {
		return members
	}
	out := make([]string, 0, len(members)*2)
	for i, m := range members {
		out = append(out, m, formatScore(scores[i]))
	}
	return out
}

// execZrange implements ZRANGE, range by rank.
func execZrange(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 3 && req.Len() != 4 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	startArg, _ := req.Arg(1)
	stopArg, _ := req.Arg(2)

	start, ok := startArg.AsUint()
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	stop, ok := stopArg.AsUint()
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	withScores := false
	if req.Len() == 4 {
		wsArg, _ := req.Arg(3)
		if strings.ToUpper(wsArg.AsString()) != "WITHSCORES" {
			return command.NewErrorReply(command.ErrWrongArguments)
		}
		withScores = true
	}

	v, found := s.get(key.AsString())
	if !found {
		return command.NewListReply(nil)
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	members, scores := v.ZSet.RangeByRank(int(start), int(stop))
	return command.NewListReply(flattenMembers(members, scores, withScores))
}

// execZrangebyscore implements ZRANGEBYSCORE.
func execZrangebyscore(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 5 && req.Len() != 6 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	r, ok := parseScoreRange(req, 1)
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	withScores := false
	if req.Len() == 6 {
		wsArg, _ := req.Arg(5)
		if strings.ToUpper(wsArg.AsString()) != "WITHSCORES" {
			return command.NewErrorReply(command.ErrWrongArguments)
		}
		withScores = true
	}

	v, found := s.get(key.AsString())
	if !found {
		return command.NewListReply(nil)
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	members, scores := v.ZSet.RangeByScore(r)
	return command.NewListReply(flattenMembers(members, scores, withScores))
}

// execZrank implements ZRANK. An optional REVERSE token ranks
// from the highest score down instead of the lowest up.
func execZrank(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 2 && req.Len() != 3 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	member, _ := req.Arg(1)
	reverse := false
	if req.Len() == 3 {
		revArg, _ := req.Arg(2)
		if strings.ToUpper(revArg.AsString()) != "REVERSE" {
			return command.NewErrorReply(command.ErrWrongArguments)
		}
		reverse = true
	}

	v, found := s.get(key.AsString())
	if !found {
		return command.NewNullReply()
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	rank, ok := v.ZSet.Rank(member.AsString())
	if !ok {
		return command.NewNullReply()
	}
	if reverse {
		rank = v.ZSet.Card() - 1 - rank
	}
	return command.NewUIntReply(uint64(rank))
}

// execZrem implements ZREM.
func execZrem(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 2 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	member, _ := req.Arg(1)

	v, found := s.get(key.AsString())
	if !found {
		return command.NewUIntReply(0)
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	if v.ZSet.Remove(member.AsString()) {
		return command.NewUIntReply(1)
	}
	return command.NewUIntReply(0)
}

// execZremrangebyscore implements ZREMRANGEBYSCORE.
func execZremrangebyscore(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 5 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	r, ok := parseScoreRange(req, 1)
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}

	v, found := s.get(key.AsString())
	if !found {
		return command.NewUIntReply(0)
	}
	if v.Tag != value.TagSortedSet {
		return command.NewErrorReply(command.ErrWrongType)
	}
	return command.NewUIntReply(uint64(v.ZSet.RemoveRangeByScore(r)))
}

type aggregateFn func(acc, score float64) float64

func aggregateSum(acc, score float64) float64 { return acc + score }
func aggregateMin(acc, score float64) float64 {
	if score < acc {
		return score
	}
	return acc
}
func aggregateMax(acc, score float64) float64 {
	if score > acc {
		return score
	}
	return acc
}

// parseStoreArgs reads the shared ZINTERSTORE/ZUNIONSTORE argument shape:
// dest, numkeys, key1..keyN, an optional WEIGHTS clause of numkeys floats,
// and an optional AGGREGATE SUM|MIN|MAX clause (default SUM).
func parseStoreArgs(req *command.Request) (dest string, keys []string, weights []float64, agg aggregateFn, ok bool) {
	if req.Len() < 2 {
		return "", nil, nil, nil, false
	}
	destArg, _ := req.Arg(0)
	dest = destArg.AsString()

	numKeysArg, _ := req.Arg(1)
	numKeys, ok := numKeysArg.AsUint()
	if !ok || numKeys == 0 {
		return "", nil, nil, nil, false
	}
	n := int(numKeys)
	if req.Len() < 2+n {
		return "", nil, nil, nil, false
	}
	keys = make([]string, n)
	for i := 0; i < n; i++ {
		a, _ := req.Arg(2 + i)
		keys[i] = a.AsString()
	}
	weights = make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}

	agg = aggregateSum
	i := 2 + n
	if i < req.Len() {
		tokArg, _ := req.Arg(i)
		if strings.ToUpper(tokArg.AsString()) == "WEIGHTS" {
			i++
			if req.Len() < i+n {
				return "", nil, nil, nil, false
			}
			for j := 0; j < n; j++ {
				wArg, _ := req.Arg(i + j)
				w, ok := wArg.AsFloat()
				if !ok {
					return "", nil, nil, nil, false
				}
				weights[j] = w
			}
			i += n
		}
	}
	if i < req.Len() {
		tokArg, _ := req.Arg(i)
		if strings.ToUpper(tokArg.AsString()) != "AGGREGATE" {
			return "", nil, nil, nil, false
		}
		i++
		if i >= req.Len() {
			return "", nil, nil, nil, false
		}
		modeArg, _ := req.Arg(i)
		switch strings.ToUpper(modeArg.AsString()) {
		case "SUM":
			agg = aggregateSum
		case "MIN":
			agg = aggregateMin
		case "MAX":
			agg = aggregateMax
		default:
			return "", nil, nil, nil, false
		}
		i++
	}
	if i != req.Len() {
		return "", nil, nil, nil, false
	}
	return dest, keys, weights, agg, true
}

// execZinterstore implements ZINTERSTORE: only members present in every
// source key survive into dest, with scores folded by the aggregate
// function across all sources (not just the ones that kept the member).
func execZinterstore(s *Store, req *command.Request) *command.Reply {
	dest, keys, weights, agg, ok := parseStoreArgs(req)
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}

	perKey := make([]map[string]float64, len(keys))
	for i, key := range keys {
		v, found := s.get(key)
		if !found {
			perKey[i] = map[string]float64{}
			continue
		}
		if v.Tag != value.TagSortedSet {
			return command.NewErrorReply(command.ErrWrongType)
		}
		m := make(map[string]float64)
		v.ZSet.Each(func(member string, score float64) {
			m[member] = score * weights[i]
		})
		perKey[i] = m
	}

	result := value.NewSortedSet()
	if len(perKey) > 0 {
		for member, score := range perKey[0] {
			acc := score
			present := true
			for i := 1; i < len(perKey); i++ {
				other, found := perKey[i][member]
				if !found {
					present = false
					break
				}
				acc = agg(acc, other)
			}
			if present {
				result.ZSet.Add(member, acc)
			}
		}
	}
	s.set(dest, result)
	return command.NewUIntReply(uint64(result.ZSet.Card()))
}

// execZunionstore implements ZUNIONSTORE: every member appearing in any
// source key survives into dest, scores folded across whichever sources
// contained it.
func execZunionstore(s *Store, req *command.Request) *command.Reply {
	dest, keys, weights, agg, ok := parseStoreArgs(req)
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}

	combined := make(map[string]float64)
	have := make(map[string]bool)
	for i, key := range keys {
		v, found := s.get(key)
		if !found {
			continue
		}
		if v.Tag != value.TagSortedSet {
			return command.NewErrorReply(command.ErrWrongType)
		}
		v.ZSet.Each(func(member string, score float64) {
			weighted := score * weights[i]
			if have[member] {
				combined[member] = agg(combined[member], weighted)
			} else {
				combined[member] = weighted
				have[member] = true
			}
		})
	}

	result := value.NewSortedSet()
	for member, score := range combined {
		result.ZSet.Add(member, score)
	}
	s.set(dest, result)
	return command.NewUIntReply(uint64(result.ZSet.Card()))
}
