// Package endgame implements an exact minimax solver for the closing
// tricks of a Hearts round, once few enough cards remain that the full
// game tree is cheap to enumerate. Each seat is modelled as minimising its
// own eventual captured penalty (backward induction generalised from
// two-player minimax to four players, since Hearts has no single shared
// zero-sum value). Results are memoized in a fixed-capacity, sharded table
// (internal/ttable) — the same technique the deep-search planner's
// transposition table uses, grounded on the teacher's sdk/solver/regret.go
// RegretTable — keyed on more than rules.RoundState.Signature alone:
// Signature deliberately omits SeatToPlay, and by itself says nothing
// about the penalties each seat has captured so far this round, both of
// which the solved value depends on (seat-to-play changes whose minimum
// the node takes, and the shoot-the-moon transform is non-linear in
// cumulative captures). See (*solver).key.
package endgame

import (
	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/internal/ttable"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// Result is one exact solve: the chosen card, the full per-seat score
// delta (captured penalty from round to the end of the round, moon
// transform already applied) that card's line produces, every legal
// card's line alongside it (for reports that list every candidate, not
// just the winner), and solver statistics for telemetry.
type Result struct {
	Chosen         card.Card
	Values         [rules.NumSeats]int
	Candidates     []CandidateResult
	NodesEvaluated int
	MemoHits       int
}

// CandidateResult is one legal card's exact per-seat score delta.
type CandidateResult struct {
	Card   card.Card
	Values [rules.NumSeats]int
}

// Solve exhaustively determines the optimal play for seat in round via
// memoized backward induction. It is exact: every legal continuation is
// enumerated, so Solve is only appropriate once hand sizes are small
// (ctx.Weights.EndgameMaxCards gates when callers should invoke it).
// ttCapacity sizes the memo table (callers pass ctx.Weights.TTSizeEntries);
// a non-positive value still yields a usable, if minimally-capacitated,
// table.
func Solve(round rules.RoundState, seat rules.Seat, ttCapacity int) (Result, error) {
	if round.SeatToPlay != seat {
		return Result{}, &engine.IllegalPosition{Reason: "round's seat-to-play does not match the solving seat"}
	}
	legal := rules.LegalCards(round, seat)
	if legal.Count() == 0 {
		return Result{}, &engine.EmptyLegalMoves{Seat: int(seat)}
	}

	s := &solver{
		baseline: rules.CapturedPoints(round.History),
		rootLen:  len(round.History),
		memo:     ttable.New[[rules.NumSeats]int](ttCapacity),
	}

	best, bestCard := [rules.NumSeats]int{}, card.Card(0)
	haveBest := false
	candidates := make([]CandidateResult, 0, legal.Count())
	for _, c := range legal.Cards() {
		v := s.value(round.Play(c))
		candidates = append(candidates, CandidateResult{Card: c, Values: v})
		if !haveBest || v[seat] < best[seat] {
			best, bestCard, haveBest = v, c, true
		}
	}

	return Result{
		Chosen:         bestCard,
		Values:         best,
		Candidates:     candidates,
		NodesEvaluated: s.nodes,
		MemoHits:       s.hits,
	}, nil
}

// solver holds the per-call state backward induction needs: the penalty
// totals captured before round's first trick (baseline, needed to decide
// exactly at the leaf whether a seat's full-round total hits the
// shoot-the-moon threshold of 26) and a memo table scoped to this one
// Solve call — never shared across calls, since baseline is call-specific
// and a cached value is only valid relative to it.
type solver struct {
	baseline [rules.NumSeats]int
	rootLen  int
	memo     *ttable.Table[[rules.NumSeats]int]
	nodes    int
	hits     int
}

// value returns, for round, the per-seat captured-penalty delta from round
// to the round's end under backward-induction play (moon transform already
// folded in against s.baseline), assuming every seat from here on plays to
// minimise its own eventual delta.
func (s *solver) value(round rules.RoundState) [rules.NumSeats]int {
	if round.RoundOver() {
		return s.terminal(round)
	}

	key := s.key(round)
	if cached, ok := s.memo.Get(key); ok {
		s.hits++
		return cached
	}
	s.nodes++

	seat := round.SeatToPlay
	legal := rules.LegalCards(round, seat)
	var best [rules.NumSeats]int
	haveBest := false
	for _, c := range legal.Cards() {
		v := s.value(round.Play(c))
		if !haveBest || v[seat] < best[seat] {
			best, haveBest = v, true
		}
	}

	s.memo.Store(key, best)
	return best
}

// key folds the three things value's result actually depends on into one
// memo key: round.Signature() (hands, in-progress trick, hearts-broken),
// SeatToPlay (Signature omits it by design — see rules.RoundState.Signature
// — but two otherwise-identical lines with different seats to move take
// their minimum over different legal sets and so generally have different
// values), and the per-seat penalty captured since s.rootLen (the leaf's
// moon transform is non-linear in cumulative captures, so two lines with
// identical remaining hands but different captured-so-far can legitimately
// resolve to different deltas). Mixed with the same golden-ratio/FNV-prime
// technique planner/deep/search.go's positionKey uses to fold SeatToPlay
// into a Signature-derived key.
func (s *solver) key(round rules.RoundState) uint64 {
	const goldenRatio64 = 0x9e3779b97f4a7c15
	const fnvPrime64 = 1099511628211

	k := round.Signature()
	k ^= uint64(round.SeatToPlay) * goldenRatio64
	k *= fnvPrime64

	captured := rules.CapturedPoints(round.History[s.rootLen:])
	for seat, pts := range captured {
		k ^= uint64(pts+1) * (goldenRatio64 + uint64(seat))
		k *= fnvPrime64
	}
	return k
}

// terminal computes the moon-adjusted delta at a completed round: the raw
// penalty captured since s.rootLen, added to s.baseline to get each seat's
// true full-round total, moon-transformed, then expressed back as a delta
// relative to s.baseline so it composes correctly with values returned
// from ancestor nodes regardless of how much of the round was already
// played before this solve began.
func (s *solver) terminal(round rules.RoundState) [rules.NumSeats]int {
	raw := rules.CapturedPoints(round.History[s.rootLen:])
	var absolute [rules.NumSeats]int
	for i := range absolute {
		absolute[i] = s.baseline[i] + raw[i]
	}
	final := rules.ApplyMoonShot(absolute)
	var delta [rules.NumSeats]int
	for i := range delta {
		delta[i] = final[i] - s.baseline[i]
	}
	return delta
}
