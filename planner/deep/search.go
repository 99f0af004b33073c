package deep

import (
	"sort"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/internal/ttable"
	"github.com/0x4D44/mdhearts-sub002/planner/heuristic"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// scoreInf is a sentinel well outside engine.ScoreBound, used as the
// alpha-beta search window's open ends before any real bound narrows it.
const scoreInf = engine.ScoreBound * 4

type boundFlag int

const (
	boundExact boundFlag = iota
	boundLower
	boundUpper
)

type ttEntry struct {
	depth   int
	score   int
	flag    boundFlag
	best    card.Card
	hasBest bool
}

// cardValue is one root candidate's searched score.
type cardValue struct {
	Card  card.Card
	Score int
}

// searcher holds the per-world state one iterative-deepening alpha-beta
// search needs: the root seat and root history length the paranoid
// evaluation is relative to, the shared budget/cancel signal, and the
// transposition/killer tables scoped to this one search call.
type searcher struct {
	ctx      engine.DecisionContext
	rootSeat rules.Seat
	rootLen  int
	baseline [rules.NumSeats]int
	budget   *engine.Budget
	tt       *ttable.Table[ttEntry]
	killers  *killerTable

	nodes   int
	ttHits  int
	aborted bool
}

func newSearcher(ctx engine.DecisionContext, round rules.RoundState) *searcher {
	return &searcher{
		ctx:      ctx,
		rootSeat: ctx.Seat,
		rootLen:  len(round.History),
		baseline: rules.CapturedPoints(round.History),
		budget:   ctx.NewBudget(),
		tt:       ttable.New[ttEntry](ctx.Weights.TTSizeEntries),
		killers:  newKillerTable(),
	}
}

func (s *searcher) cancelled() bool { return s.ctx.Cancelled() }

// rootMoves runs one fixed-depth alpha-beta pass over every legal card at
// round (round.SeatToPlay must be s.rootSeat) and returns each candidate's
// searched score, in move-order-evaluated order. Iterative deepening (see
// searchWorld) calls this once per depth, and a second time at that depth
// with a full window when the aspiration window fails high or low.
func (s *searcher) rootMoves(round rules.RoundState, depth, alpha, beta int) []cardValue {
	legal := rules.LegalCards(round, s.rootSeat)
	ordered := s.order(round, legal, depth, card.Card(0), false)

	results := make([]cardValue, 0, len(ordered))
	for _, c := range ordered {
		if s.aborted || s.budget.Exhausted() || s.cancelled() {
			s.aborted = true
			break
		}
		v := s.alphaBeta(round.Play(c), depth-1, alpha, beta)
		results = append(results, cardValue{Card: c, Score: v})
		if v > alpha {
			alpha = v
		}
	}
	return results
}

// alphaBeta searches round to depth plies (or until a terminal round, a
// cutoff, or the budget/cancel signal fires), maximising at s.rootSeat's
// nodes and minimising at every other seat's (the paranoid reduction —
// every other seat is treated as one adversary — see eval.go).
func (s *searcher) alphaBeta(round rules.RoundState, depth, alpha, beta int) int {
	s.budget.Spend(1)
	s.nodes++

	if round.RoundOver() {
		return paranoidScalar(leafDelta(round, s.rootLen, s.baseline), s.rootSeat)
	}
	if depth <= 0 || s.budget.Exhausted() || s.cancelled() {
		if s.budget.Exhausted() || s.cancelled() {
			s.aborted = true
		}
		return paranoidScalar(leafDelta(round, s.rootLen, s.baseline), s.rootSeat)
	}

	key := positionKey(round)
	origAlpha, origBeta := alpha, beta
	var ttBest card.Card
	hasTTBest := false
	if entry, ok := s.tt.Get(key); ok {
		s.ttHits++
		if entry.hasBest {
			ttBest, hasTTBest = entry.best, true
		}
		if entry.depth >= depth {
			switch entry.flag {
			case boundExact:
				return entry.score
			case boundLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case boundUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				return entry.score
			}
		}
	}

	seat := round.SeatToPlay
	legal := rules.LegalCards(round, seat)
	ordered := s.order(round, legal, depth, ttBest, hasTTBest)
	maximizing := seat == s.rootSeat

	value := -scoreInf
	if !maximizing {
		value = scoreInf
	}
	var bestCard card.Card
	haveBestCard := false

	for _, c := range ordered {
		v := s.alphaBeta(round.Play(c), depth-1, alpha, beta)
		if maximizing {
			if v > value || !haveBestCard {
				value, bestCard, haveBestCard = v, c, true
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if v < value || !haveBestCard {
				value, bestCard, haveBestCard = v, c, true
			}
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			s.killers.record(depth, c)
			break
		}
		if s.aborted {
			break
		}
	}

	flag := boundExact
	if value <= origAlpha {
		flag = boundUpper
	} else if value >= origBeta {
		flag = boundLower
	}
	entry := ttEntry{depth: depth, score: value, flag: flag}
	if haveBestCard {
		entry.best, entry.hasBest = bestCard, true
	}
	s.tt.Store(key, entry)
	return value
}

// order ranks legal's cards for move generation: the transposition table's
// remembered best move first (if legal here), then any recorded killer
// move at this depth, then the rest by the heuristic planner's base
// feature score (reused purely as an ordering hint, not a decision) when a
// tracker is available to support it, falling back to canonical order
// otherwise. Good ordering is what lets alpha-beta's cutoffs do their
// work; it does not affect the search's correctness.
func (s *searcher) order(round rules.RoundState, legal card.Hand, depth int, ttBest card.Card, hasTTBest bool) []card.Card {
	cards := legal.Cards()

	rank := make(map[card.Card]int, len(cards))
	if s.ctx.Tracker != nil {
		moverCtx := engine.DecisionContext{
			Round:   round,
			Seat:    round.SeatToPlay,
			Board:   s.ctx.Board,
			Tracker: s.ctx.Tracker,
			Weights: s.ctx.Weights,
			Seed:    s.ctx.Seed,
		}
		for _, c := range cards {
			score, _ := heuristic.ScoreCandidate(moverCtx, c)
			rank[c] = score
		}
	}

	sort.SliceStable(cards, func(i, j int) bool {
		pi, pj := priority(cards[i], depth, ttBest, hasTTBest, s.killers), priority(cards[j], depth, ttBest, hasTTBest, s.killers)
		if pi != pj {
			return pi > pj
		}
		if ri, rj := rank[cards[i]], rank[cards[j]]; ri != rj {
			return ri > rj
		}
		return cards[i].Less(cards[j])
	})
	return cards
}

// priority buckets a candidate into the TT-best/killer/plain ordering
// tiers: 2 for the remembered transposition best move, 1 for a killer at
// this depth, 0 otherwise.
func priority(c card.Card, depth int, ttBest card.Card, hasTTBest bool, killers *killerTable) int {
	if hasTTBest && c == ttBest {
		return 2
	}
	if killers.isKiller(depth, c) {
		return 1
	}
	return 0
}

// positionKey combines a RoundState's signature with its seat-to-play into
// the single 64-bit key the transposition table is keyed on — Signature
// alone intentionally omits seat-to-play (see rules.RoundState.Signature).
func positionKey(round rules.RoundState) uint64 {
	const goldenRatio64 = 0x9e3779b97f4a7c15
	sig := round.Signature()
	sig ^= uint64(round.SeatToPlay) * goldenRatio64
	sig *= 1099511628211
	return sig
}
