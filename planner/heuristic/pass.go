package heuristic

import (
	"sort"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// PassPlan is the result of pass planning: the chosen three cards and a
// DecisionReport-like breakdown of every subset considered, ordered by
// score descending.
type PassPlan struct {
	Cards      [3]card.Card
	Candidates []PassCandidate
}

// PassCandidate is one 3-card subset under consideration during pass
// planning, with its total score and named components.
type PassCandidate struct {
	Cards      [3]card.Card
	Total      int
	Components []engine.Component
}

// PlanPass evaluates every 3-card subset of ctx's acting seat's hand for
// the given pass direction and returns the highest-scoring one. direction
// == rules.PassHold is a caller error: nothing is passed on a hold round.
func PlanPass(ctx engine.DecisionContext, direction rules.PassDirection) (PassPlan, error) {
	if direction == rules.PassHold {
		return PassPlan{}, &engine.IllegalPosition{Reason: "pass planning called with PassHold"}
	}

	hand := ctx.Round.Hand(ctx.Seat)
	cards := hand.Cards()
	if len(cards) < 3 {
		return PassPlan{}, &engine.IllegalPosition{Reason: "hand holds fewer than 3 cards to pass"}
	}

	target := direction.Target(ctx.Seat)
	targetIsLeader := isPassTarget(ctx.Board, target, maxSeat)
	targetIsTrailing := isPassTarget(ctx.Board, target, minSeat)

	var candidates []PassCandidate
	forEachTriple(cards, func(triple [3]card.Card) {
		total, components := passScore(ctx, hand, triple, targetIsLeader, targetIsTrailing)
		candidates = append(candidates, PassCandidate{Cards: triple, Total: total, Components: components})
	})

	candidates = filterQueenOfSpadesToLeader(candidates, targetIsLeader)

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Total != candidates[j].Total {
			return candidates[i].Total > candidates[j].Total
		}
		return lessTriple(candidates[i].Cards, candidates[j].Cards)
	})

	return PassPlan{Cards: candidates[0].Cards, Candidates: candidates}, nil
}

// passScore scores one candidate triple: shed value, void-creation bonus,
// minus a leader-avoidance penalty when passing to the scoreboard leader,
// plus a trailing-seat bonus when passing to the trailing seat.
func passScore(ctx engine.DecisionContext, hand card.Hand, triple [3]card.Card, targetIsLeader, targetIsTrailing bool) (int, []engine.Component) {
	w := ctx.Weights

	shed := 0
	for _, c := range triple {
		shed += c.PenaltyValue()
	}

	remaining := hand
	for _, c := range triple {
		remaining = remaining.Remove(c)
	}
	voidBonus := 0
	for _, c := range triple {
		if remaining.SuitMask(c.Suit()) == 0 && hand.SuitMask(c.Suit()) != 0 {
			voidBonus += w.VoidCreationBonus
		}
	}

	leaderPenalty := 0
	if targetIsLeader {
		leaderPenalty = w.PassToLeaderPenalty * shed
	}
	trailingBonus := 0
	if targetIsTrailing {
		trailingBonus = w.TrailingSeatBonus
	}

	components := []engine.Component{
		{Name: "shed_value", Value: shed},
		{Name: "void_creation", Value: voidBonus},
		{Name: "leader_avoidance", Value: -leaderPenalty},
		{Name: "trailing_bonus", Value: trailingBonus},
	}
	total := shed + voidBonus - leaderPenalty + trailingBonus
	return total, components
}

// filterQueenOfSpadesToLeader drops any candidate that would pass the
// Queen of Spades to the scoreboard leader — a hard guard, not a scored
// penalty (spec.md §4.3).
func filterQueenOfSpadesToLeader(candidates []PassCandidate, targetIsLeader bool) []PassCandidate {
	if !targetIsLeader {
		return candidates
	}
	filtered := candidates[:0:0]
	for _, c := range candidates {
		if containsQueenOfSpades(c.Cards) {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		// Every triple contains Q♠ (the hand holds only three cards): the
		// guard cannot be honoured without an empty result, so fall back
		// to the unfiltered set rather than returning nothing.
		return candidates
	}
	return filtered
}

func containsQueenOfSpades(triple [3]card.Card) bool {
	for _, c := range triple {
		if c == card.QueenOfSpades {
			return true
		}
	}
	return false
}

func isPassTarget(board rules.ScoreBoard, target rules.Seat, pick func(rules.ScoreBoard) rules.Seat) bool {
	return pick(board) == target
}

func maxSeat(board rules.ScoreBoard) rules.Seat {
	s, _ := board.Leader()
	return s
}

func minSeat(board rules.ScoreBoard) rules.Seat {
	best := rules.Seat(0)
	for s := rules.Seat(1); s < rules.NumSeats; s++ {
		if board[s] < board[best] {
			best = s
		}
	}
	return best
}

// forEachTriple calls fn once for every 3-combination of cards, in
// canonical index order, giving deterministic iteration for tie-breaking.
func forEachTriple(cards []card.Card, fn func([3]card.Card)) {
	n := len(cards)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				fn([3]card.Card{cards[i], cards[j], cards[k]})
			}
		}
	}
}

func lessTriple(a, b [3]card.Card) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}
	return false
}
