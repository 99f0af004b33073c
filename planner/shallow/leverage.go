// Package shallow implements the "Hard" difficulty's top-K continuation
// planner: heuristic base scoring, a 2-ply continuation probe over the
// best few candidates, leverage-based tiering of search width, and a
// deterministic step or wall-clock budget (spec.md §4.4).
package shallow

import (
	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// Leverage folds candidate diversity, penalties on the table, known-void
// opportunities, score gap to the leader, and cards remaining into a single
// integer summarising how decision-rich ctx's position is.
func Leverage(ctx engine.DecisionContext, legalCount int) int {
	score := legalCount * 2

	if ctx.Round.Current.ContainsPenalty() {
		score += 10
	}

	if ctx.Tracker != nil {
		for s := rules.Seat(0); s < rules.NumSeats; s++ {
			for suit := card.Suit(0); suit < card.NumSuits; suit++ {
				if ctx.Tracker.IsVoid(s, suit) {
					score += 3
				}
			}
		}
	}

	_, margin := ctx.Board.Leader()
	if margin > 0 {
		score += margin / 5
	}

	remaining := ctx.Round.CardsRemaining()
	played := card.NumCards - remaining
	if played > 0 {
		score += played / 4
	}

	return score
}

// TierFor maps a leverage score to the tiering configuration w describes.
// Tiering is bypassed (always TierNormal) when w.TiersEnabled is false.
func TierFor(w weights.Weights, leverage int) weights.Tier {
	if !w.TiersEnabled {
		return weights.TierNormal
	}
	switch {
	case leverage < w.LeverageThresholdNarrow:
		return weights.TierNarrow
	case leverage >= w.LeverageThresholdNormal:
		return weights.TierWide
	default:
		return weights.TierNormal
	}
}
