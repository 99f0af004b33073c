package shallow

import (
	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// applyNudges applies the small, opt-in additive bumps spec.md §4.4
// describes: feeding a uniquely identified leader on a penalty trick when
// the plain feed weight is otherwise small, and near-100 self-capture
// avoidance. Both are guarded by score-context conditions and off by
// default (ctx.Weights.NudgesEnabled).
func applyNudges(ctx engine.DecisionContext, style engine.Style, c *engine.Candidate) {
	w := ctx.Weights

	leader, _ := ctx.Board.Leader()
	_, established := ctx.Round.Current.LedSuit()
	uniqueLeader := isUniqueLeader(ctx.Board)
	penaltyOnTable := ctx.Round.Current.ContainsPenalty()

	if uniqueLeader && established && penaltyOnTable && leader != ctx.Seat && w.LeaderFeedBase < w.ContinuationCap/4 {
		if bump := w.HuntFeedPerPenalty * c.Card.PenaltyValue(); bump != 0 {
			c.Total += bump
			c.Components = append(c.Components, engine.Component{Name: "nudge_feed_leader", Value: bump})
		}
	}

	if ctx.Board[ctx.Seat] >= w.Near100Threshold {
		if bump := -w.Near100ShedPerPenalty * c.Card.PenaltyValue(); bump != 0 {
			c.Total += bump
			c.Components = append(c.Components, engine.Component{Name: "nudge_near100", Value: bump})
		}
	}
}

// applyAdviser adds a precomputed bias from ctx.Weights.AdviserBiasMap,
// keyed on the closed FeatureFingerprint schema, clamped to
// ctx.Weights.AdviserMaxBias in either direction (spec.md §9 Open Question
// resolution). A no-op when the bias map is nil or the fingerprint has no
// entry; Decide only calls it when ctx.Weights.AdviserEnabled is set.
func applyAdviser(ctx engine.DecisionContext, style engine.Style, tier weights.Tier, c *engine.Candidate) {
	w := ctx.Weights
	if w.AdviserBiasMap == nil {
		return
	}

	ledSuit, established := ctx.Round.Current.LedSuit()
	fp := weights.FeatureFingerprint{
		Style:              style.String(),
		Tier:               tier,
		LedSuitIsHearts:    established && ledSuit == card.Hearts,
		HoldsQueenOfSpades: ctx.Round.Hand(ctx.Seat).Contains(card.QueenOfSpades),
		PenaltyOnTable:     ctx.Round.Current.ContainsPenalty(),
	}
	bias, ok := w.AdviserBiasMap[fp]
	if !ok {
		return
	}
	if bias > w.AdviserMaxBias {
		bias = w.AdviserMaxBias
	}
	if bias < -w.AdviserMaxBias {
		bias = -w.AdviserMaxBias
	}
	c.Total += int(bias)
	c.Components = append(c.Components, engine.Component{Name: "adviser_bias", Value: int(bias)})
}
