package shallow

import (
	"sort"

	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/planner/heuristic"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// weightsOverlay is the small set of tier-varying limits Decide consults
// once per call, resolved from weights.TierOverlay plus the Wide tier's
// per-mille continuation boost.
type weightsOverlay struct {
	topK            int
	nextBranchLimit int
	feedPermille    int
	selfCapPermille int
}

func resolveOverlay(w weights.Weights, tier weights.Tier) weightsOverlay {
	o := w.TierOverlayFor(tier)
	return weightsOverlay{
		topK:            o.TopK,
		nextBranchLimit: o.NextBranchLimit,
		feedPermille:    o.PermilleBoostFeed,
		selfCapPermille: o.PermilleBoostSelfCap,
	}
}

// Decide implements spec.md §4.4: heuristic base scoring (Phase A), top-K
// continuation probing (Phase B) with an early-cutoff guard (Phase C), and
// leverage-based tiering of the search width. ctx.Weights.TiersEnabled ==
// false disables tiering (Normal overlay applies unconditionally); explain
// callers that need reproducible output across configuration changes
// should call DecideExplain instead, which always uses the Normal overlay.
func Decide(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	return decide(ctx, true)
}

// DecideExplain runs the same Phase A/B/C pipeline as Decide but always
// under the Normal tier overlay, regardless of the position's leverage or
// ctx.Weights.TiersEnabled — spec.md §4.4's "the explain code path uses a
// fixed deterministic set so that explanations remain reproducible across
// configurations".
func DecideExplain(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	return decide(ctx, false)
}

func decide(ctx engine.DecisionContext, tiered bool) (engine.DecisionReport, error) {
	if err := ctx.Validate(); err != nil {
		return engine.DecisionReport{}, err
	}

	legal := rules.LegalCards(ctx.Round, ctx.Seat)
	if legal.Count() == 0 {
		return engine.DecisionReport{}, &engine.EmptyLegalMoves{Seat: int(ctx.Seat)}
	}

	budget := ctx.NewBudget()

	tier := weights.TierNormal
	if tiered {
		tier = TierFor(ctx.Weights, Leverage(ctx, legal.Count()))
	}
	overlay := resolveOverlay(ctx.Weights, tier)

	style := heuristic.SelectStyle(ctx)

	// Phase A.
	cards := legal.Cards()
	candidates := make([]engine.Candidate, 0, len(cards))
	for _, c := range cards {
		budget.Spend(1)
		base, components := heuristic.ScoreCandidate(ctx, c)
		candidates = append(candidates, engine.Candidate{
			Card:       c,
			BaseScore:  base,
			Total:      base,
			Components: components,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].BaseScore != candidates[j].BaseScore {
			return candidates[i].BaseScore > candidates[j].BaseScore
		}
		return candidates[i].Card.Less(candidates[j].Card)
	})
	scannedA := len(candidates)

	// Phase B + C.
	topK := overlay.topK
	if topK > len(candidates) {
		topK = len(candidates)
	}

	scannedB := 0
	skipped := 0
	bestTotal := candidates[0].BaseScore
	exhausted := false

	for i := 0; i < topK; i++ {
		if budget.Exhausted() {
			exhausted = true
			break
		}
		if ctx.Cancelled() {
			break
		}

		safeUpperBound := candidates[i].BaseScore + maxInt(ctx.Weights.ContinuationCap, ctx.Weights.EarlyCutoffMargin)
		if i > 0 && safeUpperBound <= bestTotal {
			skipped = topK - i
			break
		}

		cont := determinizedContinuation(ctx, candidates[i].Card, overlay, budget)
		candidates[i].ContinuationScore = cont.total
		candidates[i].Components = append(candidates[i].Components, cont.components...)
		candidates[i].Total = candidates[i].BaseScore + cont.total
		scannedB++

		if candidates[i].Total > bestTotal {
			bestTotal = candidates[i].Total
		}
	}

	if ctx.Weights.NudgesEnabled {
		for i := range candidates[:topK] {
			applyNudges(ctx, style, &candidates[i])
		}
	}
	if ctx.Weights.AdviserEnabled {
		for i := range candidates[:topK] {
			applyAdviser(ctx, style, tier, &candidates[i])
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Total != candidates[j].Total {
			return candidates[i].Total > candidates[j].Total
		}
		return candidates[i].Card.Less(candidates[j].Card)
	})

	report := engine.DecisionReport{
		Chosen:     candidates[0].Card,
		Candidates: candidates,
		Style:      style,
		Stats: engine.Stats{
			ScannedPhaseA:      scannedA,
			ScannedPhaseB:      scannedB,
			CandidatesSkipped:  skipped,
			StepsUsed:          budget.StepsUsed(),
			ElapsedMs:          budget.ElapsedMs(),
			BudgetExhausted:    exhausted,
			Cancelled:          ctx.Cancelled(),
			MoonAttemptAborted: heuristic.MoonAttemptAborted(ctx),
		},
	}
	return report, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
