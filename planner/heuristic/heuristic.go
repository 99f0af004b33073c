package heuristic

import (
	"sort"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// ScoreCandidate computes c's base feature score under ctx — the same Phase
// A scoring Decide/DecideBare use — without running the one-trick
// simulation. Exposed for the shallow and deep planners, which build their
// own continuation logic on top of this base layer (spec.md §4.4, §4.5).
func ScoreCandidate(ctx engine.DecisionContext, c card.Card) (int, []engine.Component) {
	style := SelectStyle(ctx)
	in := scoringInputFor(ctx, style)
	return baseScore(in, c)
}

// Decide scores every legal card for ctx.Seat, including the one-trick
// continuation simulation, and returns the highest-scoring one as a
// DecisionReport. Ties break on the canonical card order (suit then rank),
// making the result deterministic given equal inputs — spec.md §4.3
// "Determinism". This is the Normal-tier code path (spec.md §4.8).
func Decide(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	return decide(ctx, true)
}

// DecideBare is Decide without the one-trick continuation simulation —
// base feature score only. This is the Easy-tier code path (spec.md §4.8).
func DecideBare(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	return decide(ctx, false)
}

func decide(ctx engine.DecisionContext, simulate bool) (engine.DecisionReport, error) {
	if err := ctx.Validate(); err != nil {
		return engine.DecisionReport{}, err
	}

	legal := rules.LegalCards(ctx.Round, ctx.Seat)
	if legal.Count() == 0 {
		return engine.DecisionReport{}, &engine.EmptyLegalMoves{Seat: int(ctx.Seat)}
	}

	style := SelectStyle(ctx)
	in := scoringInputFor(ctx, style)

	candidates := make([]engine.Candidate, 0, legal.Count())
	for _, c := range legal.Cards() {
		base, components := baseScore(in, c)
		feed, self := 0, 0
		if simulate {
			var simComponents []engine.Component
			feed, self, simComponents = simulateTrick(ctx, c)
			components = append(components, simComponents...)
		}
		total := base + feed + self
		candidates = append(candidates, engine.Candidate{
			Card:              c,
			BaseScore:         base,
			ContinuationScore: feed + self,
			Total:             total,
			Components:        components,
		})
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
			ScannedPhaseA:      len(candidates),
			MoonAttemptAborted: MoonAttemptAborted(ctx),
		},
	}
	return report, nil
}

func scoringInputFor(ctx engine.DecisionContext, style engine.Style) scoringInput {
	round := ctx.Round
	hand := round.Hand(ctx.Seat)
	leading := len(round.Current.Plays) == 0
	ledSuit, _ := round.Current.LedSuit()
	void := !leading && !hand.HasSuit(ledSuit)

	cardsPlayed := 0
	for _, n := range round.PlayedCount {
		cardsPlayed += n
	}

	return scoringInput{
		ctx:         ctx,
		style:       style,
		hand:        hand,
		leading:     leading,
		ledSuit:     ledSuit,
		void:        void,
		cardsPlayed: cardsPlayed,
	}
}
