package shallow

import (
	"sort"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/planner/heuristic"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// continuation is the Phase B result for one top-K candidate: its total
// continuation contribution (already capped) and the named components that
// produced it.
type continuation struct {
	total      int
	components []engine.Component
}

// probeContinuation runs spec.md §4.4 Phase B for one candidate: a one-ply
// simulation of the immediate trick, then — if the acting seat would lead
// the next trick — up to overlay.NextBranchLimit probed next-trick leads,
// each branched on the canonical opponent reply and a max-penalty-on-void
// reply (second-opponent branching). budget.Spend is charged per node
// visited so the caller's step cap governs total work.
func probeContinuation(ctx engine.DecisionContext, candidate card.Card, overlay weightsOverlay, budget *engine.Budget) continuation {
	round, trick, ok := heuristic.CompleteTrick(ctx.Round.Play(candidate))
	budget.Spend(1)
	if !ok {
		return continuation{}
	}

	total, components := trickContribution(ctx, trick, "sim", overlay.feedPermille, overlay.selfCapPermille)

	if round.SeatToPlay == ctx.Seat && !round.RoundOver() {
		nextTotal, nextComponents := probeNextLeads(ctx, round, overlay, budget)
		total += nextTotal
		components = append(components, nextComponents...)
	}

	if total > ctx.Weights.ContinuationCap {
		total = ctx.Weights.ContinuationCap
	}
	if total < -ctx.Weights.ContinuationCap {
		total = -ctx.Weights.ContinuationCap
	}
	return continuation{total: total, components: components}
}

// probeNextLeads evaluates up to overlay.nextBranchLimit leads the acting
// seat could make next, chosen by heuristic base score (best first so the
// highest-value continuations are the ones explored under a tight budget).
func probeNextLeads(ctx engine.DecisionContext, round rules.RoundState, overlay weightsOverlay, budget *engine.Budget) (int, []engine.Component) {
	nextCtx := ctx
	nextCtx.Round = round

	legal := rules.LegalCards(round, ctx.Seat)
	leads := legal.Cards()
	sort.SliceStable(leads, func(i, j int) bool {
		bi, _ := heuristic.ScoreCandidate(nextCtx, leads[i])
		bj, _ := heuristic.ScoreCandidate(nextCtx, leads[j])
		if bi != bj {
			return bi > bj
		}
		return leads[i].Less(leads[j])
	})
	if len(leads) > overlay.nextBranchLimit {
		leads = leads[:overlay.nextBranchLimit]
	}

	total := 0
	var components []engine.Component
	for _, lead := range leads {
		budget.Spend(1)
		leadRound := round.Play(lead)

		canonRound, canonTrick, canonOK := heuristic.CompleteTrick(leadRound)
		maxRound, maxTrick, maxOK := heuristic.CompleteTrickWith(leadRound, heuristic.MaxPenaltyFollowUp)
		_, _ = canonRound, maxRound

		sum, n := 0, 0
		if canonOK {
			v, _ := trickContribution(ctx, canonTrick, "probe_canon", overlay.feedPermille, overlay.selfCapPermille)
			sum += v
			n++
		}
		if maxOK {
			v, _ := trickContribution(ctx, maxTrick, "probe_max", overlay.feedPermille, overlay.selfCapPermille)
			sum += v
			n++
		}
		if n > 0 {
			total += sum / n
		}
	}
	if len(leads) > 0 {
		components = append(components, engine.Component{Name: "phaseb_next_leads", Value: total})
	}
	return total, components
}

// trickContribution scores one resolved trick the same way the heuristic
// planner's one-ply simulation does: a feed-leader term when a unique
// scoreboard leader wins a penalty trick, and a self-capture term when the
// acting seat wins one. permille factors apply the Wide tier's continuation
// boost (spec.md §4.4).
func trickContribution(ctx engine.DecisionContext, trick rules.Trick, label string, feedPermille, selfCapPermille int) (int, []engine.Component) {
	winner := trick.Resolve()
	penalty := trick.Penalty()
	if penalty == 0 {
		return 0, nil
	}

	w := ctx.Weights
	leader, _ := ctx.Board.Leader()
	uniqueLeader := isUniqueLeader(ctx.Board)

	total := 0
	var components []engine.Component
	if uniqueLeader && winner == leader {
		v := w.ContinuationWeightFeed * penalty
		v += v * feedPermille / 1000
		total += v
		components = append(components, engine.Component{Name: label + "_feed_leader", Value: v})
	}
	if winner == ctx.Seat {
		v := w.ContinuationWeightSelf * penalty
		v += v * selfCapPermille / 1000
		total += v
		components = append(components, engine.Component{Name: label + "_self_capture", Value: v})
	}
	return total, components
}

func isUniqueLeader(board rules.ScoreBoard) bool {
	best := board[0]
	for _, v := range board {
		if v > best {
			best = v
		}
	}
	count := 0
	for _, v := range board {
		if v == best {
			count++
		}
	}
	return count == 1
}
