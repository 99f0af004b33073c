// Package heuristic implements the baseline card-scoring planner: style
// selection, per-candidate feature scoring, a one-trick look-ahead
// simulation, and pass planning. It underlies every difficulty tier either
// directly (Easy, Normal) or as the base-score layer the shallow and deep
// planners build on.
package heuristic

import (
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// SelectStyle picks the playing stance for this decision, per spec.md
// §4.3: AggressiveMoon when moon-commit conditions hold (and abort
// conditions do not), HuntLeader when an opponent leads the scoreboard by
// enough margin and the acting seat is not itself endangered, Cautious
// otherwise.
func SelectStyle(ctx engine.DecisionContext) engine.Style {
	w := ctx.Weights

	if ctx.Tracker != nil && moonCommitHolds(ctx) && !moonAbortHolds(ctx) {
		return engine.AggressiveMoon
	}

	leader, margin := ctx.Board.Leader()
	if leader != ctx.Seat && margin >= w.HuntLeaderMargin && !endangered(ctx) {
		return engine.HuntLeader
	}

	return engine.Cautious
}

// moonCommitHolds reports whether the acting seat's position satisfies
// every configured moon-commit threshold.
func moonCommitHolds(ctx engine.DecisionContext) bool {
	w := ctx.Weights
	round := ctx.Round
	seat := ctx.Seat

	cardsPlayed := 0
	for _, n := range round.PlayedCount {
		cardsPlayed += n
	}
	if cardsPlayed > w.MoonCommitMaxCards {
		return false
	}
	if ctx.Board[seat] > w.MoonCommitMaxScore {
		return false
	}

	moon := ctx.Tracker.MoonState()
	if moon.TricksWonClean[seat] < w.MoonCommitMinTricks {
		return false
	}

	hand := round.Hand(seat)
	if heartsCount(hand) < w.MoonCommitMinHearts {
		return false
	}
	if countHighHearts(hand) < w.MoonCommitMinHighHearts {
		return false
	}

	return true
}

// MoonAttemptAborted reports whether moonAbortHolds fired for ctx — exported
// so callers can surface the abort as a DecisionReport/Stats marker (spec.md
// §8 scenario E) rather than only letting it silently steer style selection.
func MoonAttemptAborted(ctx engine.DecisionContext) bool {
	return ctx.Tracker != nil && moonAbortHolds(ctx)
}

// moonAbortHolds reports whether an in-progress moon attempt should be
// abandoned: opponents have already collected too many hearts, or (per
// configuration) control has been lost.
func moonAbortHolds(ctx engine.DecisionContext) bool {
	w := ctx.Weights
	moon := ctx.Tracker.MoonState()

	othersHearts := 0
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		if s == ctx.Seat {
			continue
		}
		othersHearts += moon.CapturedPenalty[s]
	}
	if othersHearts >= w.MoonAbortOthersHearts {
		return true
	}

	if w.MoonAbortLostControl && moon.TricksWonClean[ctx.Seat] < w.MoonCommitMinControl {
		return true
	}
	return false
}

// endangered reports whether the acting seat's own score is close enough
// to a round-ending threshold that hunting the leader is too risky.
func endangered(ctx engine.DecisionContext) bool {
	return ctx.Board[ctx.Seat] >= ctx.Weights.EndangeredScoreMargin*10
}
