package engine

import (
	"sync/atomic"

	"github.com/coder/quartz"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// Difficulty selects which planner the dispatcher routes a decision to.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case Expert:
		return "Expert"
	default:
		return "?"
	}
}

// DecisionContext bundles everything a planner needs to decide one play or
// pass: the round as the acting seat sees it, that seat's belief state, the
// resolved configuration, and a seed for any sampling the planner performs.
type DecisionContext struct {
	Round   rules.RoundState
	Seat    rules.Seat
	Board   rules.ScoreBoard
	Tracker *tracker.UnseenTracker
	Weights weights.Weights
	Seed    int64

	// Clock backs any wall-clock budget this decision uses. Nil means the
	// caller wants production time; planners substitute quartz.NewReal().
	Clock quartz.Clock

	// Cancel, when non-nil, is polled at the same points the budget is
	// checked; a planner that observes it set returns its best completed
	// result flagged Stats.Cancelled (spec.md §5 "Cancellation").
	Cancel *atomic.Bool
}

// NewBudget builds the engine.Budget this context's Weights describe,
// wired to c.Clock when in wall-clock mode (falling back to a real clock
// if none was supplied).
func (c DecisionContext) NewBudget() *Budget {
	if c.Weights.StepBudgetMode {
		return NewStepBudget(c.Weights.StepCap)
	}
	clock := c.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return NewWallClockBudget(clock, c.Weights.WallClockCapMs)
}

// Cancelled reports whether the host has requested cancellation.
func (c DecisionContext) Cancelled() bool {
	return c.Cancel != nil && c.Cancel.Load()
}

// Validate checks the invariants DecisionContext callers rely on:
// Round.SeatToPlay matches Seat, and the tracker observes from Seat.
func (c DecisionContext) Validate() error {
	if c.Round.SeatToPlay != c.Seat {
		return &IllegalPosition{Reason: "round's seat-to-play does not match decision context seat"}
	}
	if c.Tracker != nil && c.Tracker.Observer() != c.Seat {
		return &IllegalPosition{Reason: "tracker observer does not match decision context seat"}
	}
	total := 0
	for _, h := range c.Round.Hands {
		total += h.Count()
	}
	total += len(c.Round.Current.Plays)
	if total > card.NumCards {
		return &IllegalPosition{Reason: "more cards in play than exist in a deck"}
	}
	return nil
}
