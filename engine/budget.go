package engine

import (
	"time"

	"github.com/coder/quartz"
)

// Budget tracks a planner's remaining search allowance under exactly one of
// two mutually exclusive modes: a monotonically incremented step counter,
// or a wall-clock deadline measured against an injectable quartz.Clock.
// Constructing a Budget with both modes configured is a caller error;
// NewStepBudget and NewWallClockBudget each produce a Budget in exactly one
// mode.
type Budget struct {
	stepMode bool

	stepCap  int
	stepUsed int

	clock   quartz.Clock
	started time.Time
	capMs   int64
}

// NewStepBudget returns a Budget in deterministic step-counting mode: Spend
// is checked against cap on every call.
func NewStepBudget(cap int) *Budget {
	return &Budget{stepMode: true, stepCap: cap}
}

// NewWallClockBudget returns a Budget in wall-clock mode, using clock to
// measure elapsed time against capMs. Passing a quartz.Mock in tests makes
// the budget's expiry deterministic.
func NewWallClockBudget(clock quartz.Clock, capMs int) *Budget {
	return &Budget{clock: clock, started: clock.Now(), capMs: int64(capMs)}
}

// Spend records one unit of search work (a node expansion, a candidate
// probe) against the budget's step counter. A no-op in wall-clock mode.
func (b *Budget) Spend(steps int) {
	if b.stepMode {
		b.stepUsed += steps
	}
}

// Exhausted reports whether the budget has been used up: the step counter
// has reached its cap, or the wall-clock deadline has passed.
func (b *Budget) Exhausted() bool {
	if b.stepMode {
		return b.stepUsed >= b.stepCap
	}
	return b.clock.Now().Sub(b.started) >= time.Duration(b.capMs)*time.Millisecond
}

// StepsUsed returns the number of steps spent so far (zero in wall-clock
// mode).
func (b *Budget) StepsUsed() int { return b.stepUsed }

// ElapsedMs returns milliseconds elapsed since the budget was constructed
// (zero in step mode).
func (b *Budget) ElapsedMs() int64 {
	if b.stepMode {
		return 0
	}
	return b.clock.Now().Sub(b.started).Milliseconds()
}

// AsExhaustedError builds the BudgetExhausted value describing the current
// state, for reports that need to flag why a planner stopped early.
func (b *Budget) AsExhaustedError() *BudgetExhausted {
	return &BudgetExhausted{StepsUsed: b.stepUsed, ElapsedMs: b.ElapsedMs()}
}
