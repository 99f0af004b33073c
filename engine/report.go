package engine

import "github.com/0x4D44/mdhearts-sub002/card"

// Style is the heuristic planner's selected playing stance for this
// decision (spec.md §4.3).
type Style int

const (
	Cautious Style = iota
	AggressiveMoon
	HuntLeader
)

func (s Style) String() string {
	switch s {
	case AggressiveMoon:
		return "AggressiveMoon"
	case HuntLeader:
		return "HuntLeader"
	default:
		return "Cautious"
	}
}

// Component is one named, scored contribution to a candidate's total —
// every scoring feature the heuristic, shallow, and deep planners apply
// records one of these, so a DecisionReport can be inspected feature by
// feature rather than only as an opaque total.
type Component struct {
	Name  string
	Value int
}

// Candidate is one legal card under consideration, with its score broken
// into base, continuation, and total, plus the named components that
// produced them.
type Candidate struct {
	Card             card.Card
	BaseScore        int
	ContinuationScore int
	Total            int
	Components       []Component
}

// Stats carries the search statistics a DecisionReport records: how much
// work each phase did, how the budget was spent, and how deep search went.
type Stats struct {
	ScannedPhaseA      int
	ScannedPhaseB      int
	CandidatesSkipped  int
	TranspositionHits  int
	TranspositionTotal int
	DepthReached       int
	StepsUsed          int
	ElapsedMs          int64
	BudgetExhausted    bool
	Cancelled          bool
	SamplingFailed     bool
	OverflowGuarded    bool
	UsedFallback       bool
	MoonAttemptAborted bool
}

// DecisionReport is the full record of one decision: the chosen card, every
// candidate considered (ordered, descending by total), search statistics,
// and which style/objective produced the result. Two decisions made with
// identical inputs (including sampling seed) must produce byte-identical
// reports — see spec.md §8 property 2.
type DecisionReport struct {
	Chosen     card.Card
	Candidates []Candidate
	Stats      Stats
	Style      Style
	Difficulty Difficulty
}
