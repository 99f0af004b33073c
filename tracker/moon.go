package tracker

import "github.com/0x4D44/mdhearts-sub002/rules"

// moonState accumulates the running per-seat facts the heuristic planner's
// style selection needs to decide whether a shoot-the-moon attempt is live:
// how many penalty points each seat has captured so far, how many tricks
// each seat has won, and how many of those were won without taking any
// penalty (a "clean" trick win, evidence of control without cost).
type moonState struct {
	capturedPenalty [rules.NumSeats]int
	tricksWon       [rules.NumSeats]int
	tricksWonClean  [rules.NumSeats]int
}

func newMoonState() moonState { return moonState{} }

// observeTrickWon folds one completed trick's outcome into the running
// state: winner captured penalty points out of the trick.
func (m *moonState) observeTrickWon(winner rules.Seat, penalty int) {
	m.capturedPenalty[winner] += penalty
	m.tricksWon[winner]++
	if penalty == 0 {
		m.tricksWonClean[winner]++
	}
}

func (m moonState) snapshot() MoonState {
	return MoonState{
		CapturedPenalty: m.capturedPenalty,
		TricksWon:       m.tricksWon,
		TricksWonClean:  m.tricksWonClean,
	}
}

// MoonState is the read-only view of a tracker's moon-shot bookkeeping,
// exposed to planners that decide whether an aggressive-moon style is
// still viable.
type MoonState struct {
	CapturedPenalty [rules.NumSeats]int
	TricksWon       [rules.NumSeats]int
	TricksWonClean  [rules.NumSeats]int
}

// HeartsCapturedBy returns the total penalty points (hearts plus Q♠ if
// applicable) captured by seat so far this round.
func (m MoonState) HeartsCapturedBy(seat rules.Seat) int { return m.CapturedPenalty[seat] }
