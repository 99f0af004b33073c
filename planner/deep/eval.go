package deep

import "github.com/0x4D44/mdhearts-sub002/rules"

// leafDelta estimates, for every seat, the captured-penalty delta from
// round to the end of the round. When round is complete this is exact
// (the moon transform applied against baseline, identically to the
// endgame solver's terminal evaluation). When the search cuts off before
// the round ends, the exact captured-so-far component is combined with a
// coarse static estimate: the penalty points still sitting in each seat's
// own hand, on the reasoning that a seat holding hearts or the Queen of
// Spades carries elevated risk of eventually being forced to shed them
// into a trick it wins. This is a static approximation, not a solve — it
// only has to be good enough to order and bound search, not to be exact;
// exactness near the end of the round comes from the endgame handoff
// instead (see Decide).
func leafDelta(round rules.RoundState, rootLen int, baseline [rules.NumSeats]int) [rules.NumSeats]int {
	raw := rules.CapturedPoints(round.History[rootLen:])

	if round.RoundOver() {
		var absolute [rules.NumSeats]int
		for i := range absolute {
			absolute[i] = baseline[i] + raw[i]
		}
		final := rules.ApplyMoonShot(absolute)
		var delta [rules.NumSeats]int
		for i := range delta {
			delta[i] = final[i] - baseline[i]
		}
		return delta
	}

	estimate := raw
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		estimate[s] += round.Hand(s).PenaltyValue()
	}
	return estimate
}

// paranoidScalar reduces a per-seat delta vector to the single scalar the
// alpha-beta search maximises/minimises: rootSeat's delta subtracted from
// the sum of every other seat's delta. Higher is better for rootSeat. This
// "paranoid" reduction — every other seat is treated as one adversary
// conspiring against rootSeat — is what makes a four-player trick-taking
// game tractable with ordinary two-valued alpha-beta pruning.
func paranoidScalar(delta [rules.NumSeats]int, rootSeat rules.Seat) int {
	total := 0
	for s, v := range delta {
		if rules.Seat(s) == rootSeat {
			total -= v
		} else {
			total += v
		}
	}
	return total
}
