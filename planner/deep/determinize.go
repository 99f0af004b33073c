package deep

import (
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
)

// opponentHandCounts returns, for each seat other than ctx.Seat, the
// number of cards a sampled world must deal it: that seat's current hand
// size as already tracked by the round state. Mirrors the shallow
// planner's determinization helper of the same shape.
func opponentHandCounts(ctx engine.DecisionContext) [rules.NumSeats]int {
	var counts [rules.NumSeats]int
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		if s == ctx.Seat {
			continue
		}
		counts[s] = ctx.Round.Hand(s).Count()
	}
	return counts
}

// substituteWorld returns a copy of round with every seat but observer's
// hand replaced by world's sampled deal, leaving the observer's own hand
// and the in-progress trick untouched.
func substituteWorld(round rules.RoundState, observer rules.Seat, world tracker.World) rules.RoundState {
	next := round
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		if s == observer {
			continue
		}
		next.Hands[s] = world.Hands[s]
	}
	return next
}
