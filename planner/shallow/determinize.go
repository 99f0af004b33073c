package shallow

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/internal/randutil"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
)

// determinizedContinuation is spec.md §4.4's optional determinization: it
// wraps probeContinuation in a sampling loop over ctx.Weights.
// DeterminizationSampleK world samples drawn from ctx.Tracker, substitutes
// each sampled world's opponent hands into a cloned round, runs the
// ordinary continuation probe against it, and averages the results
// (integer, truncating). Samples run concurrently via errgroup, grounded
// on the teacher's parallel Monte Carlo worker-fan-out shape. Falls back to
// a single un-sampled probe when determinization is disabled or the
// tracker cannot supply a feasible world.
func determinizedContinuation(ctx engine.DecisionContext, candidate card.Card, overlay weightsOverlay, budget *engine.Budget) continuation {
	if !ctx.Weights.DeterminizationEnabled || ctx.Tracker == nil {
		return probeContinuation(ctx, candidate, overlay, budget)
	}

	k := ctx.Weights.DeterminizationSampleK
	if k <= 0 {
		return probeContinuation(ctx, candidate, overlay, budget)
	}

	counts := opponentHandCounts(ctx)

	results := make([]continuation, k)
	sampled := make([]bool, k)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < k; i++ {
		i := i
		g.Go(func() error {
			world, err := ctx.Tracker.SampleWorld(counts, randutil.Derive(ctx.Seed, i))
			if err != nil {
				return nil //nolint:nilerr // missing sample degrades to fewer samples, not failure
			}
			sampledRound := substituteWorld(ctx.Round, ctx.Seat, world)
			sampledCtx := ctx
			sampledCtx.Round = sampledRound
			sampledBudget := engine.NewStepBudget(1 << 30)
			results[i] = probeContinuation(sampledCtx, candidate, overlay, sampledBudget)
			sampled[i] = true
			return nil
		})
	}
	_ = g.Wait()

	total, n := 0, 0
	var components []engine.Component
	for i, ok := range sampled {
		if !ok {
			continue
		}
		total += results[i].total
		n++
		if i == 0 {
			components = results[i].components
		}
	}
	if n == 0 {
		return probeContinuation(ctx, candidate, overlay, budget)
	}
	budget.Spend(k)
	return continuation{total: total / n, components: components}
}

// opponentHandCounts returns, for each seat other than ctx.Seat, the
// number of cards ctx.Tracker.SampleWorld must deal it: the seat's current hand
// size as already tracked by the round state.
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
