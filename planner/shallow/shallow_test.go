package shallow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

func parseHand(t *testing.T, strs ...string) card.Hand {
	t.Helper()
	var h card.Hand
	for _, s := range strs {
		c, err := card.Parse(s)
		require.NoError(t, err)
		h = h.Add(c)
	}
	return h
}

func fullRound(t *testing.T) (rules.RoundState, rules.Seat) {
	t.Helper()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c", "5c", "9d", "Kh", "2s"),
		rules.East:  parseHand(t, "3c", "6d", "Th", "As", "3s"),
		rules.South: parseHand(t, "4c", "7d", "Jh", "Ks", "4d"),
		rules.West:  parseHand(t, "8c", "Qd", "Ah", "2d", "5d"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	return round, round.SeatToPlay
}

func newContext(t *testing.T, round rules.RoundState, seat rules.Seat, w weights.Weights) engine.DecisionContext {
	t.Helper()
	return engine.DecisionContext{
		Round:   round,
		Seat:    seat,
		Board:   rules.ScoreBoard{},
		Tracker: tracker.New(seat, round.Hand(seat)),
		Weights: w,
		Seed:    7,
	}
}

func TestDecideReturnsLegalCard(t *testing.T) {
	t.Parallel()
	round, seat := fullRound(t)
	ctx := newContext(t, round, seat, weights.Default())

	report, err := Decide(ctx)
	require.NoError(t, err)

	legal := rules.LegalCards(round, seat)
	assert.True(t, legal.Contains(report.Chosen))
}

func TestDecideIsDeterministic(t *testing.T) {
	t.Parallel()
	round, seat := fullRound(t)
	ctx := newContext(t, round, seat, weights.Default())

	a, errA := Decide(ctx)
	b, errB := Decide(ctx)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestDecideSurfacesMoonAttemptAbortedMarker(t *testing.T) {
	t.Parallel()
	round, seat := fullRound(t)
	ctx := newContext(t, round, seat, weights.Default())

	for i := 0; i < ctx.Weights.MoonAbortOthersHearts; i++ {
		ctx.Tracker.ObserveTrickWon(seat.Next(), 1)
	}

	report, err := Decide(ctx)
	require.NoError(t, err)
	assert.True(t, report.Stats.MoonAttemptAborted)
}

func TestDecideExplainUsesNormalTierRegardlessOfLeverage(t *testing.T) {
	t.Parallel()
	round, seat := fullRound(t)
	w := weights.Default()
	w.LeverageThresholdNarrow = 1000
	w.LeverageThresholdNormal = 2000

	ctx := newContext(t, round, seat, w)
	report, err := DecideExplain(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, report.Stats.ScannedPhaseB, w.Normal.TopK)
}

func TestLeverageIncreasesWithPenaltyOnTable(t *testing.T) {
	t.Parallel()
	round, seat := fullRound(t)
	ctx := newContext(t, round, seat, weights.Default())
	legal := rules.LegalCards(round, seat)

	base := Leverage(ctx, legal.Count())

	withPenalty := ctx
	withPenalty.Round.Current = rules.Trick{Plays: []rules.Play{{Seat: rules.North, Card: card.New(card.Five, card.Hearts)}}}
	withPenalty.Round.SeatToPlay = rules.East

	bumped := Leverage(withPenalty, legal.Count())
	assert.Greater(t, bumped, base)
}

func TestTierForRespectsDisabledTiering(t *testing.T) {
	t.Parallel()
	w := weights.Default()
	w.TiersEnabled = false
	assert.Equal(t, weights.TierNormal, TierFor(w, 0))
	assert.Equal(t, weights.TierNormal, TierFor(w, 9999))
}

func TestTierForThresholds(t *testing.T) {
	t.Parallel()
	w := weights.Default()
	w.LeverageThresholdNarrow = 4
	w.LeverageThresholdNormal = 9
	assert.Equal(t, weights.TierNarrow, TierFor(w, 0))
	assert.Equal(t, weights.TierNormal, TierFor(w, 5))
	assert.Equal(t, weights.TierWide, TierFor(w, 9))
}

// Budget monotonicity (spec.md §8 property 8): raising the step cap never
// decreases scanned_phase_b at equal leverage tier.
func TestBudgetMonotonicity(t *testing.T) {
	t.Parallel()
	round, seat := fullRound(t)

	low := weights.Default()
	low.TiersEnabled = false
	low.StepBudgetMode = true
	low.StepCap = 2

	high := low
	high.StepCap = 10000

	ctxLow := newContext(t, round, seat, low)
	ctxHigh := newContext(t, round, seat, high)

	reportLow, err := Decide(ctxLow)
	require.NoError(t, err)
	reportHigh, err := Decide(ctxHigh)
	require.NoError(t, err)

	assert.LessOrEqual(t, reportLow.Stats.ScannedPhaseB, reportHigh.Stats.ScannedPhaseB)
}

func TestDecideEmptyLegalMoves(t *testing.T) {
	t.Parallel()
	var hands [rules.NumSeats]card.Hand
	round := rules.NewRoundState(hands, rules.PassHold)
	round.SeatToPlay = rules.North
	ctx := newContext(t, round, rules.North, weights.Default())

	_, err := Decide(ctx)
	require.Error(t, err)
	var empty *engine.EmptyLegalMoves
	assert.ErrorAs(t, err, &empty)
}

func TestDeterminizationProducesLegalChoice(t *testing.T) {
	t.Parallel()
	round, seat := fullRound(t)
	w := weights.Default()
	w.DeterminizationEnabled = true
	w.DeterminizationSampleK = 4

	ctx := newContext(t, round, seat, w)
	report, err := Decide(ctx)
	require.NoError(t, err)

	legal := rules.LegalCards(round, seat)
	assert.True(t, legal.Contains(report.Chosen))
}
