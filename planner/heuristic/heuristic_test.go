package heuristic

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

func newContext(t *testing.T, round rules.RoundState, seat rules.Seat, board rules.ScoreBoard) engine.DecisionContext {
	t.Helper()
	return engine.DecisionContext{
		Round:   round,
		Seat:    seat,
		Board:   board,
		Tracker: tracker.New(seat, round.Hand(seat)),
		Weights: weights.Default(),
		Seed:    1,
	}
}

// Scenario B: first-trick safety.
func TestDecideFirstTrickSafety(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c"),
		rules.East:  parseHand(t, "3c"),
		rules.South: parseHand(t, "Qs", "5h", "7d"),
		rules.West:  parseHand(t, "4c"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	round = round.Play(card.TwoOfClubs)
	round = round.Play(card.New(card.Three, card.Clubs))

	ctx := newContext(t, round, rules.South, rules.ScoreBoard{})
	report, err := Decide(ctx)
	require.NoError(t, err)
	assert.Equal(t, card.New(card.Seven, card.Diamonds), report.Chosen)
}

// Scenario C: first-trick forced penalty, lowest heart preferred over Q♠.
func TestDecideFirstTrickForcedPenaltyPrefersLowestHeart(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c"),
		rules.East:  parseHand(t, "3c"),
		rules.South: parseHand(t, "Qs", "5h", "7h"),
		rules.West:  parseHand(t, "4c"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	round = round.Play(card.TwoOfClubs)
	round = round.Play(card.New(card.Three, card.Clubs))

	ctx := newContext(t, round, rules.South, rules.ScoreBoard{})
	report, err := Decide(ctx)
	require.NoError(t, err)
	assert.Equal(t, card.New(card.Five, card.Hearts), report.Chosen)
	assert.NotEqual(t, card.QueenOfSpades, report.Chosen)
}

func TestDecideIsDeterministic(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c", "5c", "9d", "Kh"),
		rules.East:  parseHand(t, "3c", "6d", "Th", "As"),
		rules.South: parseHand(t, "4c", "7d", "Jh", "Ks"),
		rules.West:  parseHand(t, "8c", "Qd", "Ah", "2s"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	ctx := newContext(t, round, rules.North, rules.ScoreBoard{})

	a, errA := Decide(ctx)
	b, errB := Decide(ctx)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestDecideBareSkipsContinuation(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c", "5c", "9d", "Kh"),
		rules.East:  parseHand(t, "3c", "6d", "Th", "As"),
		rules.South: parseHand(t, "4c", "7d", "Jh", "Ks"),
		rules.West:  parseHand(t, "8c", "Qd", "Ah", "2s"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	ctx := newContext(t, round, rules.North, rules.ScoreBoard{})

	report, err := DecideBare(ctx)
	require.NoError(t, err)
	for _, c := range report.Candidates {
		assert.Equal(t, 0, c.ContinuationScore)
	}
}

func TestSelectStyleHuntLeaderWhenFarBehind(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c", "5c"),
		rules.East:  parseHand(t, "3c"),
		rules.South: parseHand(t, "4c"),
		rules.West:  parseHand(t, "6c"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	board := rules.ScoreBoard{rules.North: 72, rules.East: 12, rules.South: 10, rules.West: 8}
	ctx := newContext(t, round, rules.South, board)

	style := SelectStyle(ctx)
	assert.Equal(t, engine.HuntLeader, style)
}

func TestSelectStyleCautiousByDefault(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c"),
		rules.East:  parseHand(t, "3c"),
		rules.South: parseHand(t, "4c"),
		rules.West:  parseHand(t, "5c"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	ctx := newContext(t, round, rules.North, rules.ScoreBoard{})

	style := SelectStyle(ctx)
	assert.Equal(t, engine.Cautious, style)
}

// Scenario E: opponents have collected enough hearts to force a moon
// attempt abort; the report must surface a non-zero abort marker even
// though style still resolves to Cautious.
func TestDecideSurfacesMoonAttemptAbortedMarker(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c", "Kh"),
		rules.East:  parseHand(t, "3c"),
		rules.South: parseHand(t, "4c"),
		rules.West:  parseHand(t, "5c"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	ctx := newContext(t, round, rules.North, rules.ScoreBoard{})

	w := ctx.Weights
	for i := 0; i < w.MoonAbortOthersHearts; i++ {
		ctx.Tracker.ObserveTrickWon(rules.East, 1)
	}

	assert.True(t, MoonAttemptAborted(ctx))

	report, err := Decide(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.Cautious, report.Style)
	assert.True(t, report.Stats.MoonAttemptAborted)
}

func TestPlanPassGuardsQueenOfSpadesToLeader(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "Qs", "Kh", "2c", "3c"),
	}
	round := rules.NewRoundState(hands, rules.PassLeft)
	board := rules.ScoreBoard{rules.East: 90}
	ctx := newContext(t, round, rules.North, board)

	plan, err := PlanPass(ctx, rules.PassLeft)
	require.NoError(t, err)
	for _, c := range plan.Cards {
		assert.NotEqual(t, card.QueenOfSpades, c)
	}
}

func TestPlanPassRejectsHold(t *testing.T) {
	t.Parallel()
	hands := [rules.NumSeats]card.Hand{
		rules.North: parseHand(t, "2c", "3c", "4c"),
	}
	round := rules.NewRoundState(hands, rules.PassHold)
	ctx := newContext(t, round, rules.North, rules.ScoreBoard{})

	_, err := PlanPass(ctx, rules.PassHold)
	assert.Error(t, err)
}

func TestEmptyLegalMovesWhenHandExhausted(t *testing.T) {
	t.Parallel()
	var hands [rules.NumSeats]card.Hand
	round := rules.NewRoundState(hands, rules.PassHold)
	round.SeatToPlay = rules.North
	ctx := newContext(t, round, rules.North, rules.ScoreBoard{})

	_, err := Decide(ctx)
	require.Error(t, err)
	var empty *engine.EmptyLegalMoves
	assert.ErrorAs(t, err, &empty)
}
