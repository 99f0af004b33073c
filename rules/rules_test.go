package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x4D44/mdhearts-sub002/card"
)

func mustCards(t *testing.T, strs ...string) card.Hand {
	t.Helper()
	var h card.Hand
	for _, s := range strs {
		c, err := card.Parse(s)
		require.NoError(t, err)
		h = h.Add(c)
	}
	return h
}

func TestMustOpenTwoOfClubs(t *testing.T) {
	t.Parallel()
	hands := [NumSeats]card.Hand{
		North: mustCards(t, "2c", "Kh", "As"),
		East:  mustCards(t, "3c", "2h", "Ad"),
		South: mustCards(t, "4c", "4h", "2d"),
		West:  mustCards(t, "5c", "5h", "3d"),
	}
	round := NewRoundState(hands, PassHold)
	assert.Equal(t, North, round.SeatToPlay)

	legal := LegalCards(round, North)
	assert.Equal(t, 1, legal.Count())
	assert.True(t, legal.Contains(card.TwoOfClubs))
}

func TestFirstTrickSafety(t *testing.T) {
	t.Parallel()
	// South is void in clubs and holds Qs, 5h, 7d on the first trick.
	hands := [NumSeats]card.Hand{
		North: mustCards(t, "2c"),
		East:  mustCards(t, "3c"),
		South: mustCards(t, "Qs", "5h", "7d"),
		West:  mustCards(t, "4c"),
	}
	round := NewRoundState(hands, PassHold)
	round = round.Play(card.TwoOfClubs) // North leads 2c
	round = round.Play(card.New(card.Three, card.Clubs))

	legal := LegalCards(round, South)
	assert.Equal(t, 1, legal.Count())
	assert.True(t, legal.Contains(card.New(card.Seven, card.Diamonds)))
}

func TestFirstTrickForcedPenalty(t *testing.T) {
	t.Parallel()
	hands := [NumSeats]card.Hand{
		North: mustCards(t, "2c"),
		East:  mustCards(t, "3c"),
		South: mustCards(t, "Qs", "5h", "7h"),
		West:  mustCards(t, "4c"),
	}
	round := NewRoundState(hands, PassHold)
	round = round.Play(card.TwoOfClubs)
	round = round.Play(card.New(card.Three, card.Clubs))

	legal := LegalCards(round, South)
	assert.Equal(t, 3, legal.Count(), "holds only penalty cards, forced to pick one")

	// The heuristic/engine layers are expected to choose the lowest heart
	// (5h) among these; the rules kernel itself only restricts legality.
	assert.True(t, legal.Contains(card.New(card.Five, card.Hearts)))
	assert.True(t, legal.Contains(card.New(card.Seven, card.Hearts)))
	assert.True(t, legal.Contains(card.QueenOfSpades))
}

func TestHeartsBreakingRule(t *testing.T) {
	t.Parallel()
	hands := [NumSeats]card.Hand{
		North: mustCards(t, "2c", "Ah", "Kd"),
		East:  mustCards(t, "3c"),
		South: mustCards(t, "4c"),
		West:  mustCards(t, "5c"),
	}
	round := NewRoundState(hands, PassHold)
	round = round.Play(card.TwoOfClubs)
	round = round.Play(card.New(card.Three, card.Clubs))
	round = round.Play(card.New(card.Four, card.Clubs))
	round = round.Play(card.New(card.Five, card.Clubs))
	// Trick complete; West won it (5c is the highest club), hearts not yet broken.
	assert.False(t, round.HeartsBroken)

	legal := LegalCards(round, North)
	assert.False(t, legal.Contains(card.New(card.Ace, card.Hearts)), "cannot lead hearts before broken")
	assert.True(t, legal.Contains(card.New(card.King, card.Diamonds)))
}

func TestHeartsBreakingAllowedWhenOnlyHeartsHeld(t *testing.T) {
	t.Parallel()
	hands := [NumSeats]card.Hand{
		North: mustCards(t, "2c"),
		East:  mustCards(t, "Ah", "Kh"),
		South: mustCards(t, "3c"),
		West:  mustCards(t, "4c"),
	}
	round := NewRoundState(hands, PassHold)
	round = round.Play(card.TwoOfClubs)
	// East is up next but only has hearts, and it's still the first trick
	// following clubs, so East must follow... instead test the lead case:
	// rebuild round where East leads trick 2 holding only hearts.
	round.Current = Trick{}
	round.SeatToPlay = East
	round.History = []Trick{{Plays: []Play{{North, card.TwoOfClubs}, {East, card.New(card.Three, card.Clubs)}, {South, card.New(card.Four, card.Clubs)}, {West, card.New(card.Five, card.Clubs)}}}}
	round.Hands[East] = mustCards(t, "Ah", "Kh")

	legal := LegalCards(round, East)
	assert.Equal(t, 2, legal.Count())
}

func TestResolveTrickHighestOfLedSuit(t *testing.T) {
	t.Parallel()
	trick := Trick{Plays: []Play{
		{North, card.New(card.Five, card.Clubs)},
		{East, card.New(card.King, card.Clubs)},
		{South, card.New(card.Ace, card.Hearts)},
		{West, card.New(card.Two, card.Clubs)},
	}}
	assert.True(t, trick.Complete())
	assert.Equal(t, East, trick.Resolve())
}

func TestRoundScoreMoonTransform(t *testing.T) {
	t.Parallel()
	history := []Trick{
		{Plays: []Play{{North, card.New(card.Ace, card.Hearts)}, {East, card.New(card.Two, card.Hearts)}, {South, card.New(card.Three, card.Hearts)}, {West, card.New(card.Four, card.Hearts)}}},
		{Plays: []Play{{North, card.QueenOfSpades}, {East, card.New(card.Five, card.Hearts)}, {South, card.New(card.Six, card.Hearts)}, {West, card.New(card.Seven, card.Hearts)}}},
	}
	// Make North win both tricks by playing the highest card of the led suit.
	history[0].Plays[0] = Play{North, card.New(card.Ace, card.Hearts)}
	history[1].Plays[0] = Play{North, card.QueenOfSpades}

	scores := RoundScore(history)
	total := 0
	for _, s := range scores {
		total += s
	}
	// Whichever seat captured everything scores 0, others 26 each, OR (if no
	// moon) totals sum to the raw penalties captured. Assert shape directly;
	// a moon result always totals 3*26, so only then is a zero seat the shooter:
	moonSeat := -1
	if total == 3*26 {
		for s, v := range scores {
			if v == 0 {
				moonSeat = s
			}
		}
	}
	if moonSeat >= 0 {
		for s, v := range scores {
			if s != moonSeat {
				assert.Equal(t, 26, v)
			}
		}
	} else {
		assert.Equal(t, CapturedPoints(history), scores)
	}
}

func TestRoundScoreNoMoonBelowThreshold(t *testing.T) {
	t.Parallel()
	// North wins a single four-heart trick: 4 penalty points, far short of
	// the full 26, so the moon transform must not trigger.
	history := []Trick{
		{Plays: []Play{
			{North, card.New(card.Ace, card.Hearts)},
			{East, card.New(card.Two, card.Hearts)},
			{South, card.New(card.Three, card.Hearts)},
			{West, card.New(card.Four, card.Hearts)},
		}},
	}
	scores := RoundScore(history)
	assert.Equal(t, 4, scores[North])
	assert.Equal(t, 0, scores[East])
	assert.Equal(t, 0, scores[South])
	assert.Equal(t, 0, scores[West])
}

func TestRoundScoreExactMoon(t *testing.T) {
	t.Parallel()
	// North captures all 13 hearts and the Queen of Spades (26 points) across
	// 14 tricks, each led and won by North on a heart (or, for the Qs trick,
	// led by North on spades).
	ranks := []card.Rank{
		card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
		card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace,
	}
	history := make([]Trick, 0, 14)
	for _, r := range ranks {
		history = append(history, Trick{Plays: []Play{
			{North, card.New(r, card.Hearts)},
			{East, card.New(card.Two, card.Clubs)},
			{South, card.New(card.Three, card.Clubs)},
			{West, card.New(card.Four, card.Clubs)},
		}})
	}
	// One further trick so North also captures the Queen of Spades, again as
	// the highest card of the led suit (spades).
	history = append(history, Trick{Plays: []Play{
		{North, card.QueenOfSpades},
		{East, card.New(card.Two, card.Spades)},
		{South, card.New(card.Three, card.Spades)},
		{West, card.New(card.Four, card.Spades)},
	}})

	scores := RoundScore(history)
	assert.Equal(t, 0, scores[North])
	assert.Equal(t, 26, scores[East])
	assert.Equal(t, 26, scores[South])
	assert.Equal(t, 26, scores[West])
}

func TestScoreBoardSaturation(t *testing.T) {
	t.Parallel()
	var b ScoreBoard
	b[North] = ScoreBoardCeiling - 1
	b = b.Add([NumSeats]int{North: 26})
	assert.Equal(t, ScoreBoardCeiling, b[North])

	var zero ScoreBoard
	zero = zero.Add([NumSeats]int{North: 10, East: 5})
	assert.Equal(t, 10, zero[North])
	assert.Equal(t, 5, zero[East])
}

func TestScoreBoardLeader(t *testing.T) {
	t.Parallel()
	b := ScoreBoard{North: 72, East: 12, South: 10, West: 8}
	leader, margin := b.Leader()
	assert.Equal(t, North, leader)
	assert.Equal(t, 60, margin)
}

func TestSaturatingAddOverflowGuard(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ScoreBoardCeiling, SaturatingAdd(ScoreBoardCeiling, 1))
	assert.Equal(t, 15, SaturatingAdd(10, 5))
}
