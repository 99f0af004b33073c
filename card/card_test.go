package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := New(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())

	twoClubs := New(Two, Clubs)
	assert.Equal(t, "2c", twoClubs.String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  Card
	}{
		{"As", New(Ace, Spades)},
		{"2h", New(Two, Hearts)},
		{"Kd", New(King, Diamonds)},
		{"Tc", New(Ten, Clubs)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := Parse("Xx")
	assert.Error(t, err)
	_, err = Parse("A")
	assert.Error(t, err)
}

func TestPenaltyValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 13, QueenOfSpades.PenaltyValue())
	assert.Equal(t, 1, New(Two, Hearts).PenaltyValue())
	assert.Equal(t, 1, New(Ace, Hearts).PenaltyValue())
	assert.Equal(t, 0, New(King, Spades).PenaltyValue())
	assert.Equal(t, 0, New(Ace, Clubs).PenaltyValue())
}

func TestCanonicalOrder(t *testing.T) {
	t.Parallel()
	assert.True(t, New(Ace, Clubs).Less(New(Two, Diamonds)))
	assert.True(t, New(Ace, Hearts).Less(New(Two, Spades)))
	assert.False(t, New(King, Spades).Less(New(Queen, Spades)))
}
