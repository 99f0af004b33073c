package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

func TestDealProducesThirteenDisjointCardsPerSeat(t *testing.T) {
	t.Parallel()
	hands := deal(42)

	var all card.Hand
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		assert.Equal(t, 13, hands[s].Count())
		assert.Zero(t, hands[s]&all, "seat %s overlaps an earlier seat's hand", s)
		all |= hands[s]
	}
	assert.Equal(t, card.NumCards, all.Count())
}

func TestDealIsDeterministicForSameSeed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, deal(7), deal(7))
}

func TestDealDiffersAcrossSeeds(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, deal(1), deal(2))
}

func TestParseDifficultyAcceptsAllFourTiers(t *testing.T) {
	t.Parallel()
	for name := range map[string]bool{"easy": true, "normal": true, "hard": true, "expert": true} {
		_, err := parseDifficulty(name)
		assert.NoError(t, err, name)
	}
}

func TestParseDifficultyRejectsUnknownName(t *testing.T) {
	t.Parallel()
	_, err := parseDifficulty("nightmare")
	assert.Error(t, err)
}
