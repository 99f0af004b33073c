package main

import (
	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/internal/randutil"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// deal shuffles a fresh 52-card deck deterministically from seed and splits
// it evenly across the four seats, thirteen cards each.
func deal(seed int64) [rules.NumSeats]card.Hand {
	rng := randutil.New(seed)

	deck := make([]card.Card, 0, card.NumCards)
	for s := card.Suit(0); s < card.NumSuits; s++ {
		for r := card.Rank(0); r < card.NumRanks; r++ {
			deck = append(deck, card.New(r, s))
		}
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var hands [rules.NumSeats]card.Hand
	for i, c := range deck {
		seat := rules.Seat(i / card.NumRanks)
		hands[seat] = hands[seat].Add(c)
	}
	return hands
}
