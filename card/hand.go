package card

import "math/bits"

// Hand is a 52-bit mask, one bit per Card.Index(), with each suit occupying
// a contiguous 13-bit segment. This mirrors the teacher's Hand type in
// poker/evaluator.go (GetSuitMask/GetRankMask over a uint64 bitmask).
type Hand uint64

// suitMask is the 13-bit mask for one suit's segment, unshifted.
const suitMask uint16 = (1 << NumRanks) - 1

// Full52 returns a Hand containing all 52 cards.
func Full52() Hand {
	return Hand(uint64(1)<<NumCards - 1)
}

// Add returns h with c set.
func (h Hand) Add(c Card) Hand { return h | (1 << c.Index()) }

// Remove returns h with c cleared.
func (h Hand) Remove(c Card) Hand { return h &^ (1 << c.Index()) }

// Contains reports whether c is present in h.
func (h Hand) Contains(c Card) bool { return h&(1<<c.Index()) != 0 }

// Count returns the number of cards set in h.
func (h Hand) Count() int { return bits.OnesCount64(uint64(h)) }

// SuitMask returns the 13-bit rank mask for one suit, bit i set means rank
// Rank(i) of that suit is present.
func (h Hand) SuitMask(s Suit) uint16 {
	return uint16(h>>(uint8(s)*NumRanks)) & suitMask
}

// HasSuit reports whether h holds any card of suit s.
func (h Hand) HasSuit(s Suit) bool { return h.SuitMask(s) != 0 }

// Cards returns the cards in h in canonical (suit, then rank) order.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.Count())
	for s := Suit(0); s < NumSuits; s++ {
		mask := h.SuitMask(s)
		for mask != 0 {
			i := bits.TrailingZeros16(mask)
			out = append(out, New(Rank(i), s))
			mask &^= 1 << i
		}
	}
	return out
}

// LowestInSuit returns the lowest-ranked card h holds in suit s and true, or
// false if h holds no card of that suit.
func (h Hand) LowestInSuit(s Suit) (Card, bool) {
	mask := h.SuitMask(s)
	if mask == 0 {
		return 0, false
	}
	return New(Rank(bits.TrailingZeros16(mask)), s), true
}

// HighestInSuit returns the highest-ranked card h holds in suit s and true,
// or false if h holds no card of that suit.
func (h Hand) HighestInSuit(s Suit) (Card, bool) {
	mask := h.SuitMask(s)
	if mask == 0 {
		return 0, false
	}
	return New(Rank(bits.Len16(mask)-1), s), true
}

// PenaltyValue sums the penalty values of every card in h.
func (h Hand) PenaltyValue() int {
	total := 0
	for _, c := range h.Cards() {
		total += c.PenaltyValue()
	}
	return total
}

// Union, Intersect, and Diff are small composition helpers used throughout
// the tracker and planners to reason about card sets without re-deriving
// bit operations at every call site.
func Union(a, b Hand) Hand     { return a | b }
func Intersect(a, b Hand) Hand { return a & b }
func Diff(a, b Hand) Hand      { return a &^ b }

// Diff returns the cards in h that are not in other, as a method for call
// sites that read more naturally as h.Diff(other) than Diff(h, other).
func (h Hand) Diff(other Hand) Hand { return h &^ other }
