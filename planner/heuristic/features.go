package heuristic

import (
	"math/bits"

	"github.com/0x4D44/mdhearts-sub002/card"
)

// countHighHearts counts Jack-or-higher hearts in hand, used by the
// moon-commit threshold (spec.md §4.3's "min high hearts").
func countHighHearts(hand card.Hand) int {
	mask := hand.SuitMask(card.Hearts)
	highMask := mask >> uint8(card.Jack)
	return bits.OnesCount16(highMask)
}

func heartsCount(hand card.Hand) int {
	return bits.OnesCount16(hand.SuitMask(card.Hearts))
}
