package deep

import "github.com/0x4D44/mdhearts-sub002/card"

// maxKillerDepth bounds the per-depth killer slots; a search deeper than
// this simply stops recording killers (still searches correctly, just
// without that ordering hint).
const maxKillerDepth = 64

// killerTable records, per remaining-depth, the two most recent moves that
// caused a beta cutoff at that depth — cheap move-ordering hints that
// don't depend on the position, only on how deep the cutoff occurred,
// grounded on the standard killer-heuristic shape from alpha-beta
// literature and generalised here from chess-engine move slots to Card.
type killerTable struct {
	slots [maxKillerDepth][2]card.Card
	set   [maxKillerDepth][2]bool
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

// record notes that c caused a cutoff at depth, shifting the existing
// primary killer into the secondary slot (most-recent-first, size two).
func (k *killerTable) record(depth int, c card.Card) {
	if depth < 0 || depth >= maxKillerDepth {
		return
	}
	if k.set[depth][0] && k.slots[depth][0] == c {
		return
	}
	k.slots[depth][1] = k.slots[depth][0]
	k.set[depth][1] = k.set[depth][0]
	k.slots[depth][0] = c
	k.set[depth][0] = true
}

// isKiller reports whether c is recorded as a killer at depth.
func (k *killerTable) isKiller(depth int, c card.Card) bool {
	if depth < 0 || depth >= maxKillerDepth {
		return false
	}
	return (k.set[depth][0] && k.slots[depth][0] == c) || (k.set[depth][1] && k.slots[depth][1] == c)
}
