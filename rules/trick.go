package rules

import "github.com/0x4D44/mdhearts-sub002/card"

// Play is one (seat, card) entry in a trick.
type Play struct {
	Seat Seat
	Card card.Card
}

// Trick is an ordered sequence of up to four plays. The first entry defines
// the led suit.
type Trick struct {
	Plays []Play
}

// LedSuit returns the suit of the first play and true, or false if the
// trick has no plays yet.
func (t Trick) LedSuit() (card.Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit(), true
}

// Complete reports whether the trick has four plays.
func (t Trick) Complete() bool { return len(t.Plays) == NumSeats }

// Leader returns the seat that led this trick.
func (t Trick) Leader() Seat { return t.Plays[0].Seat }

// Penalty returns the sum of penalty values of all cards in the trick.
func (t Trick) Penalty() int {
	total := 0
	for _, p := range t.Plays {
		total += p.Card.PenaltyValue()
	}
	return total
}

// ContainsPenalty reports whether any card in the trick carries penalty
// value (a heart or the Queen of Spades).
func (t Trick) ContainsPenalty() bool {
	for _, p := range t.Plays {
		if p.Card.PenaltyValue() > 0 {
			return true
		}
	}
	return false
}

// Resolve returns the seat that wins the trick: the highest card of the led
// suit. Resolve must only be called on a complete trick.
func (t Trick) Resolve() Seat {
	led, ok := t.LedSuit()
	if !ok {
		return 0
	}
	winner := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Suit() == led && p.Card.Rank() > winner.Card.Rank() {
			winner = p
		}
	}
	return winner.Seat
}

// With returns a new Trick with play appended, leaving t unmodified.
func (t Trick) With(p Play) Trick {
	next := make([]Play, len(t.Plays), len(t.Plays)+1)
	copy(next, t.Plays)
	next = append(next, p)
	return Trick{Plays: next}
}
