package rules

import "github.com/0x4D44/mdhearts-sub002/card"

// RoundState is an immutable-style snapshot of one round in progress. Every
// mutating method returns a new RoundState rather than modifying the
// receiver, so a RoundState can be shared freely across planners without
// defensive copying.
type RoundState struct {
	Hands         [NumSeats]card.Hand
	Current       Trick
	History       []Trick
	SeatToPlay    Seat
	PassDirection PassDirection
	HeartsBroken  bool
	PlayedCount   [NumSeats]int
}

// NewRoundState builds a round from a dealt hand per seat. The opening
// leader is whichever seat holds the Two of Clubs, per the must-open rule.
func NewRoundState(hands [NumSeats]card.Hand, direction PassDirection) RoundState {
	leader := North
	for s := Seat(0); s < NumSeats; s++ {
		if hands[s].Contains(card.TwoOfClubs) {
			leader = s
			break
		}
	}
	return RoundState{
		Hands:         hands,
		SeatToPlay:    leader,
		PassDirection: direction,
	}
}

// Hand returns the hand currently held by seat s.
func (r RoundState) Hand(s Seat) card.Hand { return r.Hands[s] }

// CardsRemaining returns the total number of cards still in play across all
// hands and the current (possibly partial) trick.
func (r RoundState) CardsRemaining() int {
	total := 0
	for _, h := range r.Hands {
		total += h.Count()
	}
	return total + len(r.Current.Plays)
}

// FirstTrick reports whether the round's opening trick is still in
// progress or has not yet been completed (i.e. History is empty).
func (r RoundState) FirstTrick() bool { return len(r.History) == 0 }

// Play returns the RoundState that results from seat r.SeatToPlay playing c.
// The caller is responsible for ensuring c is legal (see LegalCards); Play
// itself does not re-validate legality, matching the rules protocol's
// separation of legal_cards from the mutation it gates.
func (r RoundState) Play(c card.Card) RoundState {
	seat := r.SeatToPlay
	next := r
	next.Hands[seat] = r.Hands[seat].Remove(c)
	next.PlayedCount[seat] = r.PlayedCount[seat] + 1
	next.Current = r.Current.With(Play{Seat: seat, Card: c})
	if c.Suit() == card.Hearts || c == card.QueenOfSpades {
		next.HeartsBroken = true
	}

	if next.Current.Complete() {
		winner := next.Current.Resolve()
		history := make([]Trick, len(r.History), len(r.History)+1)
		copy(history, r.History)
		next.History = append(history, next.Current)
		next.Current = Trick{}
		next.SeatToPlay = winner
	} else {
		next.SeatToPlay = seat.Next()
	}
	return next
}

// RoundOver reports whether every hand has been exhausted.
func (r RoundState) RoundOver() bool {
	for _, h := range r.Hands {
		if h.Count() > 0 {
			return false
		}
	}
	return len(r.Current.Plays) == 0
}

// Signature folds r's remaining-hands, in-progress trick, and hearts-broken
// flag into a 64-bit value. Two RoundStates reached by different play
// orders but with identical remaining state hash identically, regardless
// of how much history led there, so a search's transposition table keys
// off Signature rather than off the full History slice — History only
// matters for scoring the completed round, not for the subtree still to
// search. SeatToPlay is deliberately excluded; callers that need it as
// part of a lookup key combine it separately.
func (r RoundState) Signature() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	mix := func(v uint64) {
		h ^= v
		h *= prime64
	}
	for _, hand := range r.Hands {
		mix(uint64(hand))
	}
	for _, p := range r.Current.Plays {
		mix(uint64(p.Seat)<<8 | uint64(p.Card))
	}
	if r.HeartsBroken {
		mix(1)
	}
	return h
}
