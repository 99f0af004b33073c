// Package tracker maintains one seat's belief state about the cards it has
// not seen: which cards are still unaccounted for, which seats are
// provably void in which suits, and (derived from those two) plausible
// deals of the unseen cards consistent with everything observed so far.
package tracker

import (
	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// voidInference records one (seat, suit) void deduction in the order it was
// made, so sample_world can drop the most recently inferred constraint
// first when the others make no feasible deal possible.
type voidInference struct {
	seat rules.Seat
	suit card.Suit
}

// UnseenTracker tracks, from the point of view of one observing seat, which
// cards have been played, which remain in the observer's own hand, which
// are unseen (held by the other three seats), and which seats are known
// void in which suits.
type UnseenTracker struct {
	observer rules.Seat
	ownHand  card.Hand
	played   card.Hand
	unseen   card.Hand
	void     [rules.NumSeats][4]bool
	order    []voidInference

	moon moonState
}

// New builds a tracker for observer given its own starting hand: every
// other card begins unseen, nothing has been played, and no seat is known
// void in anything.
func New(observer rules.Seat, ownHand card.Hand) *UnseenTracker {
	return &UnseenTracker{
		observer: observer,
		ownHand:  ownHand,
		unseen:   card.Full52().Diff(ownHand),
		moon:     newMoonState(),
	}
}

// Observer returns the seat this tracker observes from.
func (u *UnseenTracker) Observer() rules.Seat { return u.observer }

// OwnHand returns the observer's own remaining hand.
func (u *UnseenTracker) OwnHand() card.Hand { return u.ownHand }

// Played returns the set of cards played so far this round.
func (u *UnseenTracker) Played() card.Hand { return u.played }

// Unseen returns the current set of cards not yet accounted for: neither
// the observer's own hand nor already played.
func (u *UnseenTracker) Unseen() card.Hand { return u.unseen }

// IsVoid reports whether seat is known to hold no cards of s.
func (u *UnseenTracker) IsVoid(seat rules.Seat, s card.Suit) bool {
	return u.void[seat][s]
}

// ObservePlay records that seat played c. If seat is the observer, c is
// removed from ownHand; otherwise c is removed from unseen. If ledSuit is
// established (ledEstablished is true) and c does not match it, seat is now known void
// in ledSuit, since it held no card of that suit to follow with.
//
// The invariant |own_hand| + |played| + |unseen| = 52 holds after every call.
func (u *UnseenTracker) ObservePlay(seat rules.Seat, c card.Card, ledSuit card.Suit, ledEstablished bool) {
	if seat == u.observer {
		u.ownHand = u.ownHand.Remove(c)
	} else {
		u.unseen = u.unseen.Remove(c)
	}
	u.played = u.played.Add(c)

	if ledEstablished && c.Suit() != ledSuit && !u.void[seat][ledSuit] {
		u.void[seat][ledSuit] = true
		u.order = append(u.order, voidInference{seat: seat, suit: ledSuit})
	}
}

// ResetAfterPass clears all void inferences, played history, and moon
// tracking, then reseeds the observer's hand and unseen set from newHand.
// Void inferences and moon progress from the prior round carry no
// information about the new deal.
func (u *UnseenTracker) ResetAfterPass(newHand card.Hand) {
	u.ownHand = newHand
	u.played = 0
	u.unseen = card.Full52().Diff(newHand)
	u.void = [rules.NumSeats][4]bool{}
	u.order = nil
	u.moon = newMoonState()
}

// Clone returns an independent copy of u, safe to mutate without affecting
// the original (used before speculative sampling or hypothetical plays).
func (u *UnseenTracker) Clone() *UnseenTracker {
	clone := *u
	clone.order = append([]voidInference(nil), u.order...)
	return &clone
}

// VoidInference is the exported form of one (seat, suit) void deduction,
// in the order it was made.
type VoidInference struct {
	Seat rules.Seat
	Suit card.Suit
}

// State is the full internal state of an UnseenTracker, exported so a host
// can persist and later restore a tracker exactly (see internal/snapshot).
type State struct {
	Observer rules.Seat
	OwnHand  card.Hand
	Played   card.Hand
	Unseen   card.Hand
	Void     [rules.NumSeats][4]bool
	Order    []VoidInference
	Moon     MoonState
}

// State captures u's full internal state.
func (u *UnseenTracker) State() State {
	order := make([]VoidInference, len(u.order))
	for i, v := range u.order {
		order[i] = VoidInference{Seat: v.seat, Suit: v.suit}
	}
	return State{
		Observer: u.observer,
		OwnHand:  u.ownHand,
		Played:   u.played,
		Unseen:   u.unseen,
		Void:     u.void,
		Order:    order,
		Moon:     u.moon.snapshot(),
	}
}

// FromState rebuilds an UnseenTracker exactly as captured by a prior call to
// State, for a host restoring a persisted tracker.
func FromState(s State) *UnseenTracker {
	order := make([]voidInference, len(s.Order))
	for i, v := range s.Order {
		order[i] = voidInference{seat: v.Seat, suit: v.Suit}
	}
	return &UnseenTracker{
		observer: s.Observer,
		ownHand:  s.OwnHand,
		played:   s.Played,
		unseen:   s.Unseen,
		void:     s.Void,
		order:    order,
		moon: moonState{
			capturedPenalty: s.Moon.CapturedPenalty,
			tricksWon:       s.Moon.TricksWon,
			tricksWonClean:  s.Moon.TricksWonClean,
		},
	}
}

// ObserveTrickWon folds a completed trick's outcome into the tracker's moon
// bookkeeping: winner captured penalty points out of the trick.
func (u *UnseenTracker) ObserveTrickWon(winner rules.Seat, penalty int) {
	u.moon.observeTrickWon(winner, penalty)
}

// MoonState exposes the tracker's running moon-shot inference (see the
// heuristic planner's style selection).
func (u *UnseenTracker) MoonState() MoonState { return u.moon.snapshot() }
