package rules

import "github.com/0x4D44/mdhearts-sub002/card"

// LegalCards returns the set of cards seat may legally play from round,
// implementing spec.md §3's rules protocol:
//
//   - must follow the led suit if able;
//   - on the first trick the opening lead must be the Two of Clubs, and no
//     penalty card may be played unless the follower is void in clubs AND
//     holds no non-penalty card;
//   - hearts may not be led unless broken, or the leader holds only hearts;
//   - the Queen of Spades may always be played when otherwise legal by suit.
func LegalCards(round RoundState, seat Seat) card.Hand {
	hand := round.Hand(seat)
	if hand.Count() == 0 {
		return 0
	}

	leading := len(round.Current.Plays) == 0

	if round.FirstTrick() && leading {
		if hand.Contains(card.TwoOfClubs) {
			return card.Hand(0).Add(card.TwoOfClubs)
		}
		// Defensive: the invariant guarantees whoever holds 2c leads first,
		// so this path is unreachable in a well-formed round.
		return hand
	}

	if leading {
		return legalLead(round, hand)
	}

	led, _ := round.Current.LedSuit()
	if hand.HasSuit(led) {
		followed := card.Hand(0)
		for _, c := range hand.Cards() {
			if c.Suit() == led {
				followed = followed.Add(c)
			}
		}
		return followed
	}

	if round.FirstTrick() {
		return legalFirstTrickDiscard(hand)
	}

	return hand
}

// legalLead applies the hearts-breaking rule to a seat about to lead.
func legalLead(round RoundState, hand card.Hand) card.Hand {
	if round.HeartsBroken {
		return hand
	}
	nonHearts := card.Hand(0)
	for _, c := range hand.Cards() {
		if c.Suit() != card.Hearts {
			nonHearts = nonHearts.Add(c)
		}
	}
	if nonHearts.Count() == 0 {
		// Leader holds only hearts: permitted to lead them.
		return hand
	}
	return nonHearts
}

// legalFirstTrickDiscard applies the first-trick penalty-avoidance rule to a
// seat that is void in clubs and must discard.
func legalFirstTrickDiscard(hand card.Hand) card.Hand {
	safe := card.Hand(0)
	for _, c := range hand.Cards() {
		if c.PenaltyValue() == 0 {
			safe = safe.Add(c)
		}
	}
	if safe.Count() > 0 {
		return safe
	}
	// Holds only penalty cards: forced to shed one.
	return hand
}
