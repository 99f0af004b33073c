package heuristic

import (
	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// simulateTrick plays candidate for the acting seat, then completes the
// trick with a deterministic, void-aware follow-up policy for the
// remaining seats, and returns the two tiny additive terms spec.md §4.3
// describes: a feed-leader term (when a known-unique leader exists and
// wins the simulated trick) and a self-capture term (when the acting seat
// wins it).
func simulateTrick(ctx engine.DecisionContext, candidate card.Card) (feedLeader, selfCapture int, components []engine.Component) {
	_, trick, ok := CompleteTrick(ctx.Round.Play(candidate))
	if !ok {
		return 0, 0, nil
	}
	winner := trick.Resolve()
	penalty := trick.Penalty()

	w := ctx.Weights
	leader, _ := ctx.Board.Leader()
	uniqueLeader := isUniqueLeader(ctx.Board)

	if uniqueLeader && winner == leader && penalty > 0 {
		feedLeader = w.ContinuationWeightFeed * penalty
		components = append(components, engine.Component{Name: "sim_feed_leader", Value: feedLeader})
	}
	if winner == ctx.Seat && penalty > 0 {
		selfCapture = w.ContinuationWeightSelf * penalty
		components = append(components, engine.Component{Name: "sim_self_capture", Value: selfCapture})
	}
	return feedLeader, selfCapture, components
}

// isUniqueLeader reports whether exactly one seat holds the scoreboard's
// strict maximum (no tie for the lead).
func isUniqueLeader(board rules.ScoreBoard) bool {
	best := board[0]
	for _, v := range board {
		if v > best {
			best = v
		}
	}
	count := 0
	for _, v := range board {
		if v == best {
			count++
		}
	}
	return count == 1
}

// ChooseFollowUp implements the canonical void-aware opponent policy shared
// by the heuristic planner's one-trick simulation and the shallow planner's
// continuation probes (spec.md §4.3, §4.4): follow suit minimally — the
// lowest card of the led suit that does not become the new provisional
// winner if a non-winning option exists, else the lowest card of that suit;
// when void, dump the highest-penalty card in hand.
func ChooseFollowUp(round rules.RoundState, seat rules.Seat) card.Card {
	hand := round.Hand(seat)
	led, _ := round.Current.LedSuit()

	if hand.HasSuit(led) {
		return lowestNonWinning(round, hand, led)
	}
	return highestPenalty(hand)
}

// MaxPenaltyFollowUp implements the "second-opponent branching" reply
// spec.md §4.4 Phase B calls out: when void, dump the highest-penalty
// card (same as ChooseFollowUp's void branch); when able to follow suit,
// play the highest card of the led suit instead of the lowest-safe one,
// modelling an opponent willing to contest the trick.
func MaxPenaltyFollowUp(round rules.RoundState, seat rules.Seat) card.Card {
	hand := round.Hand(seat)
	led, _ := round.Current.LedSuit()

	if hand.HasSuit(led) {
		highest, _ := hand.HighestInSuit(led)
		return highest
	}
	return highestPenalty(hand)
}

// CompleteTrick plays followUp (defaulting to ChooseFollowUp when nil) for
// every remaining seat until round's current trick is complete, returning
// the resulting RoundState and the completed Trick. If round has no trick
// in progress, nothing is played and the most recently completed trick is
// returned; ok is false only when no trick has been completed yet.
func CompleteTrick(round rules.RoundState) (rules.RoundState, rules.Trick, bool) {
	return completeTrickWith(round, ChooseFollowUp)
}

// CompleteTrickWith is CompleteTrick parameterised by an explicit follow-up
// policy, letting callers branch on an alternate opponent model (e.g.
// MaxPenaltyFollowUp) without duplicating the completion loop.
func CompleteTrickWith(round rules.RoundState, followUp func(rules.RoundState, rules.Seat) card.Card) (rules.RoundState, rules.Trick, bool) {
	return completeTrickWith(round, followUp)
}

func completeTrickWith(round rules.RoundState, followUp func(rules.RoundState, rules.Seat) card.Card) (rules.RoundState, rules.Trick, bool) {
	if len(round.Current.Plays) == 0 {
		if len(round.History) == 0 {
			return round, rules.Trick{}, false
		}
		return round, round.History[len(round.History)-1], true
	}
	seat := round.SeatToPlay
	for len(round.Current.Plays) > 0 && len(round.Current.Plays) < rules.NumSeats {
		c := followUp(round, seat)
		round = round.Play(c)
		seat = round.SeatToPlay
	}
	if len(round.History) == 0 {
		return round, rules.Trick{}, false
	}
	return round, round.History[len(round.History)-1], true
}

func lowestNonWinning(round rules.RoundState, hand card.Hand, led card.Suit) card.Card {
	currentWinner, hasWinner := currentTrickWinner(round, led)

	var bestNonWinning card.Card
	foundNonWinning := false
	lowest, _ := hand.LowestInSuit(led)

	for _, c := range hand.Cards() {
		if c.Suit() != led {
			continue
		}
		if hasWinner && c.Rank() < currentWinner.Rank() {
			if !foundNonWinning || c.Rank() < bestNonWinning.Rank() {
				bestNonWinning = c
				foundNonWinning = true
			}
		}
	}
	if foundNonWinning {
		return bestNonWinning
	}
	return lowest
}

func currentTrickWinner(round rules.RoundState, led card.Suit) (card.Card, bool) {
	var best card.Card
	found := false
	for _, p := range round.Current.Plays {
		if p.Card.Suit() != led {
			continue
		}
		if !found || p.Card.Rank() > best.Rank() {
			best = p.Card
			found = true
		}
	}
	return best, found
}

func highestPenalty(hand card.Hand) card.Card {
	var best card.Card
	bestValue := -1
	for _, c := range hand.Cards() {
		if c.PenaltyValue() > bestValue {
			best = c
			bestValue = c.PenaltyValue()
		}
	}
	return best
}
