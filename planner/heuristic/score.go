package heuristic

import (
	"math/bits"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/engine"
)

// scoringInput bundles the pieces baseScore's feature functions need,
// avoiding repeated field lookups across a dozen small functions.
type scoringInput struct {
	ctx      engine.DecisionContext
	style    engine.Style
	hand     card.Hand
	leading  bool
	ledSuit  card.Suit
	void     bool // acting seat cannot follow ledSuit
	cardsPlayed int
}

// baseScore computes candidate's weighted feature sum, returning the total
// and every named component that contributed to it (spec.md §4.3).
func baseScore(in scoringInput, candidate card.Card) (int, []engine.Component) {
	components := []engine.Component{
		{Name: "penalty_risk", Value: penaltyRiskComponent(in, candidate)},
		{Name: "off_suit_dump", Value: offSuitDumpComponent(in, candidate)},
		{Name: "void_creation", Value: voidCreationComponent(in, candidate)},
		{Name: "near100_selfcap", Value: near100SelfCapComponent(in, candidate)},
		{Name: "leader_feed", Value: leaderFeedComponent(in, candidate)},
		{Name: "non_leader_feed", Value: nonLeaderFeedComponent(in, candidate)},
		{Name: "lead_hearts_early", Value: leadHeartsEarlyComponent(in, candidate)},
		{Name: "singleton_promotion", Value: singletonPromotionComponent(in, candidate)},
	}
	total := 0
	for _, c := range components {
		total += c.Value
	}
	return total, components
}

// penaltyRiskComponent rewards playing low cards in penalty-bearing suits
// (Hearts, Spades): PenaltyRiskPerRank for every unseen higher card of the
// same suit, each of which could beat c and take the trick instead.
func penaltyRiskComponent(in scoringInput, c card.Card) int {
	if c.Suit() != card.Hearts && c.Suit() != card.Spades {
		return 0
	}
	unseen := in.ctx.Tracker.Unseen()
	higherUnseen := 0
	mask := unseen.SuitMask(c.Suit()) >> (uint8(c.Rank()) + 1)
	higherUnseen = bits.OnesCount16(mask)
	return in.ctx.Weights.PenaltyRiskPerRank * higherUnseen
}

// offSuitDumpComponent rewards shedding a harmless card when the acting seat
// cannot follow the led suit and still holds one: a dangerous card (a heart
// or Q♠) is better kept for a safer opportunity than spent on a trick this
// seat cannot win anyway.
func offSuitDumpComponent(in scoringInput, c card.Card) int {
	if !in.void || c.PenaltyValue() != 0 {
		return 0
	}
	return in.ctx.Weights.OffSuitDumpBonus
}

// voidCreationComponent rewards playing the last card of a suit, since
// becoming void opens future discard flexibility.
func voidCreationComponent(in scoringInput, c card.Card) int {
	if bits.OnesCount16(in.hand.SuitMask(c.Suit())) != 1 {
		return 0
	}
	return in.ctx.Weights.VoidCreationBonus
}

// near100SelfCapComponent discourages capturing penalty cards once the
// acting seat's running score is close enough to end the match.
func near100SelfCapComponent(in scoringInput, c card.Card) int {
	w := in.ctx.Weights
	if in.ctx.Board[in.ctx.Seat] < w.Near100Threshold {
		return 0
	}
	value := -w.Near100SelfCapBase
	if c.PenaltyValue() > 0 {
		value -= w.Near100ShedPerPenalty * c.PenaltyValue()
	}
	return value
}

// leaderFeedComponent, in HuntLeader style, rewards discarding penalty
// cards: with the scoreboard leader already far ahead, shedding points
// towards them (via later tricks) is free.
func leaderFeedComponent(in scoringInput, c card.Card) int {
	if in.style != engine.HuntLeader || !in.void || c.PenaltyValue() == 0 {
		return 0
	}
	_, margin := in.ctx.Board.Leader()
	w := in.ctx.Weights
	bonus := w.LeaderFeedBase + w.LeaderFeedGapPer10*(margin/10)
	if bonus > w.ContinuationCap {
		bonus = w.ContinuationCap
	}
	return bonus
}

// nonLeaderFeedComponent discourages leading penalty-bearing cards once
// hearts are broken when doing so is not aimed at the scoreboard leader.
func nonLeaderFeedComponent(in scoringInput, c card.Card) int {
	if !in.leading || !in.ctx.Round.HeartsBroken || in.style == engine.HuntLeader {
		return 0
	}
	if c.PenaltyValue() == 0 {
		return 0
	}
	return -in.ctx.Weights.NonLeaderFeedPerPenalty * c.PenaltyValue()
}

// leadHeartsEarlyComponent discourages leading hearts in the round's early
// tricks, when information about who is short in hearts is still thin.
func leadHeartsEarlyComponent(in scoringInput, c card.Card) int {
	if !in.leading || c.Suit() != card.Hearts {
		return 0
	}
	if in.cardsPlayed >= card.NumCards/4 {
		return 0
	}
	return -in.ctx.Weights.EarlyHeartsLeadCaution
}

// singletonPromotionComponent rewards playing a card from a suit the
// acting seat holds only once, or that no trick has yet been led in —
// both are early opportunities to shed an awkward card cheaply.
func singletonPromotionComponent(in scoringInput, c card.Card) int {
	isSingleton := bits.OnesCount16(in.hand.SuitMask(c.Suit())) == 1
	if isSingleton || !suitLedBefore(in.ctx, c.Suit()) {
		return in.ctx.Weights.SingletonPromotionBonus
	}
	return 0
}

func suitLedBefore(ctx engine.DecisionContext, s card.Suit) bool {
	for _, t := range ctx.Round.History {
		if led, ok := t.LedSuit(); ok && led == s {
			return true
		}
	}
	if led, ok := ctx.Round.Current.LedSuit(); ok && led == s {
		return true
	}
	return false
}
