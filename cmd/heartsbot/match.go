package main

import (
	"fmt"
	"os"

	"github.com/0x4D44/mdhearts-sub002/dispatch"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/internal/randutil"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// MatchCmd simulates a head-to-head match: North/South play at
// DifficultyA, East/West play at DifficultyB, for Hands rounds, each round
// driven entirely by the dispatcher (no card-passing phase; PassHold
// throughout, since passing is the match orchestrator's concern, out of
// scope here).
type MatchCmd struct {
	DifficultyA string `default:"hard" help:"North/South difficulty"`
	DifficultyB string `default:"expert" help:"East/West difficulty"`
	Hands       int    `default:"16" help:"Number of hands to play"`
	Seed        int64  `default:"1" help:"Match seed; each hand's deal seed is derived from it"`
}

func (c *MatchCmd) Run() error {
	da, err := parseDifficulty(c.DifficultyA)
	if err != nil {
		return err
	}
	db, err := parseDifficulty(c.DifficultyB)
	if err != nil {
		return err
	}
	seatDifficulty := [rules.NumSeats]engine.Difficulty{da, db, da, db}

	w := weights.Default()
	var board rules.ScoreBoard

	for hand := 0; hand < c.Hands; hand++ {
		seed := randutil.Derive(c.Seed, hand)
		hands := deal(seed)
		round := rules.NewRoundState(hands, rules.PassHold)
		trackers := [rules.NumSeats]*tracker.UnseenTracker{}
		for s := rules.Seat(0); s < rules.NumSeats; s++ {
			trackers[s] = tracker.New(s, round.Hand(s))
		}

		for !round.RoundOver() {
			seat := round.SeatToPlay
			ctx := engine.DecisionContext{
				Round:   round,
				Seat:    seat,
				Board:   board,
				Tracker: trackers[seat],
				Weights: w,
				Seed:    seed,
			}
			report, err := dispatch.Decide(ctx, seatDifficulty[seat], nil)
			if err != nil {
				return fmt.Errorf("heartsbot: hand %d seat %s: %w", hand, seat, err)
			}

			led, established := round.Current.LedSuit()
			for s := rules.Seat(0); s < rules.NumSeats; s++ {
				trackers[s].ObservePlay(seat, report.Chosen, led, established)
			}
			round = round.Play(report.Chosen)

			if len(round.History) > 0 && round.Current.Plays == nil {
				last := round.History[len(round.History)-1]
				winner := last.Resolve()
				for s := rules.Seat(0); s < rules.NumSeats; s++ {
					trackers[s].ObserveTrickWon(winner, last.Penalty())
				}
			}
		}

		scores := rules.RoundScore(round.History)
		board = board.Add(scores)
		fmt.Printf("hand %d: %v (running: %v)\n", hand+1, scores, board)
		logger.Debug("hand complete", "hand", hand+1, "seed", seed, "scores", scores)
	}

	leader, margin := board.Leader()
	fmt.Fprintf(os.Stderr, "match over: seat %s leads by %d\n", leader, margin)
	return nil
}
