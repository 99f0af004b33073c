package main

import (
	"fmt"
	"os"

	"github.com/0x4D44/mdhearts-sub002/dispatch"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/internal/snapshot"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// DecideCmd loads a position (from a snapshot file, or synthesizes a seeded
// opening deal), routes it through one difficulty's planner, and prints the
// resulting DecisionReport.
type DecideCmd struct {
	Difficulty string `default:"normal" help:"easy, normal, hard, or expert"`
	Snapshot   string `help:"Path to a snapshot file to load instead of dealing a fresh round"`
	Seed       int64  `default:"1" help:"Seed for a synthesized deal, when --snapshot is not given"`
	Config     string `help:"Path to an HCL weights override file"`
}

func (c *DecideCmd) Run() error {
	difficulty, err := parseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}

	w := weights.Default()
	if c.Config != "" {
		w, err = weights.Load(c.Config)
		if err != nil {
			return err
		}
	}

	var round rules.RoundState
	var tr *tracker.UnseenTracker
	if c.Snapshot != "" {
		data, err := os.ReadFile(c.Snapshot)
		if err != nil {
			return fmt.Errorf("heartsbot: read snapshot: %w", err)
		}
		round, tr, err = snapshot.Unmarshal(data)
		if err != nil {
			return err
		}
	} else {
		hands := deal(c.Seed)
		round = rules.NewRoundState(hands, rules.PassHold)
		tr = tracker.New(round.SeatToPlay, round.Hand(round.SeatToPlay))
	}

	ctx := engine.DecisionContext{
		Round:   round,
		Seat:    round.SeatToPlay,
		Board:   rules.ScoreBoard{},
		Tracker: tr,
		Weights: w,
		Seed:    c.Seed,
	}

	report, err := dispatch.Decide(ctx, difficulty, nil)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}
