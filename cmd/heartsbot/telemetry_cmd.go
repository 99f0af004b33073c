package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/0x4D44/mdhearts-sub002/dispatch"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/telemetry"
	"github.com/0x4D44/mdhearts-sub002/tracker"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// TelemetryCmd groups telemetry-sink subcommands.
type TelemetryCmd struct {
	Export TelemetryExportCmd `cmd:"" help:"Replay a seeded sample of decisions through a sink and dump its window"`
}

// TelemetryExportCmd populates a telemetry sink by running Decisions seeded
// decisions through the dispatcher, then dumps the sink's current window as
// newline-delimited JSON.
type TelemetryExportCmd struct {
	Difficulty string `default:"normal" help:"Difficulty to route every sampled decision through"`
	Decisions  int    `default:"20" help:"Number of seeded decisions to run"`
	Retention  int    `default:"10" help:"Sink capacity"`
	SeedStart  int64  `default:"1" help:"First seed in the sampled range"`
	Out        string `help:"Write NDJSON to this path instead of stdout"`
}

func (c *TelemetryExportCmd) Run() error {
	difficulty, err := parseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}

	sink := telemetry.New(c.Retention)
	w := weights.Default()
	for i := 0; i < c.Decisions; i++ {
		seed := c.SeedStart + int64(i)
		hands := deal(seed)
		round := rules.NewRoundState(hands, rules.PassHold)
		ctx := engine.DecisionContext{
			Round:   round,
			Seat:    round.SeatToPlay,
			Board:   rules.ScoreBoard{},
			Tracker: tracker.New(round.SeatToPlay, round.Hand(round.SeatToPlay)),
			Weights: w,
			Seed:    seed,
		}
		if _, err := dispatch.Decide(ctx, difficulty, sink); err != nil {
			return err
		}
	}

	out := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("heartsbot: create %s: %w", c.Out, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	for _, report := range sink.Snapshot() {
		if err := enc.Encode(report); err != nil {
			return err
		}
	}
	return nil
}
