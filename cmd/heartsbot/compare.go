package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/0x4D44/mdhearts-sub002/dispatch"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
	"github.com/0x4D44/mdhearts-sub002/weights"
)

// CompareCmd runs the same opening decision through two difficulties across
// a range of seeds and writes one CSV row per seed.
type CompareCmd struct {
	DifficultyA string `default:"normal" help:"First difficulty to compare"`
	DifficultyB string `default:"expert" help:"Second difficulty to compare"`
	Seeds       int    `default:"100" help:"Number of seeds to run, starting at --seed-start"`
	SeedStart   int64  `default:"1" help:"First seed in the range"`
	BatchSize   int    `default:"10" help:"Seeds per progress batch"`
	Out         string `help:"Write CSV to this path instead of stdout"`
}

func (c *CompareCmd) Run() error {
	da, err := parseDifficulty(c.DifficultyA)
	if err != nil {
		return err
	}
	db, err := parseDifficulty(c.DifficultyB)
	if err != nil {
		return err
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

	w := csv.NewWriter(out)
	defer w.Flush()
	if err := w.Write([]string{"seed", "chosen_a", "chosen_b", "agree", "elapsed_ms_a", "elapsed_ms_b"}); err != nil {
		return err
	}

	weightsDefault := weights.Default()
	batch := 0
	start := time.Now()
	for i := 0; i < c.Seeds; i++ {
		seed := c.SeedStart + int64(i)
		if i%c.BatchSize == 0 {
			if batch > 0 {
				fmt.Fprintln(os.Stderr)
			}
			batch++
			fmt.Fprintf(os.Stderr, "batch %d: ", batch)
		}

		reportA, err := runOne(seed, da, weightsDefault)
		if err != nil {
			return err
		}
		reportB, err := runOne(seed, db, weightsDefault)
		if err != nil {
			return err
		}

		agree := reportA.Chosen == reportB.Chosen
		logger.Debug("seed compared", "seed", seed, "a", reportA.Chosen, "b", reportB.Chosen, "agree", agree)
		row := []string{
			strconv.FormatInt(seed, 10),
			reportA.Chosen.String(),
			reportB.Chosen.String(),
			strconv.FormatBool(agree),
			strconv.FormatInt(reportA.Stats.ElapsedMs, 10),
			strconv.FormatInt(reportB.Stats.ElapsedMs, 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, ".")
	}
	fmt.Fprintln(os.Stderr)
	w.Flush()

	fmt.Fprintf(os.Stderr, "compared %d seeds in %v\n", c.Seeds, time.Since(start).Round(time.Millisecond))
	return nil
}

func runOne(seed int64, difficulty engine.Difficulty, w weights.Weights) (engine.DecisionReport, error) {
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
	return dispatch.Decide(ctx, difficulty, nil)
}
