package main

import (
	"fmt"
	"strings"

	"github.com/0x4D44/mdhearts-sub002/engine"
)

// parseDifficulty maps a CLI-facing difficulty name to its engine.Difficulty
// value, case-insensitively.
func parseDifficulty(s string) (engine.Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return engine.Easy, nil
	case "normal":
		return engine.Normal, nil
	case "hard":
		return engine.Hard, nil
	case "expert":
		return engine.Expert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q (want easy, normal, hard, expert)", s)
	}
}
