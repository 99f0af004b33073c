// Package dispatch routes a decision to the planner selected by
// difficulty, records the resulting report into a telemetry sink, and
// guarantees a legal card even in the (should-never-happen) case that the
// routed planner fails to produce one.
package dispatch

import (
	"errors"

	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/planner/deep"
	"github.com/0x4D44/mdhearts-sub002/planner/heuristic"
	"github.com/0x4D44/mdhearts-sub002/planner/shallow"
	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/telemetry"
)

// plannerFunc is the shared shape every tier's entry point satisfies.
type plannerFunc func(engine.DecisionContext) (engine.DecisionReport, error)

// planners maps each difficulty to its routed planner, per the tiering
// table: Easy skips the one-trick simulation, Normal includes it, Hard is
// the shallow top-K/continuation planner, Expert is the iterative-
// deepening search (with its own internal endgame handoff).
var planners = map[engine.Difficulty]plannerFunc{
	engine.Easy:   heuristic.DecideBare,
	engine.Normal: heuristic.Decide,
	engine.Hard:   shallow.Decide,
	engine.Expert: deep.Decide,
}

// Decide routes ctx to difficulty's planner, tags the resulting report
// with difficulty, and — if the planner cannot produce a candidate —
// falls back to the canonical first legal card and flags the report
// fallback=true. If sink is non-nil, the final report is pushed into it.
func Decide(ctx engine.DecisionContext, difficulty engine.Difficulty, sink *telemetry.Sink) (engine.DecisionReport, error) {
	plan, ok := planners[difficulty]
	if !ok {
		plan = heuristic.Decide
	}

	report, err := plan(ctx)
	if err != nil {
		var empty *engine.EmptyLegalMoves
		if !errors.As(err, &empty) {
			return engine.DecisionReport{}, err
		}
		report, err = fallback(ctx)
		if err != nil {
			return engine.DecisionReport{}, err
		}
	}

	report.Difficulty = difficulty
	if sink != nil {
		sink.Push(report)
	}
	return report, nil
}

// fallback returns the canonical-order first legal card, flagged in Stats
// so a caller can distinguish a genuine planner decision from this
// recovery path.
func fallback(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	legal := rules.LegalCards(ctx.Round, ctx.Seat)
	if legal.Count() == 0 {
		return engine.DecisionReport{}, &engine.EmptyLegalMoves{Seat: int(ctx.Seat)}
	}
	chosen := legal.Cards()[0]
	return engine.DecisionReport{
		Chosen: chosen,
		Stats:  engine.Stats{UsedFallback: true},
	}, nil
}
