// Package deep implements the Expert-tier planner: iterative-deepening
// alpha-beta search over a paranoid (one-seat-vs-the-rest) reduction of
// Hearts' per-seat captured-penalty deltas, with a transposition table,
// killer-move ordering, and aspiration windows, handing off to the
// endgame package's exact solver once few enough cards remain. Optional
// determinization averages the search across several sampled worlds when
// the acting seat's belief about opponents' hands is uncertain.
package deep

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/0x4D44/mdhearts-sub002/card"
	"github.com/0x4D44/mdhearts-sub002/endgame"
	"github.com/0x4D44/mdhearts-sub002/engine"
	"github.com/0x4D44/mdhearts-sub002/internal/randutil"
	"github.com/0x4D44/mdhearts-sub002/rules"
)

// Decide is the Expert-tier entry point. It hands off to the exact
// endgame solver once every hand is within ctx.Weights.EndgameMaxCards,
// and otherwise runs iterative-deepening alpha-beta search, optionally
// averaged across determinized worlds sampled from ctx.Tracker.
func Decide(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	if err := ctx.Validate(); err != nil {
		return engine.DecisionReport{}, err
	}
	legal := rules.LegalCards(ctx.Round, ctx.Seat)
	if legal.Count() == 0 {
		return engine.DecisionReport{}, &engine.EmptyLegalMoves{Seat: int(ctx.Seat)}
	}

	if handoffEligible(ctx) {
		return decideViaEndgame(ctx)
	}
	return decideViaSearch(ctx)
}

// handoffEligible reports whether every seat's remaining hand is small
// enough for the exact endgame solver to enumerate outright.
func handoffEligible(ctx engine.DecisionContext) bool {
	if !ctx.Weights.EndgameEnabled {
		return false
	}
	for s := rules.Seat(0); s < rules.NumSeats; s++ {
		if ctx.Round.Hand(s).Count() > ctx.Weights.EndgameMaxCards {
			return false
		}
	}
	return true
}

func decideViaEndgame(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	result, err := endgame.Solve(ctx.Round, ctx.Seat, ctx.Weights.TTSizeEntries)
	if err != nil {
		return engine.DecisionReport{}, err
	}

	candidates := make([]engine.Candidate, 0, len(result.Candidates))
	for _, cr := range result.Candidates {
		score := paranoidScalar(cr.Values, ctx.Seat)
		candidates = append(candidates, engine.Candidate{
			Card:      cr.Card,
			BaseScore: score,
			Total:     score,
			Components: []engine.Component{
				{Name: "endgame_exact", Value: score},
			},
		})
	}
	sortCandidates(candidates)

	return engine.DecisionReport{
		Chosen:     result.Chosen,
		Candidates: candidates,
		Style:      engine.Cautious,
		Stats: engine.Stats{
			ScannedPhaseA:      len(candidates),
			TranspositionHits:  result.MemoHits,
			TranspositionTotal: result.NodesEvaluated,
			DepthReached:       ctx.Round.Hand(ctx.Seat).Count(),
		},
	}, nil
}

func decideViaSearch(ctx engine.DecisionContext) (engine.DecisionReport, error) {
	if !ctx.Weights.DeterminizationEnabled || ctx.Tracker == nil {
		moves, stats := searchWorld(ctx, ctx.Round)
		return reportFrom(ctx, moves, stats), nil
	}

	k := ctx.Weights.DeterminizationSampleK
	if k <= 0 {
		moves, stats := searchWorld(ctx, ctx.Round)
		return reportFrom(ctx, moves, stats), nil
	}

	counts := opponentHandCounts(ctx)
	allMoves := make([][]cardValue, k)
	allStats := make([]engine.Stats, k)
	sampled := make([]bool, k)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < k; i++ {
		i := i
		g.Go(func() error {
			world, err := ctx.Tracker.SampleWorld(counts, randutil.Derive(ctx.Seed, i))
			if err != nil {
				return nil //nolint:nilerr // a missing sample degrades to fewer samples, not failure
			}
			sampledRound := substituteWorld(ctx.Round, ctx.Seat, world)
			sampledCtx := ctx
			sampledCtx.Round = sampledRound
			moves, stats := searchWorld(sampledCtx, sampledRound)
			allMoves[i], allStats[i] = moves, stats
			sampled[i] = true
			return nil
		})
	}
	_ = g.Wait()

	totals := make(map[card.Card]int)
	counted := make(map[card.Card]int)
	var agg engine.Stats
	n := 0
	minDepth := -1
	for i, ok := range sampled {
		if !ok {
			continue
		}
		n++
		for _, mv := range allMoves[i] {
			totals[mv.Card] += mv.Score
			counted[mv.Card]++
		}
		agg.TranspositionHits += allStats[i].TranspositionHits
		agg.TranspositionTotal += allStats[i].TranspositionTotal
		agg.StepsUsed += allStats[i].StepsUsed
		if allStats[i].ElapsedMs > agg.ElapsedMs {
			agg.ElapsedMs = allStats[i].ElapsedMs
		}
		agg.BudgetExhausted = agg.BudgetExhausted || allStats[i].BudgetExhausted
		agg.Cancelled = agg.Cancelled || allStats[i].Cancelled
		if minDepth == -1 || allStats[i].DepthReached < minDepth {
			minDepth = allStats[i].DepthReached
		}
	}

	if n == 0 {
		moves, stats := searchWorld(ctx, ctx.Round)
		stats.SamplingFailed = true
		return reportFrom(ctx, moves, stats), nil
	}

	moves := make([]cardValue, 0, len(totals))
	for c, total := range totals {
		moves = append(moves, cardValue{Card: c, Score: total / counted[c]})
	}
	agg.DepthReached = minDepth
	return reportFrom(ctx, moves, agg), nil
}

func reportFrom(ctx engine.DecisionContext, moves []cardValue, stats engine.Stats) engine.DecisionReport {
	candidates := make([]engine.Candidate, 0, len(moves))
	for _, mv := range moves {
		candidates = append(candidates, engine.Candidate{
			Card:      mv.Card,
			BaseScore: mv.Score,
			Total:     mv.Score,
			Components: []engine.Component{
				{Name: "deep_search", Value: mv.Score},
			},
		})
	}
	sortCandidates(candidates)
	stats.ScannedPhaseA = len(candidates)

	chosen := ctx.Round.Hand(ctx.Seat).Cards()[0]
	if len(candidates) > 0 {
		chosen = candidates[0].Card
	}

	return engine.DecisionReport{
		Chosen:     chosen,
		Candidates: candidates,
		Style:      engine.Cautious,
		Stats:      stats,
		Difficulty: engine.Expert,
	}
}

func sortCandidates(candidates []engine.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Total != candidates[j].Total {
			return candidates[i].Total > candidates[j].Total
		}
		return candidates[i].Card.Less(candidates[j].Card)
	})
}

// searchWorld runs one complete iterative-deepening alpha-beta search
// against round (a single, fully-determined world), returning every root
// candidate's final searched score and the resulting search statistics.
func searchWorld(ctx engine.DecisionContext, round rules.RoundState) ([]cardValue, engine.Stats) {
	s := newSearcher(ctx, round)

	maxDepth := ctx.Weights.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 1
	}
	margin := ctx.Weights.AspirationMargin
	if margin <= 0 {
		margin = scoreInf
	}

	var best []cardValue
	depthReached := 0
	prevScore := 0
	havePrev := false

	for depth := 1; depth <= maxDepth; depth++ {
		if s.budget.Exhausted() || s.cancelled() {
			break
		}

		alpha, beta := -scoreInf, scoreInf
		if havePrev {
			alpha, beta = prevScore-margin, prevScore+margin
		}
		moves := s.rootMoves(round, depth, alpha, beta)
		if len(moves) == 0 {
			break
		}
		top := bestMove(moves)

		if havePrev && (top.Score <= alpha || top.Score >= beta) && !s.budget.Exhausted() && !s.cancelled() {
			moves = s.rootMoves(round, depth, -scoreInf, scoreInf)
			if len(moves) == 0 {
				break
			}
			top = bestMove(moves)
		}

		best = moves
		depthReached = depth
		prevScore, havePrev = top.Score, true

		if s.budget.Exhausted() || s.cancelled() {
			break
		}
	}

	stats := engine.Stats{
		TranspositionHits:  s.ttHits,
		TranspositionTotal: s.nodes,
		DepthReached:       depthReached,
		StepsUsed:          s.budget.StepsUsed(),
		ElapsedMs:          s.budget.ElapsedMs(),
		BudgetExhausted:    s.budget.Exhausted(),
		Cancelled:          s.cancelled(),
	}
	return best, stats
}

func bestMove(moves []cardValue) cardValue {
	best := moves[0]
	for _, mv := range moves[1:] {
		if mv.Score > best.Score {
			best = mv
		}
	}
	return best
}
