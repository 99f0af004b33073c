package weights

import "fmt"

// Validate reports the first configuration inconsistency found in w, if
// any. Mirrors the teacher's ServerConfig.Validate: cheap, linear checks
// over the flat record, catching operator mistakes before a decision is
// ever requested.
func (w Weights) Validate() error {
	if w.StepBudgetMode && w.StepCap <= 0 {
		return fmt.Errorf("weights: step_cap must be positive when step budget mode is enabled")
	}
	if !w.StepBudgetMode && w.WallClockCapMs <= 0 {
		return fmt.Errorf("weights: wall_clock_cap_ms must be positive when wall-clock budget mode is enabled")
	}
	if w.BranchLimit <= 0 {
		return fmt.Errorf("weights: branch_limit must be positive")
	}
	if w.NextBranchLimit < 0 {
		return fmt.Errorf("weights: next_branch_limit must not be negative")
	}
	if w.TiersEnabled && w.LeverageThresholdNarrow >= w.LeverageThresholdNormal {
		return fmt.Errorf("weights: leverage_threshold_narrow must be less than leverage_threshold_normal")
	}
	for name, overlay := range map[string]TierOverlay{"narrow": w.Narrow, "normal": w.Normal, "wide": w.Wide} {
		if overlay.TopK <= 0 {
			return fmt.Errorf("weights: tier %s top_k must be positive", name)
		}
	}
	if w.MaxDepth <= 0 {
		return fmt.Errorf("weights: max_depth must be positive")
	}
	if w.TTSizeEntries <= 0 {
		return fmt.Errorf("weights: tt_size_entries must be positive")
	}
	if w.EndgameMaxCards < 0 || w.EndgameMaxCards > 13 {
		return fmt.Errorf("weights: endgame_max_cards must be within [0, 13]")
	}
	if w.DeterminizationEnabled && w.DeterminizationSampleK <= 0 {
		return fmt.Errorf("weights: sample_k must be positive when determinization is enabled")
	}
	if w.AdviserEnabled && w.AdviserMaxBias < 0 {
		return fmt.Errorf("weights: adviser_max_bias must not be negative")
	}
	if w.TelemetryRetention <= 0 {
		return fmt.Errorf("weights: telemetry retention must be positive")
	}
	if w.MoonCommitMinControl < 0 {
		return fmt.Errorf("weights: moon commit_min_control must not be negative")
	}
	return nil
}
