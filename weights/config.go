package weights

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig mirrors the subset of Weights an operator is expected to
// override from a config file. Every field is optional; fields left unset
// in the file keep Default()'s value. This is deliberately a separate,
// smaller struct from Weights (rather than tagging Weights directly)
// because several Weights fields (the adviser bias map, the tier overlays)
// need bespoke decoding that gohcl's struct tags cannot express directly.
type fileConfig struct {
	Difficulty string `hcl:"difficulty,optional"`

	StepBudgetMode *bool `hcl:"step_budget_mode,optional"`
	StepCap        *int  `hcl:"step_cap,optional"`
	WallClockCapMs *int  `hcl:"wall_clock_cap_ms,optional"`

	BranchLimit       *int `hcl:"branch_limit,optional"`
	NextBranchLimit   *int `hcl:"next_branch_limit,optional"`
	PhaseBTopK        *int `hcl:"phase_b_top_k,optional"`
	AspirationMargin  *int `hcl:"ab_margin,optional"`
	EarlyCutoffMargin *int `hcl:"early_cutoff_margin,optional"`
	ContinuationCap   *int `hcl:"cont_cap,optional"`

	TiersEnabled            *bool `hcl:"tiers_enabled,optional"`
	LeverageThresholdNarrow *int  `hcl:"leverage_threshold_narrow,optional"`
	LeverageThresholdNormal *int  `hcl:"leverage_threshold_normal,optional"`

	MaxDepth      *int `hcl:"max_depth,optional"`
	TTSizeEntries *int `hcl:"tt_size_entries,optional"`
	DeepTimeMs    *int `hcl:"time_ms,optional"`

	EndgameEnabled     *bool `hcl:"endgame_enabled,optional"`
	EndgameMaxCards    *int  `hcl:"endgame_max_cards,optional"`
	EndgameUseSampling *bool `hcl:"endgame_use_sampling,optional"`

	DeterminizationEnabled   *bool `hcl:"determinization_enabled,optional"`
	DeterminizationSampleK   *int  `hcl:"sample_k,optional"`
	DeterminizationTimeMs    *int  `hcl:"determinization_time_ms,optional"`
	DeterminizationProbeWide *bool `hcl:"probe_wide_like,optional"`

	NudgesEnabled  *bool `hcl:"nudges_enabled,optional"`
	AdviserEnabled *bool `hcl:"adviser_enabled,optional"`
	AdviserMaxBias *int  `hcl:"adviser_max_bias,optional"`

	// AdviserBiasMapPath points at a separate HCL file holding bias_entry
	// blocks (spec.md §6 "bias_map (path or embedded)"); AdviserBias holds
	// bias_entry blocks declared directly in this file. Both populate
	// Weights.AdviserBiasMap; entries from the path file are applied first
	// so embedded entries in the same file can override them.
	AdviserBiasMapPath *string                  `hcl:"adviser_bias_map_path,optional"`
	AdviserBias        []adviserBiasEntryConfig `hcl:"bias_entry,block"`

	TelemetryRetention *int  `hcl:"retention,optional"`
	LogVerbose         *bool `hcl:"log_verbose,optional"`
}

// adviserBiasEntryConfig is one HCL bias_entry block: a FeatureFingerprint
// spelled out in config syntax, plus the signed bias it contributes.
type adviserBiasEntryConfig struct {
	Style              string `hcl:"style"`
	Tier               string `hcl:"tier"`
	LedSuitIsHearts    bool   `hcl:"led_suit_is_hearts"`
	HoldsQueenOfSpades bool   `hcl:"holds_queen_of_spades"`
	PenaltyOnTable     bool   `hcl:"penalty_on_table"`
	Bias               int    `hcl:"bias"`
}

func parseTier(s string) (Tier, error) {
	switch s {
	case "narrow":
		return TierNarrow, nil
	case "normal", "":
		return TierNormal, nil
	case "wide":
		return TierWide, nil
	default:
		return 0, fmt.Errorf("weights: unknown tier %q", s)
	}
}

// buildBiasMap decodes a slice of bias_entry blocks into the closed
// FeatureFingerprint-keyed map applyAdviser looks entries up in.
func buildBiasMap(entries []adviserBiasEntryConfig) (map[FeatureFingerprint]int32, error) {
	m := make(map[FeatureFingerprint]int32, len(entries))
	for _, e := range entries {
		tier, err := parseTier(e.Tier)
		if err != nil {
			return nil, err
		}
		fp := FeatureFingerprint{
			Style:              e.Style,
			Tier:               tier,
			LedSuitIsHearts:    e.LedSuitIsHearts,
			HoldsQueenOfSpades: e.HoldsQueenOfSpades,
			PenaltyOnTable:     e.PenaltyOnTable,
		}
		m[fp] = int32(e.Bias)
	}
	return m, nil
}

// loadBiasMapPath parses path as its own HCL file of bias_entry blocks,
// for the "bias_map is a path" half of spec.md §6.
func loadBiasMapPath(path string) (map[FeatureFingerprint]int32, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("weights: parse bias map %s: %s", path, diags.Error())
	}
	var body struct {
		Entries []adviserBiasEntryConfig `hcl:"bias_entry,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("weights: decode bias map %s: %s", path, diags.Error())
	}
	return buildBiasMap(body.Entries)
}

// Load reads weights overrides from an HCL file at path, layered on top of
// Default(). A missing file is not an error: Default() is returned as-is,
// matching the teacher's LoadServerConfig behaviour for a missing config.
func Load(path string) (Weights, error) {
	w := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return w, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Weights{}, fmt.Errorf("weights: parse %s: %s", path, diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return Weights{}, fmt.Errorf("weights: decode %s: %s", path, diags.Error())
	}

	if err := applyOverrides(&w, fc); err != nil {
		return Weights{}, err
	}

	if err := w.Validate(); err != nil {
		return Weights{}, fmt.Errorf("weights: %s: %w", path, err)
	}
	return w, nil
}

// DecodeBody exposes the underlying gohcl decode step for callers (e.g. the
// CLI) that have already parsed a body from a combined config file
// alongside other sections.
func DecodeBody(body hcl.Body) (Weights, error) {
	w := Default()
	var fc fileConfig
	diags := gohcl.DecodeBody(body, nil, &fc)
	if diags.HasErrors() {
		return Weights{}, fmt.Errorf("weights: decode body: %s", diags.Error())
	}
	if err := applyOverrides(&w, fc); err != nil {
		return Weights{}, err
	}
	return w, w.Validate()
}

func applyOverrides(w *Weights, fc fileConfig) error {
	setBool(&w.StepBudgetMode, fc.StepBudgetMode)
	setInt(&w.StepCap, fc.StepCap)
	setInt(&w.WallClockCapMs, fc.WallClockCapMs)

	setInt(&w.BranchLimit, fc.BranchLimit)
	setInt(&w.NextBranchLimit, fc.NextBranchLimit)
	setInt(&w.PhaseBTopK, fc.PhaseBTopK)
	setInt(&w.AspirationMargin, fc.AspirationMargin)
	setInt(&w.EarlyCutoffMargin, fc.EarlyCutoffMargin)
	setInt(&w.ContinuationCap, fc.ContinuationCap)

	setBool(&w.TiersEnabled, fc.TiersEnabled)
	setInt(&w.LeverageThresholdNarrow, fc.LeverageThresholdNarrow)
	setInt(&w.LeverageThresholdNormal, fc.LeverageThresholdNormal)

	setInt(&w.MaxDepth, fc.MaxDepth)
	setInt(&w.TTSizeEntries, fc.TTSizeEntries)
	setInt(&w.DeepTimeMs, fc.DeepTimeMs)

	setBool(&w.EndgameEnabled, fc.EndgameEnabled)
	setInt(&w.EndgameMaxCards, fc.EndgameMaxCards)
	setBool(&w.EndgameUseSampling, fc.EndgameUseSampling)

	setBool(&w.DeterminizationEnabled, fc.DeterminizationEnabled)
	setInt(&w.DeterminizationSampleK, fc.DeterminizationSampleK)
	setInt(&w.DeterminizationTimeMs, fc.DeterminizationTimeMs)
	setBool(&w.DeterminizationProbeWide, fc.DeterminizationProbeWide)

	setBool(&w.NudgesEnabled, fc.NudgesEnabled)
	setBool(&w.AdviserEnabled, fc.AdviserEnabled)
	if fc.AdviserMaxBias != nil {
		w.AdviserMaxBias = int32(*fc.AdviserMaxBias)
	}

	if fc.AdviserBiasMapPath != nil {
		m, err := loadBiasMapPath(*fc.AdviserBiasMapPath)
		if err != nil {
			return err
		}
		w.AdviserBiasMap = m
	}
	if len(fc.AdviserBias) > 0 {
		embedded, err := buildBiasMap(fc.AdviserBias)
		if err != nil {
			return err
		}
		if w.AdviserBiasMap == nil {
			w.AdviserBiasMap = embedded
		} else {
			for fp, bias := range embedded {
				w.AdviserBiasMap[fp] = bias
			}
		}
	}

	setInt(&w.TelemetryRetention, fc.TelemetryRetention)
	setBool(&w.LogVerbose, fc.LogVerbose)
	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
