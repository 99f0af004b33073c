// Package weights holds the engine's tunable numeric configuration: a flat
// record of scoring weights, thresholds, and budget limits, with
// tier-parameterised overlays for the leverage-tiered planners.
package weights

// Tier selects which overlay of a handful of tier-varying fields (top-K
// width, probe width, aspiration margin, continuation boost) applies to a
// search decision. See shallow.TierFor.
type Tier int

const (
	TierNarrow Tier = iota
	TierNormal
	TierWide
)

func (t Tier) String() string {
	switch t {
	case TierNarrow:
		return "Narrow"
	case TierWide:
		return "Wide"
	default:
		return "Normal"
	}
}

// TierOverlay is the small set of fields that vary by leverage tier.
type TierOverlay struct {
	TopK               int
	NextBranchLimit    int
	AspirationMargin   int
	PermilleBoostFeed  int
	PermilleBoostSelfCap int
}

// Weights is the engine's full tunable configuration. Every field has a
// compile-time default (see Default()); configuration files override a
// subset. All arithmetic performed with these fields is signed integer —
// no floating-point participates in scoring decisions.
type Weights struct {
	// Step/wall-clock budget (mutually exclusive modes; see engine.Budget).
	StepBudgetMode bool
	StepCap        int
	WallClockCapMs int

	// Shallow-search phase widths.
	BranchLimit       int // checked by Validate; Phase B's top-K is the tier overlay's TopK
	NextBranchLimit   int // checked by Validate; leads probed come from the tier overlay
	PhaseBTopK        int
	AspirationMargin  int
	EarlyCutoffMargin int
	ContinuationCap   int

	// Leverage tiering.
	TiersEnabled            bool
	LeverageThresholdNarrow int
	LeverageThresholdNormal int
	Narrow                  TierOverlay
	Normal                  TierOverlay
	Wide                    TierOverlay

	// Deep search.
	MaxDepth      int
	TTSizeEntries int
	DeepTimeMs    int

	// Endgame solver handoff.
	EndgameEnabled     bool
	EndgameMaxCards    int
	EndgameUseSampling bool

	// Determinization.
	DeterminizationEnabled   bool
	DeterminizationSampleK   int
	DeterminizationTimeMs    int
	DeterminizationProbeWide bool

	// Nudges and adviser (opt-in, off by default).
	NudgesEnabled   bool
	AdviserEnabled  bool
	AdviserBiasMap  map[FeatureFingerprint]int32
	AdviserMaxBias  int32

	// Heuristic weights (~20 fields; spec.md §6).
	OffSuitDumpBonus        int
	EarlyHeartsLeadCaution  int
	Near100SelfCapBase      int
	Near100ShedPerPenalty   int
	HuntFeedPerPenalty      int
	PassToLeaderPenalty     int
	LeaderFeedBase          int
	NonLeaderFeedPerPenalty int
	LeaderFeedGapPer10      int
	CardsPlayedPacing       int
	ContinuationWeightFeed  int
	ContinuationWeightSelf  int
	VoidCreationBonus       int
	SingletonPromotionBonus int
	TrailingSeatBonus       int
	PenaltyRiskPerRank      int
	Near100Threshold        int

	// Moon thresholds (spec.md §4.3).
	MoonCommitMaxCards    int
	MoonCommitMaxScore    int
	MoonCommitMinTricks   int
	MoonCommitMinHearts   int
	MoonCommitMinHighHearts int
	MoonAbortOthersHearts int
	MoonAbortLostControl  bool
	MoonCommitMinControl  int
	HuntLeaderMargin      int
	EndangeredScoreMargin int

	// Telemetry.
	TelemetryRetention int

	// Logging.
	LogVerbose bool
}

// FeatureFingerprint is the closed schema the adviser's bias map is keyed
// on: a small, fixed set of discrete facts about a candidate decision.
// Defined here (rather than as a free-form string key) so that bias-map
// entries cannot silently drift from what the planners actually compute.
type FeatureFingerprint struct {
	Style              string
	Tier               Tier
	LedSuitIsHearts    bool
	HoldsQueenOfSpades bool
	PenaltyOnTable     bool
}

// TierOverlayFor returns the overlay applicable to tier.
func (w Weights) TierOverlayFor(tier Tier) TierOverlay {
	switch tier {
	case TierNarrow:
		return w.Narrow
	case TierWide:
		return w.Wide
	default:
		return w.Normal
	}
}
