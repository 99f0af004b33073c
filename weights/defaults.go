package weights

// Default returns the engine's compile-time default configuration.
// Configuration files (see config.go) override a subset of these fields;
// everything else keeps its default, matching spec.md §4.2's resolution
// order "compile-time defaults → configuration overrides".
func Default() Weights {
	return Weights{
		StepBudgetMode: true,
		StepCap:        20000,
		WallClockCapMs: 150,

		BranchLimit:       6,
		NextBranchLimit:   3,
		PhaseBTopK:        6,
		AspirationMargin:  25,
		EarlyCutoffMargin: 5,
		ContinuationCap:   40,

		TiersEnabled:            true,
		LeverageThresholdNarrow: 4,
		LeverageThresholdNormal: 9,
		Narrow: TierOverlay{
			TopK: 3, NextBranchLimit: 1, AspirationMargin: 10,
			PermilleBoostFeed: 0, PermilleBoostSelfCap: 0,
		},
		Normal: TierOverlay{
			TopK: 6, NextBranchLimit: 3, AspirationMargin: 25,
			PermilleBoostFeed: 0, PermilleBoostSelfCap: 0,
		},
		Wide: TierOverlay{
			TopK: 10, NextBranchLimit: 4, AspirationMargin: 40,
			PermilleBoostFeed: 100, PermilleBoostSelfCap: 100,
		},

		MaxDepth:      12,
		TTSizeEntries: 1 << 16,
		DeepTimeMs:    800,

		EndgameEnabled:     true,
		EndgameMaxCards:    3,
		EndgameUseSampling: false,

		DeterminizationEnabled:   false,
		DeterminizationSampleK:   8,
		DeterminizationTimeMs:    50,
		DeterminizationProbeWide: false,

		NudgesEnabled:  false,
		AdviserEnabled: false,
		AdviserBiasMap: nil,
		AdviserMaxBias: 15,

		OffSuitDumpBonus:        4,
		EarlyHeartsLeadCaution:  6,
		Near100SelfCapBase:      30,
		Near100ShedPerPenalty:   5,
		HuntFeedPerPenalty:      3,
		PassToLeaderPenalty:     8,
		LeaderFeedBase:          6,
		NonLeaderFeedPerPenalty: 1,
		LeaderFeedGapPer10:      2,
		CardsPlayedPacing:       1,
		ContinuationWeightFeed:  2,
		ContinuationWeightSelf:  2,
		VoidCreationBonus:       5,
		SingletonPromotionBonus: 3,
		TrailingSeatBonus:       4,
		PenaltyRiskPerRank:      1,
		Near100Threshold:        85,

		MoonCommitMaxCards:      6,
		MoonCommitMaxScore:      10,
		MoonCommitMinTricks:     2,
		MoonCommitMinHearts:     5,
		MoonCommitMinHighHearts: 2,
		MoonAbortOthersHearts:   4,
		MoonAbortLostControl:    true,
		MoonCommitMinControl:    2,
		HuntLeaderMargin:        15,
		EndangeredScoreMargin:   10,

		TelemetryRetention: 200,

		LogVerbose: false,
	}
}
