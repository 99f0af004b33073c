package weights

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()
	require.NoError(t, Default().Validate())
}

func TestTierOverlayFor(t *testing.T) {
	t.Parallel()
	w := Default()
	assert.Equal(t, w.Narrow, w.TierOverlayFor(TierNarrow))
	assert.Equal(t, w.Normal, w.TierOverlayFor(TierNormal))
	assert.Equal(t, w.Wide, w.TierOverlayFor(TierWide))
}

func TestValidateCatchesBadStepCap(t *testing.T) {
	t.Parallel()
	w := Default()
	w.StepBudgetMode = true
	w.StepCap = 0
	assert.Error(t, w.Validate())
}

func TestValidateCatchesInvertedLeverageThresholds(t *testing.T) {
	t.Parallel()
	w := Default()
	w.LeverageThresholdNarrow = 10
	w.LeverageThresholdNormal = 5
	assert.Error(t, w.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	w, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), w)
}

func TestLoadAppliesOverrides(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "weights.hcl")
	contents := `
step_cap            = 5000
branch_limit         = 4
tiers_enabled        = false
max_depth            = 8
endgame_max_cards    = 5
determinization_enabled = true
sample_k             = 12
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	w, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, w.StepCap)
	assert.Equal(t, 4, w.BranchLimit)
	assert.False(t, w.TiersEnabled)
	assert.Equal(t, 8, w.MaxDepth)
	assert.Equal(t, 5, w.EndgameMaxCards)
	assert.True(t, w.DeterminizationEnabled)
	assert.Equal(t, 12, w.DeterminizationSampleK)

	// Everything not overridden keeps its default.
	assert.Equal(t, Default().AspirationMargin, w.AspirationMargin)
	assert.Equal(t, Default().Wide, w.Wide)
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "weights.hcl")
	require.NoError(t, os.WriteFile(path, []byte("max_depth = 0\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDecodesEmbeddedBiasEntries(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "weights.hcl")
	contents := `
adviser_enabled  = true
adviser_max_bias = 20

bias_entry {
  style                 = "Cautious"
  tier                  = "normal"
  led_suit_is_hearts    = true
  holds_queen_of_spades = true
  penalty_on_table      = true
  bias                  = 7
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	w, err := Load(path)
	require.NoError(t, err)

	assert.True(t, w.AdviserEnabled)
	assert.EqualValues(t, 20, w.AdviserMaxBias)
	fp := FeatureFingerprint{
		Style:              "Cautious",
		Tier:               TierNormal,
		LedSuitIsHearts:    true,
		HoldsQueenOfSpades: true,
		PenaltyOnTable:     true,
	}
	require.Contains(t, w.AdviserBiasMap, fp)
	assert.EqualValues(t, 7, w.AdviserBiasMap[fp])
}

func TestLoadRejectsUnknownTierInBiasEntry(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "weights.hcl")
	contents := `
bias_entry {
  style                 = "Cautious"
  tier                  = "extreme"
  led_suit_is_hearts    = false
  holds_queen_of_spades = false
  penalty_on_table      = false
  bias                  = 1
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
