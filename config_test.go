package seer2arff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultSurvivalSplitMonths, cfg.SurvivalSplitMonths)
	assert.Equal(t, "breast", cfg.Relation)
}

func TestLoadConfigFromEnvironment(t *testing.T) {

	t.Setenv("SEER_SURVIVAL_SPLIT_MONTHS", "24")
	t.Setenv("SEER_RELATION", "breast-recur")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.SurvivalSplitMonths)
	assert.Equal(t, "breast-recur", cfg.Relation)
}

func TestConfigValidate(t *testing.T) {

	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.SurvivalSplitMonths = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Relation = ""
	assert.Error(t, bad.Validate())
}
