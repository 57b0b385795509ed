package seer2arff

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultSurvivalSplitMonths is the default boundary for the
// two-class survival recode.  The study this tool was written for
// split at one year.
const DefaultSurvivalSplitMonths = 12

// Config carries the run settings that must be fixed before any
// converter or filter is constructed.  A Config is resolved once at
// startup and never mutated afterwards; the survival recode captures
// its split at construction time.
type Config struct {

	// SurvivalSplitMonths is the survival recode class boundary.
	SurvivalSplitMonths int `envconfig:"SURVIVAL_SPLIT_MONTHS" default:"12"`

	// Relation is the ARFF relation name written in the header.
	Relation string `envconfig:"RELATION" default:"breast"`
}

// LoadConfig resolves the configuration from the built-in defaults
// and the SEER_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("seer", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration after any command line overrides
// have been applied.
func (cfg Config) Validate() error {
	if cfg.SurvivalSplitMonths < 1 {
		return fmt.Errorf("survival split must be at least one month, got %d",
			cfg.SurvivalSplitMonths)
	}
	if cfg.Relation == "" {
		return fmt.Errorf("relation name must not be empty")
	}
	return nil
}
