// Package config holds process configuration (environment) and the
// retention policy (YAML file, hot-reloadable).
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env is the process-level configuration read from the environment.
type Env struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:memberpulse.db?_pragma=foreign_keys(1)"`

	// ScorerURL points at the external risk-scoring service. Empty means
	// scoring endpoints report the prediction as unavailable.
	ScorerURL string `env:"SCORER_URL"`

	// PolicyPath is the retention policy YAML. Empty means built-in defaults.
	PolicyPath string `env:"POLICY_PATH"`

	// ScanInterval enables the periodic alert scan worker when > 0.
	ScanInterval time.Duration `env:"SCAN_INTERVAL"`

	SeedDemo bool `env:"SEED_DEMO"`
}

// LoadEnv parses configuration from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}
