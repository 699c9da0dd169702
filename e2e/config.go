package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// MATCHD_ADDR points at a running matchd, its health check is skipped when empty
	MatchdAddr string `envconfig:"MATCHD_ADDR"`
	// E2E_DATABASE_URL runs the scenarios on the postgres profile store and ledger
	DatabaseURL string `envconfig:"E2E_DATABASE_URL"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours         bool `envconfig:"E2E_COLOURS" default:"true"`
	MaxScanAttempts int  `envconfig:"E2E_MAX_SCAN_ATTEMPTS" default:"100"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
