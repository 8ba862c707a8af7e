package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// API_BASE_URL points at a running API, e.g. http://localhost:3001
	BaseURL string `envconfig:"API_BASE_URL"`
	// E2E_DEBUG_JSON dumps response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	Colours   bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
