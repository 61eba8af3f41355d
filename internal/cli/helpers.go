package cli

import (
	"os"

	"github.com/wenget/bucketgen/internal/logger"
	"github.com/wenget/bucketgen/pkg/config"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration file if present, otherwise defaults, and
// applies CLI flag overrides. It also initializes logging.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if ConfigPath != nil && *ConfigPath != "" {
		loaded, err := config.LoadConfig(*ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if _, err := os.Stat("bucketgen.yaml"); err == nil {
		loaded, err := config.LoadConfig("bucketgen.yaml")
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if Verbose != nil && *Verbose {
		cfg.LogLevel = "debug"
	}
	if NoColor != nil && *NoColor {
		cfg.NoColor = true
	}
	logger.InitLogger(cfg.LogLevel, cfg.NoColor)

	return cfg, nil
}
