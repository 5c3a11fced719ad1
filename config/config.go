package config

import (
	"os"
	"strings"
)

// Config carries the process-level settings read from the environment.
// The booking core itself takes no configuration; everything here belongs
// to the HTTP surface.
type Config struct {
	Port     string
	GinMode  string
	SeedDemo bool
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// Load reads settings from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault("PORT", "8080"),
		GinMode:  envOrDefault("GIN_MODE", "debug"),
		SeedDemo: strings.EqualFold(envOrDefault("SEED_DEMO_DATA", "false"), "true"),
	}
}
