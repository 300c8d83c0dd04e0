package main

import (
	"strings"
	"time"

	"github.com/alnah/go-bookindex/internal/config"
	"github.com/alnah/go-bookindex/internal/logging"
)

// envPrefix starts every environment variable read by the CLI.
const envPrefix = "BOOKINDEX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // BOOKINDEX_CONFIG: config file name or path
	Style      string        // BOOKINDEX_STYLE: CSS style name or path
	Timeout    time.Duration // BOOKINDEX_TIMEOUT: PDF generation timeout
	OutputDir  string        // BOOKINDEX_OUTPUT_DIR: default output directory
	AssetPath  string        // BOOKINDEX_ASSET_PATH: custom asset directory
	PageSize   string        // BOOKINDEX_PAGE_SIZE: a4, letter, legal
	Lang       string        // BOOKINDEX_LANG: document language
}

// knownEnvVars lists valid BOOKINDEX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BOOKINDEX_CONFIG":     true,
	"BOOKINDEX_STYLE":      true,
	"BOOKINDEX_TIMEOUT":    true,
	"BOOKINDEX_OUTPUT_DIR": true,
	"BOOKINDEX_ASSET_PATH": true,
	"BOOKINDEX_PAGE_SIZE":  true,
	"BOOKINDEX_LANG":       true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive timeout is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("BOOKINDEX_CONFIG"),
		Style:      getenv("BOOKINDEX_STYLE"),
		OutputDir:  getenv("BOOKINDEX_OUTPUT_DIR"),
		AssetPath:  getenv("BOOKINDEX_ASSET_PATH"),
		PageSize:   getenv("BOOKINDEX_PAGE_SIZE"),
		Lang:       getenv("BOOKINDEX_LANG"),
	}

	if timeout := getenv("BOOKINDEX_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			log := logging.For("env")
			log.Warn().Str("value", timeout).Msg("ignoring invalid BOOKINDEX_TIMEOUT")
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for every unrecognized BOOKINDEX_*
// variable, to catch typos like BOOKINDEX_STYEL.
func warnUnknownEnvVars(environ []string) {
	log := logging.For("env")
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			log.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags; the timeout is resolved
// separately by resolveTimeout)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style == "" {
		cfg.Style = env.Style
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Lang != "" && cfg.Index.Lang == "" {
		cfg.Index.Lang = env.Lang
	}
}
