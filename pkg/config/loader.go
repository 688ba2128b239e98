package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// therabridgeYAMLConfig represents the complete therabridge.yaml file structure.
type therabridgeYAMLConfig struct {
	Router     *RouterConfig    `yaml:"router"`
	Analysis   *AnalysisConfig  `yaml:"analysis"`
	Queue      *QueueConfig     `yaml:"queue"`
	Retention  *RetentionConfig `yaml:"retention"`
	LLM        *LLMConfig       `yaml:"llm"`
	Techniques *techniquesYAML  `yaml:"techniques"`
}

type techniquesYAML struct {
	CatalogPath string `yaml:"catalog_path"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load therabridge.yaml from configDir (optional — defaults apply)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user config over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"tiers", stats.Tiers,
		"tasks", stats.Tasks,
		"priced_models", stats.PricedModels,
		"workers", stats.WorkerCount)

	return cfg, nil
}

// load reads therabridge.yaml (if present) and merges it over defaults.
func load(configDir string) (*Config, error) {
	userCfg := &therabridgeYAMLConfig{}

	path := filepath.Join(configDir, "therabridge.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Warn("No therabridge.yaml found, using built-in defaults", "path", path)
	case err != nil:
		return nil, NewLoadError("therabridge.yaml", err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, userCfg); err != nil {
			return nil, NewLoadError("therabridge.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	}

	// Start from defaults, then merge user config on top so unset fields
	// keep their built-in values.
	router := DefaultRouterConfig()
	if userCfg.Router != nil {
		if err := mergo.Merge(router, userCfg.Router, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge router config: %w", err)
		}
		// mergo can't distinguish "unset" from zero for TierShift; take the
		// user value verbatim when a router section is present.
		router.TierShift = userCfg.Router.TierShift
	}

	analysis := DefaultAnalysisConfig()
	if userCfg.Analysis != nil {
		if err := mergo.Merge(analysis, userCfg.Analysis, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge analysis config: %w", err)
		}
	}

	queue := DefaultQueueConfig()
	if userCfg.Queue != nil {
		if err := mergo.Merge(queue, userCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if userCfg.Retention != nil {
		if err := mergo.Merge(retention, userCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	llmCfg := DefaultLLMConfig()
	if userCfg.LLM != nil {
		if err := mergo.Merge(llmCfg, userCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	catalogPath := ""
	if userCfg.Techniques != nil {
		catalogPath = userCfg.Techniques.CatalogPath
	}

	return &Config{
		configDir:            configDir,
		Router:               router,
		Analysis:             analysis,
		Queue:                queue,
		Retention:            retention,
		LLM:                  llmCfg,
		TechniqueCatalogPath: catalogPath,
	}, nil
}
