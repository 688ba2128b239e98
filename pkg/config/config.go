// Package config loads and validates the service configuration from a YAML
// directory with environment-variable expansion and built-in defaults.
package config

// Config is the fully resolved service configuration.
type Config struct {
	configDir string

	Router    *RouterConfig
	Analysis  *AnalysisConfig
	Queue     *QueueConfig
	Retention *RetentionConfig
	LLM       *LLMConfig

	// TechniqueCatalogPath optionally overrides the embedded technique
	// catalog.
	TechniqueCatalogPath string
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes loaded configuration for the health endpoint.
type Stats struct {
	Tiers         int `json:"tiers"`
	Tasks         int `json:"tasks"`
	PricedModels  int `json:"priced_models"`
	WorkerCount   int `json:"worker_count"`
	MaxConcurrent int `json:"max_concurrent_sessions"`
}

// Stats returns configuration statistics.
func (c *Config) Stats() Stats {
	return Stats{
		Tiers:         len(c.Router.Tiers),
		Tasks:         len(c.Router.Tasks),
		PricedModels:  len(c.Router.Pricing),
		WorkerCount:   c.Queue.WorkerCount,
		MaxConcurrent: c.Queue.MaxConcurrentSessions,
	}
}
