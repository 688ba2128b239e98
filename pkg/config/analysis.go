package config

import "time"

// RetryConfig controls per-analyzer retry behavior.
type RetryConfig struct {
	// MaxAttempts is the attempt cap per kind for transient failures.
	MaxAttempts int `yaml:"max_attempts"`

	// SchemaMaxAttempts is the attempt cap when the model returns
	// unparseable output: the initial call plus one strict re-prompt.
	SchemaMaxAttempts int `yaml:"schema_max_attempts"`

	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration `yaml:"initial_backoff"`

	// BackoffMultiplier grows the delay between attempts.
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`

	// MaxBackoff caps the delay.
	MaxBackoff time.Duration `yaml:"max_backoff"`

	// JitterFraction randomizes each delay by ±fraction.
	JitterFraction float64 `yaml:"jitter_fraction"`
}

// AnalysisConfig groups analyzer tuning knobs.
type AnalysisConfig struct {
	Retry *RetryConfig `yaml:"retry"`

	// AttemptTimeout is the per-attempt deadline for most analyzers.
	AttemptTimeout time.Duration `yaml:"attempt_timeout"`

	// ActionSummaryTimeout overrides AttemptTimeout for the cheap
	// action-summary call.
	ActionSummaryTimeout time.Duration `yaml:"action_summary_timeout"`

	// DeepTimeout overrides AttemptTimeout for the deep analysis.
	DeepTimeout time.Duration `yaml:"deep_timeout"`

	// BreakthroughConfidenceThreshold gates has_breakthrough: primary
	// candidates below it are reported as no breakthrough.
	BreakthroughConfidenceThreshold float64 `yaml:"breakthrough_confidence_threshold"`

	// TranscriptTokenBudget caps how many transcript tokens a prompt may
	// carry; older segments are dropped first when over budget.
	TranscriptTokenBudget int `yaml:"transcript_token_budget"`
}

// TimeoutFor returns the per-attempt deadline for a task name.
func (c *AnalysisConfig) TimeoutFor(task string) time.Duration {
	switch task {
	case "action_summary":
		if c.ActionSummaryTimeout > 0 {
			return c.ActionSummaryTimeout
		}
	case "deep":
		if c.DeepTimeout > 0 {
			return c.DeepTimeout
		}
	}
	return c.AttemptTimeout
}

// DefaultAnalysisConfig returns the built-in analysis defaults.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Retry: &RetryConfig{
			MaxAttempts:       3,
			SchemaMaxAttempts: 2,
			InitialBackoff:    1 * time.Second,
			BackoffMultiplier: 2.0,
			MaxBackoff:        30 * time.Second,
			JitterFraction:    0.2,
		},
		AttemptTimeout:                  60 * time.Second,
		ActionSummaryTimeout:            20 * time.Second,
		DeepTimeout:                     120 * time.Second,
		BreakthroughConfidenceThreshold: 0.6,
		TranscriptTokenBudget:           24000,
	}
}
