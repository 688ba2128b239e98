package config

import "fmt"

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	if err := validateRouter(cfg.Router); err != nil {
		return err
	}
	if err := validateAnalysis(cfg.Analysis); err != nil {
		return err
	}
	if err := validateQueue(cfg.Queue); err != nil {
		return err
	}
	if cfg.LLM.APIKeyEnv == "" {
		return NewValidationError("llm", "llm", "api_key_env", ErrMissingRequiredField)
	}
	return nil
}

func validateRouter(r *RouterConfig) error {
	for _, tier := range TierOrder {
		model, ok := r.Tiers[tier]
		if !ok || model == "" {
			return NewValidationError("router", string(tier), "tiers", ErrTierNotFound)
		}
		if _, ok := r.Pricing[model]; !ok {
			return NewValidationError("router", model, "pricing", ErrPricingNotFound)
		}
	}
	for tier := range r.Tiers {
		if !ValidTier(tier) {
			return NewValidationError("router", string(tier), "tiers",
				fmt.Errorf("%w: unknown tier", ErrInvalidValue))
		}
	}
	if len(r.Tasks) == 0 {
		return NewValidationError("router", "tasks", "", ErrMissingRequiredField)
	}
	for task, tier := range r.Tasks {
		if !ValidTier(tier) {
			return NewValidationError("router", task, "tasks",
				fmt.Errorf("%w: unknown tier %q", ErrInvalidValue, tier))
		}
	}
	for model, pricing := range r.Pricing {
		if pricing.PromptPerMTok < 0 || pricing.CompletionPerMTok < 0 {
			return NewValidationError("router", model, "pricing",
				fmt.Errorf("%w: negative pricing", ErrInvalidValue))
		}
	}
	return nil
}

func validateAnalysis(a *AnalysisConfig) error {
	r := a.Retry
	if r == nil {
		return NewValidationError("analysis", "retry", "", ErrMissingRequiredField)
	}
	if r.MaxAttempts < 1 {
		return NewValidationError("analysis", "retry", "max_attempts",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if r.SchemaMaxAttempts < 1 || r.SchemaMaxAttempts > r.MaxAttempts {
		return NewValidationError("analysis", "retry", "schema_max_attempts",
			fmt.Errorf("%w: must be in [1, max_attempts]", ErrInvalidValue))
	}
	if r.InitialBackoff <= 0 || r.MaxBackoff < r.InitialBackoff {
		return NewValidationError("analysis", "retry", "initial_backoff",
			fmt.Errorf("%w: backoff window is inverted", ErrInvalidValue))
	}
	if r.BackoffMultiplier < 1 {
		return NewValidationError("analysis", "retry", "backoff_multiplier",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if r.JitterFraction < 0 || r.JitterFraction >= 1 {
		return NewValidationError("analysis", "retry", "jitter_fraction",
			fmt.Errorf("%w: must be in [0, 1)", ErrInvalidValue))
	}
	if a.AttemptTimeout <= 0 {
		return NewValidationError("analysis", "analysis", "attempt_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if a.BreakthroughConfidenceThreshold < 0 || a.BreakthroughConfidenceThreshold > 1 {
		return NewValidationError("analysis", "analysis", "breakthrough_confidence_threshold",
			fmt.Errorf("%w: must be in [0, 1]", ErrInvalidValue))
	}
	return nil
}

func validateQueue(q *QueueConfig) error {
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.MaxConcurrentSessions < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_sessions",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.SessionTimeout <= 0 {
		return NewValidationError("queue", "queue", "session_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.TriggersPerPatientPerMinute < 1 {
		return NewValidationError("queue", "queue", "triggers_per_patient_per_minute",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}
