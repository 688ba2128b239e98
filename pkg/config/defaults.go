package config

// DefaultRouterConfig returns the built-in model routing table.
// Every logical task the orchestrator schedules must appear in Tasks.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Tiers: map[Tier]string{
			TierPrecision: "gpt-4o",
			TierBalanced:  "gpt-4o-mini",
			TierRapid:     "gpt-4.1-nano",
		},
		Tasks: map[string]Tier{
			"mood":           TierBalanced,
			"topics":         TierBalanced,
			"breakthrough":   TierPrecision,
			"action_summary": TierRapid,
			"deep":           TierPrecision,
		},
		TierShift: 0,
		Pricing: map[string]ModelPricing{
			"gpt-4o":       {PromptPerMTok: 2.50, CompletionPerMTok: 10.00},
			"gpt-4o-mini":  {PromptPerMTok: 0.15, CompletionPerMTok: 0.60},
			"gpt-4.1-nano": {PromptPerMTok: 0.10, CompletionPerMTok: 0.40},
		},
	}
}
