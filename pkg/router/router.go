// Package router resolves logical analysis tasks to concrete model ids via
// the tier configuration, and prices token usage per call.
package router

import (
	"fmt"
	"sync/atomic"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
)

// Resolution is the outcome of routing one task.
type Resolution struct {
	ModelID string
	Tier    config.Tier
	Pricing config.ModelPricing
}

// Router maps task names to models. The routing table is swapped atomically
// on reload; lookups never block.
type Router struct {
	cfg atomic.Pointer[config.RouterConfig]
}

// New creates a Router from a validated routing configuration.
func New(cfg *config.RouterConfig) *Router {
	r := &Router{}
	r.cfg.Store(cfg)
	return r
}

// Reload swaps in a new routing table.
func (r *Router) Reload(cfg *config.RouterConfig) {
	r.cfg.Store(cfg)
}

// Resolve maps a task name to a model. override, when non-empty, bypasses
// all lookup and is priced if known (unpriced overrides cost zero).
// An unknown task is a configuration error: fatal, not retried.
func (r *Router) Resolve(task, override string) (Resolution, error) {
	cfg := r.cfg.Load()

	if override != "" {
		return Resolution{
			ModelID: override,
			Pricing: cfg.Pricing[override],
		}, nil
	}

	tier, ok := cfg.Tasks[task]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", config.ErrTaskNotFound, task)
	}

	tier = shiftTier(tier, cfg.TierShift)

	model, ok := cfg.Tiers[tier]
	if !ok || model == "" {
		return Resolution{}, fmt.Errorf("%w: %q (task %q)", config.ErrTierNotFound, tier, task)
	}

	return Resolution{
		ModelID: model,
		Tier:    tier,
		Pricing: cfg.Pricing[model],
	}, nil
}

// Price computes the USD cost of one call against a model's pricing table.
// Unknown models price at zero.
func (r *Router) Price(modelID string, promptTokens, completionTokens int) float64 {
	pricing := r.cfg.Load().Pricing[modelID]
	return pricing.PromptPerMTok*float64(promptTokens)/1e6 +
		pricing.CompletionPerMTok*float64(completionTokens)/1e6
}

// shiftTier moves a tier along the tier order, clamping at the edges.
// Positive shifts move toward cheaper tiers.
func shiftTier(tier config.Tier, shift int) config.Tier {
	if shift == 0 {
		return tier
	}
	idx := 0
	for i, t := range config.TierOrder {
		if t == tier {
			idx = i
			break
		}
	}
	idx += shift
	if idx < 0 {
		idx = 0
	}
	if idx >= len(config.TierOrder) {
		idx = len(config.TierOrder) - 1
	}
	return config.TierOrder[idx]
}
