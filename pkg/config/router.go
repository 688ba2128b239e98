package config

// Tier is a named cost/quality bucket.
type Tier string

// Tiers, from most to least capable.
const (
	TierPrecision Tier = "precision"
	TierBalanced  Tier = "balanced"
	TierRapid     Tier = "rapid"
)

// TierOrder lists tiers from most to least capable; the global tier shift
// walks this slice.
var TierOrder = []Tier{TierPrecision, TierBalanced, TierRapid}

// ValidTier reports whether t is a known tier.
func ValidTier(t Tier) bool {
	for _, known := range TierOrder {
		if t == known {
			return true
		}
	}
	return false
}

// ModelPricing is USD per million tokens.
type ModelPricing struct {
	PromptPerMTok     float64 `yaml:"prompt_per_mtok"`
	CompletionPerMTok float64 `yaml:"completion_per_mtok"`
}

// RouterConfig maps logical tasks to concrete model ids via tiers.
type RouterConfig struct {
	// Tiers maps each tier to a concrete model id.
	Tiers map[Tier]string `yaml:"tiers"`

	// Tasks maps each logical task name (mood, topics, ...) to a tier.
	Tasks map[string]Tier `yaml:"tasks"`

	// TierShift globally moves every task up (negative) or down (positive)
	// the tier order. Used for cost experiments; clamped at the edges.
	TierShift int `yaml:"tier_shift"`

	// Pricing maps model ids to per-token pricing.
	Pricing map[string]ModelPricing `yaml:"pricing"`
}
