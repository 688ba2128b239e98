package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
)

func testRouter(shift int) *Router {
	cfg := config.DefaultRouterConfig()
	cfg.TierShift = shift
	return New(cfg)
}

func TestResolveTaskToTierModel(t *testing.T) {
	r := testRouter(0)

	res, err := r.Resolve("deep", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierPrecision, res.Tier)
	assert.Equal(t, "gpt-4o", res.ModelID)
	assert.Equal(t, 2.50, res.Pricing.PromptPerMTok)

	res, err = r.Resolve("action_summary", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierRapid, res.Tier)
}

func TestResolveUnknownTaskIsConfigError(t *testing.T) {
	r := testRouter(0)
	_, err := r.Resolve("sentiment", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrTaskNotFound)
}

func TestResolveOverrideBypassesLookup(t *testing.T) {
	r := testRouter(0)
	res, err := r.Resolve("sentiment", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", res.ModelID)
	assert.Equal(t, 0.15, res.Pricing.PromptPerMTok)
}

func TestTierShiftDownClampsAtRapid(t *testing.T) {
	r := testRouter(1)

	res, err := r.Resolve("deep", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierBalanced, res.Tier)

	// action_summary is already rapid; shifting down clamps.
	res, err = r.Resolve("action_summary", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierRapid, res.Tier)
}

func TestTierShiftUpClampsAtPrecision(t *testing.T) {
	r := testRouter(-2)

	res, err := r.Resolve("mood", "")
	require.NoError(t, err)
	assert.Equal(t, config.TierPrecision, res.Tier)
}

func TestPriceSumsPromptAndCompletion(t *testing.T) {
	r := testRouter(0)

	// gpt-4o: 2.50 prompt + 10.00 completion per MTok.
	cost := r.Price("gpt-4o", 1_000_000, 100_000)
	assert.InDelta(t, 2.50+1.00, cost, 1e-9)

	assert.Zero(t, r.Price("unknown-model", 1000, 1000))
}

func TestReloadSwapsTable(t *testing.T) {
	r := testRouter(0)

	cfg := config.DefaultRouterConfig()
	cfg.Tiers[config.TierPrecision] = "gpt-5"
	cfg.Pricing["gpt-5"] = config.ModelPricing{PromptPerMTok: 5, CompletionPerMTok: 20}
	r.Reload(cfg)

	res, err := r.Resolve("deep", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", res.ModelID)
}
