package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "therabridge.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Router.Tiers[TierPrecision])
	assert.Equal(t, TierBalanced, cfg.Router.Tasks["mood"])
	assert.Equal(t, 3, cfg.Analysis.Retry.MaxAttempts)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
}

func TestInitializeMergesUserOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
router:
  tier_shift: 1
  tiers:
    precision: gpt-4o
    balanced: gpt-4o-mini
    rapid: gpt-4.1-nano
queue:
  worker_count: 2
analysis:
  attempt_timeout: 45s
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Router.TierShift)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	// Unset fields keep defaults.
	assert.Equal(t, 8, cfg.Queue.MaxConcurrentSessions)
	assert.Equal(t, 45*time.Second, cfg.Analysis.AttemptTimeout)
	assert.Equal(t, 120*time.Second, cfg.Analysis.DeepTimeout)
}

func TestInitializeExpandsEnv(t *testing.T) {
	t.Setenv("TEST_LLM_BASE", "http://gateway.local/v1")
	dir := writeConfig(t, `
llm:
  base_url: ${TEST_LLM_BASE}
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://gateway.local/v1", cfg.LLM.BaseURL)
}

func TestInitializeRejectsUnknownTaskTier(t *testing.T) {
	dir := writeConfig(t, `
router:
  tasks:
    mood: turbo
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitializeRejectsMissingPricing(t *testing.T) {
	dir := writeConfig(t, `
router:
  tiers:
    rapid: some-unpriced-model
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPricingNotFound)
}

func TestInitializeRejectsInvalidRetry(t *testing.T) {
	dir := writeConfig(t, `
analysis:
  retry:
    max_attempts: 3
    schema_max_attempts: 5
    initial_backoff: 1s
    backoff_multiplier: 2
    max_backoff: 30s
    jitter_fraction: 0.2
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "router: [not: a map")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestExpandEnvMissingVarBecomesEmpty(t *testing.T) {
	out := ExpandEnv([]byte("key: ${THERABRIDGE_DEFINITELY_UNSET}"))
	assert.Equal(t, "key: ", string(out))
}
