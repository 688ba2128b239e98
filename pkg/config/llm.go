package config

// LLMConfig holds connection settings for the OpenAI-compatible LLM API.
type LLMConfig struct {
	// APIKeyEnv names the environment variable carrying the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL optionally points at a compatible gateway instead of the
	// default endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxTokens is the default completion cap per call.
	MaxTokens int `yaml:"max_tokens"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKeyEnv: "OPENAI_API_KEY",
		MaxTokens: 2048,
	}
}
