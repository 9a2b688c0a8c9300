package llm

// DefaultModel is the model used when no override is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds generation settings for the scoring-service client.
type Config struct {
	Model string
	// Temperature controls output variance. Kept low so repeated calls on the
	// same resume converge on the same assessment.
	Temperature float32
	// MaxOutputTokens bounds the response size.
	MaxOutputTokens int32
}

// DefaultConfig returns the default generation settings.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     0.1,
		MaxOutputTokens: 8192,
	}
}

// WithModel returns a copy of the config with a different model.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}
