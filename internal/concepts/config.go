package concepts

// Config holds tunables for lesson generation.
type Config struct {
	// MaxTokens for the lesson response.
	MaxTokens int

	// Temperature for generation.
	Temperature float64
}

// DefaultConfig returns the lesson defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.5,
	}
}
