package review

// Config holds tunables for review generation.
type Config struct {
	// MaxTokens for the review response.
	MaxTokens int

	// Temperature for generation. Reviews want consistency over variety.
	Temperature float64

	// MaxCodeLen is the longest submission accepted, in runes.
	MaxCodeLen int
}

// DefaultConfig returns the review defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.3,
		MaxCodeLen:  8000,
	}
}
