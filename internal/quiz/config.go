package quiz

// Config holds tunables for LLM quiz generation.
type Config struct {
	// MaxTokens for the generation response.
	MaxTokens int

	// Temperature for generation. Quiz questions want some variety.
	Temperature float64

	// MaxPriorQuestions caps how many already-asked questions are
	// listed in the prompt for dedup.
	MaxPriorQuestions int
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         800,
		Temperature:       0.8,
		MaxPriorQuestions: 15,
	}
}
