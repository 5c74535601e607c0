package tutor

// Config tunes the orchestrator. Zero values are replaced with defaults.
type Config struct {
	// MaxInputLen is the longest user input accepted, in runes.
	MaxInputLen int

	// MaxHistoryTurns caps how many prior turns are replayed to the
	// provider in chat mode. Older turns stay in the session history
	// but are not sent.
	MaxHistoryTurns int

	// MaxTokens is the response token budget per request.
	MaxTokens int

	// Temperature for generation.
	Temperature float64
}

// DefaultConfig returns the orchestrator defaults.
func DefaultConfig() Config {
	return Config{
		MaxInputLen:     4000,
		MaxHistoryTurns: 20,
		MaxTokens:       1024,
		Temperature:     0.7,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxInputLen <= 0 {
		c.MaxInputLen = d.MaxInputLen
	}
	if c.MaxHistoryTurns <= 0 {
		c.MaxHistoryTurns = d.MaxHistoryTurns
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
	return c
}
