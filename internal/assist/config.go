package assist

// Config tunes assist generation.
type Config struct {
	// MaxTokens caps the response size. Default: 1024.
	MaxTokens int

	// Temperature for generation. Examples benefit from some variety.
	Temperature float64
}

// DefaultConfig returns the standard assist configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}
