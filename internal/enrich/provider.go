package enrich

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
)

// Generator produces a raw model response for a prompt.
type Generator interface {
	// Generate sends the prompt and returns the raw text response.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name.
	Name() string
}

// Config holds common configuration for model providers.
type Config struct {
	Provider  string // "vertex" or "openai"
	Model     string // empty means the provider default
	MaxTokens int

	// Vertex AI settings
	ProjectID string
	Region    string

	// OpenAI settings
	OpenAIKey string
}

// DefaultConfig returns default provider configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:  "vertex",
		MaxTokens: 2048,
		Region:    "us-east5",
	}
}

// NewGenerator creates the appropriate model provider based on configuration
// and wraps it in a circuit breaker. The returned generator is constructed
// once per run and reused for every sloka.
func NewGenerator(ctx context.Context, config *Config) (Generator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var gen Generator
	var err error
	switch config.Provider {
	case "vertex":
		if config.ProjectID == "" {
			return nil, fmt.Errorf("Google Cloud project ID is required for the vertex provider")
		}
		gen, err = NewVertexGenerator(ctx, config)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required for the openai provider")
		}
		gen, err = NewOpenAIGenerator(config)
	default:
		return nil, fmt.Errorf("unknown model provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewBreakerGenerator(gen), nil
}

// BreakerGenerator wraps a Generator with a circuit breaker so that a dead
// endpoint fails fast for the remaining slokas instead of paying full
// request latency on each one. It never retries a call.
type BreakerGenerator struct {
	gen Generator
	cb  *gobreaker.CircuitBreaker
}

// NewBreakerGenerator wraps gen with a circuit breaker.
func NewBreakerGenerator(gen Generator) *BreakerGenerator {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: gen.Name(),
	})
	return &BreakerGenerator{gen: gen, cb: cb}
}

// Generate forwards to the wrapped provider through the breaker.
func (b *BreakerGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := b.cb.Execute(func() (interface{}, error) {
		return b.gen.Generate(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return resp.(string), nil
}

// Name returns the wrapped provider name.
func (b *BreakerGenerator) Name() string {
	return b.gen.Name()
}
