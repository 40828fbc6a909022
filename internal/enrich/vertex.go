package enrich

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultVertexModel is used when no model is configured for the vertex
// provider.
const DefaultVertexModel = "gemini-2.5-flash"

// VertexGenerator calls a text-generation model hosted on Vertex AI, bound
// to one project, region and model for its whole lifetime.
type VertexGenerator struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// NewVertexGenerator creates a Vertex AI generator. Authentication comes
// from the environment (application default credentials).
func NewVertexGenerator(ctx context.Context, config *Config) (*VertexGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  config.ProjectID,
		Location: config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Vertex AI client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = DefaultVertexModel
	}

	return &VertexGenerator{
		client:    client,
		model:     model,
		maxTokens: int32(config.MaxTokens),
	}, nil
}

// Generate sends the prompt and returns the raw text response.
func (g *VertexGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("Vertex AI error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from Vertex AI")
	}
	return text, nil
}

// Name returns the provider name.
func (g *VertexGenerator) Name() string {
	return "vertex"
}
