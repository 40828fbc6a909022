package enrich

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator calls the OpenAI chat completion API with the same prompt
// and token contract as the Vertex provider.
type OpenAIGenerator struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIGenerator creates an OpenAI generator.
func NewOpenAIGenerator(config *Config) (*OpenAIGenerator, error) {
	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIGenerator{
		client:    openai.NewClient(config.OpenAIKey),
		model:     model,
		maxTokens: config.MaxTokens,
	}, nil
}

// Generate sends the prompt and returns the raw text response.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   g.maxTokens,
		Temperature: 0.3,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

// Name returns the provider name.
func (g *OpenAIGenerator) Name() string {
	return "openai"
}
