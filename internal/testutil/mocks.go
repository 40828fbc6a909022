package testutil

import (
	"context"
	"strings"
)

// MockGenerator mocks a model provider for enrichment tests. Responses and
// Errors are keyed by a substring of the prompt, normally the sloka text.
type MockGenerator struct {
	Responses map[string]string
	Errors    map[string]error
	Default   string
	Calls     []string
}

// Generate returns the canned response whose key occurs in the prompt
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)

	for key, err := range m.Errors {
		if strings.Contains(prompt, key) {
			return "", err
		}
	}

	for key, resp := range m.Responses {
		if strings.Contains(prompt, key) {
			return resp, nil
		}
	}

	if m.Default != "" {
		return m.Default, nil
	}

	// Default response
	return `{"entries": []}`, nil
}

// Name returns the provider name
func (m *MockGenerator) Name() string {
	return "mock"
}

// SampleEntryResponse is a well-formed model response for the worked example
// sloka, handy as a mock default.
const SampleEntryResponse = `{
  "entries": [
    {
      "head": "सर्प",
      "gender": "m",
      "syns": [
        {"prati": "नाग", "gender": "m"},
        {"prati": "बहुफण", "gender": "m"},
        {"prati": "सर्प", "gender": "m"}
      ]
    }
  ]
}`
