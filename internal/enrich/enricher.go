package enrich

import (
	"context"

	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/kosha"
)

// Enricher runs the per-sloka enrichment: prompt construction, one model
// call, response parsing.
type Enricher struct {
	gen Generator
}

// NewEnricher creates an enricher around the given model provider.
func NewEnricher(gen Generator) *Enricher {
	return &Enricher{gen: gen}
}

// ParseSloka asks the model to extract dictionary entries from one sloka.
// Network and decode failures are both returned to the caller, which decides
// whether to abort or record the sloka with empty entries.
func (e *Enricher) ParseSloka(ctx context.Context, sloka string) (kosha.ParsedResult, error) {
	resp, err := e.gen.Generate(ctx, BuildPrompt(sloka))
	if err != nil {
		return kosha.EmptyResult(), err
	}
	return ParseResponse(resp)
}
