package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/testutil"
)

func TestParseSloka(t *testing.T) {
	gen := &testutil.MockGenerator{Default: testutil.SampleEntryResponse}
	enricher := NewEnricher(gen)

	result, err := enricher.ParseSloka(context.Background(), "नागा बहुफणाः सर्पाः")
	if err != nil {
		t.Fatalf("ParseSloka failed: %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].Head != "सर्प" {
		t.Errorf("Expected head सर्प, got %q", result.Entries[0].Head)
	}

	if len(gen.Calls) != 1 {
		t.Fatalf("Expected exactly one model call, got %d", len(gen.Calls))
	}
}

func TestParseSlokaSendsPrompt(t *testing.T) {
	gen := &testutil.MockGenerator{}
	enricher := NewEnricher(gen)

	sloka := "तेषां भोगवती पुरी"
	if _, err := enricher.ParseSloka(context.Background(), sloka); err != nil {
		t.Fatalf("ParseSloka failed: %v", err)
	}

	if gen.Calls[0] != BuildPrompt(sloka) {
		t.Error("Expected the built prompt to be sent verbatim")
	}
}

func TestParseSlokaGenerateError(t *testing.T) {
	netErr := errors.New("connection refused")
	gen := &testutil.MockGenerator{Errors: map[string]error{"सर्पाः": netErr}}
	enricher := NewEnricher(gen)

	result, err := enricher.ParseSloka(context.Background(), "नागा बहुफणाः सर्पाः")
	if !errors.Is(err, netErr) {
		t.Errorf("Expected the provider error to propagate, got %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("Expected empty entries on failure, got %d", len(result.Entries))
	}
}

func TestParseSlokaGarbageResponse(t *testing.T) {
	gen := &testutil.MockGenerator{Default: "not json at all"}
	enricher := NewEnricher(gen)

	result, err := enricher.ParseSloka(context.Background(), "नागा बहुफणाः सर्पाः")
	if !errors.Is(err, ErrBadResponse) {
		t.Errorf("Expected ErrBadResponse, got %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("Expected empty entries, got %d", len(result.Entries))
	}
}
