package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/cli"
	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/enrich"
	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/export"
	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/kosha"
)

// Processor drives the sequential enrichment pipeline.
type Processor struct {
	flags *cli.Flags
}

// NewProcessor creates a new pipeline processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// Run loads the input document, enriches every sloka in order and writes
// the output file once at the end. Per-sloka failures are recorded with
// empty entries and do not abort the run; setup failures do.
func (p *Processor) Run(inputPath string) error {
	fmt.Printf("Reading YAML from: %s\n", inputPath)
	doc, err := kosha.Load(inputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d slokas to enrich\n", len(doc.Slokas))

	ctx := context.Background()

	config := &enrich.Config{
		Provider:  p.flags.Provider,
		Model:     p.flags.Model,
		MaxTokens: p.flags.MaxTokens,
		ProjectID: p.flags.ProjectID,
		Region:    p.flags.Region,
		OpenAIKey: cli.GetOpenAIKey(),
	}

	fmt.Printf("Initializing %s client (region: %s)...\n", config.Provider, config.Region)
	gen, err := enrich.NewGenerator(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to initialize model client: %w", err)
	}

	return p.runWith(ctx, doc, enrich.NewEnricher(gen))
}

// runWith enriches the loaded document with an already constructed
// enricher. Split out so tests can inject a mock provider.
func (p *Processor) runWith(ctx context.Context, doc *kosha.Document, enricher *enrich.Enricher) error {
	failedCount := 0

	for i := range doc.Slokas {
		fmt.Printf("Parsing sloka %d/%d...\n", i+1, len(doc.Slokas))

		result, err := enricher.ParseSloka(ctx, doc.Slokas[i].Text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing sloka %d: %v\n", i+1, err)
			result = kosha.EmptyResult()
			failedCount++
			// Continue with next sloka
		}

		result.Normalize()
		doc.Slokas[i].Result = result
	}

	fmt.Printf("\nCompleted parsing of %d slokas\n", len(doc.Slokas))

	fmt.Printf("\nWriting enriched YAML to: %s\n", p.flags.OutputPath)
	if err := doc.Save(p.flags.OutputPath); err != nil {
		return err
	}

	// Optional SQLite export for ad-hoc querying
	if p.flags.DBPath != "" {
		fmt.Printf("Exporting entries to SQLite database: %s\n", p.flags.DBPath)
		if err := export.WriteDatabase(p.flags.DBPath, doc); err != nil {
			return fmt.Errorf("failed to export database: %w", err)
		}
	}

	// Print summary
	fmt.Printf("\n=== Enrichment Summary ===\n")
	fmt.Printf("Total slokas: %d\n", len(doc.Slokas))
	fmt.Printf("Parsed: %d\n", len(doc.Slokas)-failedCount)
	if failedCount > 0 {
		fmt.Printf("Failed (recorded with empty entries): %d\n", failedCount)
	}
	fmt.Printf("==========================\n")

	fmt.Printf("\nSuccessfully enriched and saved to: %s\n", p.flags.OutputPath)
	return nil
}
