package kosha

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sloka pairs a verse with its enrichment result.
type Sloka struct {
	Text   string
	Result ParsedResult
}

// Document is an ordered verse-to-metadata mapping. Order follows the input
// file and verse text is kept verbatim, including Devanagari.
type Document struct {
	Slokas []Sloka
}

// Load reads the mapping keys of a sloka YAML file in document order. Any
// metadata values already present are ignored; enrichment overwrites them.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse input YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return &Document{}, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("input YAML is not a mapping of slokas")
	}

	doc := &Document{}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		doc.Slokas = append(doc.Slokas, Sloka{Text: mapping.Content[i].Value})
	}
	return doc, nil
}

// Save writes the enriched mapping to path, creating parent directories as
// needed. Keys are emitted in document order with their original text.
func (d *Document) Save(path string) error {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, sloka := range d.Slokas {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: sloka.Text}
		value := &yaml.Node{}
		if err := value.Encode(sloka.Result); err != nil {
			return fmt.Errorf("failed to encode entries for %q: %w", sloka.Text, err)
		}
		mapping.Content = append(mapping.Content, key, value)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return fmt.Errorf("failed to write output YAML: %w", err)
	}
	return enc.Close()
}
