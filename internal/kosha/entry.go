package kosha

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Gender is the grammatical gender code used throughout kosha metadata.
type Gender string

// The three gender codes the model is instructed to use.
const (
	Masculine Gender = "m"
	Feminine  Gender = "f"
	Neuter    Gender = "n"
)

// Valid reports whether g is one of the recognized gender codes.
func (g Gender) Valid() bool {
	switch g {
	case Masculine, Feminine, Neuter:
		return true
	}
	return false
}

// SynonymEntry is one word of a synonym group in its pratipadika
// (uninflected stem) form.
type SynonymEntry struct {
	Stem   string `json:"prati" yaml:"prati"`
	Gender Gender `json:"gender" yaml:"gender"`
}

// DictionaryEntry is one synonym group extracted from a sloka. Verify is a
// proofreading flag inserted after enrichment; it starts false and is only
// flipped by a human reviewer.
type DictionaryEntry struct {
	Head   string         `json:"head" yaml:"head"`
	Verify bool           `json:"verify" yaml:"verify"`
	Gender Gender         `json:"gender" yaml:"gender"`
	Qual   string         `json:"qual,omitempty" yaml:"qual,omitempty"`
	Syns   []SynonymEntry `json:"syns" yaml:"syns"`
}

// MarshalYAML pins the serialized field order: head first, verify directly
// after it. Entries without a headword carry no verify flag and keep their
// remaining fields unchanged.
func (e DictionaryEntry) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value interface{}) error {
		k := &yaml.Node{}
		if err := k.Encode(key); err != nil {
			return err
		}
		v := &yaml.Node{}
		if err := v.Encode(value); err != nil {
			return err
		}
		node.Content = append(node.Content, k, v)
		return nil
	}

	if e.Head != "" {
		if err := add("head", e.Head); err != nil {
			return nil, err
		}
		if err := add("verify", e.Verify); err != nil {
			return nil, err
		}
	}
	if e.Gender != "" {
		if err := add("gender", string(e.Gender)); err != nil {
			return nil, err
		}
	}
	if e.Qual != "" {
		if err := add("qual", e.Qual); err != nil {
			return nil, err
		}
	}
	if e.Syns != nil {
		if err := add("syns", e.Syns); err != nil {
			return nil, err
		}
	}

	return node, nil
}

// ParsedResult is the decoded model output for a single sloka.
type ParsedResult struct {
	Entries []DictionaryEntry `json:"entries" yaml:"entries"`
}

// EmptyResult returns the result recorded for slokas the model could not
// parse.
func EmptyResult() ParsedResult {
	return ParsedResult{Entries: []DictionaryEntry{}}
}

// Normalize forces the verify flag to false on every entry that has a
// headword. Entries without a headword are left untouched.
func (r *ParsedResult) Normalize() {
	for i := range r.Entries {
		if r.Entries[i].Head != "" {
			r.Entries[i].Verify = false
		}
	}
}

// Validate checks every gender code in the result. Model output is
// untrusted input; anything outside m/f/n is rejected here rather than
// written to the output file.
func (r ParsedResult) Validate() error {
	for i, entry := range r.Entries {
		if !entry.Gender.Valid() {
			return fmt.Errorf("entry %d: invalid gender %q", i, entry.Gender)
		}
		for j, syn := range entry.Syns {
			if !syn.Gender.Valid() {
				return fmt.Errorf("entry %d, synonym %d (%s): invalid gender %q", i, j, syn.Stem, syn.Gender)
			}
		}
	}
	return nil
}
