package kosha

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDictionaryEntryFieldOrder(t *testing.T) {
	entry := DictionaryEntry{
		Head:   "सर्प",
		Verify: false,
		Gender: Masculine,
		Qual:   "तेषां",
		Syns: []SynonymEntry{
			{Stem: "नाग", Gender: Masculine},
			{Stem: "सर्प", Gender: Masculine},
		},
	}

	data, err := yaml.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)

	// head must come first, verify directly after it
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("Expected multi-line output, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "head:") {
		t.Errorf("Expected first field to be head, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "verify:") {
		t.Errorf("Expected second field to be verify, got %q", lines[1])
	}

	order := []string{"head:", "verify:", "gender:", "qual:", "syns:"}
	last := -1
	for _, field := range order {
		idx := strings.Index(out, field)
		if idx < 0 {
			t.Fatalf("Field %q missing from output:\n%s", field, out)
		}
		if idx < last {
			t.Errorf("Field %q out of order in output:\n%s", field, out)
		}
		last = idx
	}
}

func TestDictionaryEntryWithoutHead(t *testing.T) {
	entry := DictionaryEntry{
		Gender: Feminine,
		Syns:   []SynonymEntry{{Stem: "पुरी", Gender: Feminine}},
	}

	data, err := yaml.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)

	if strings.Contains(out, "verify") {
		t.Errorf("Entry without head must not carry a verify flag:\n%s", out)
	}
	if strings.Contains(out, "head") {
		t.Errorf("Entry without head must not emit a head field:\n%s", out)
	}
	if !strings.Contains(out, "gender: f") {
		t.Errorf("Expected gender to be preserved:\n%s", out)
	}
}

func TestDictionaryEntryDevanagariLiteral(t *testing.T) {
	entry := DictionaryEntry{Head: "सर्प", Gender: Masculine}

	data, err := yaml.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if !strings.Contains(string(data), "सर्प") {
		t.Errorf("Expected Devanagari to be emitted literally, got %q", string(data))
	}
}

func TestNormalize(t *testing.T) {
	result := ParsedResult{
		Entries: []DictionaryEntry{
			{Head: "सर्प", Verify: true, Gender: Masculine},
			{Gender: Feminine, Verify: true}, // no head, left untouched
		},
	}

	result.Normalize()

	if result.Entries[0].Verify != false {
		t.Error("Expected verify to be reset to false on headed entry")
	}
	if result.Entries[1].Verify != true {
		t.Error("Expected entry without head to be left untouched")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		result  ParsedResult
		wantErr bool
	}{
		{
			name:   "empty result",
			result: EmptyResult(),
		},
		{
			name: "valid genders",
			result: ParsedResult{Entries: []DictionaryEntry{
				{Head: "सर्प", Gender: Masculine, Syns: []SynonymEntry{{Stem: "नाग", Gender: Masculine}}},
				{Head: "भोगवती", Gender: Feminine, Syns: []SynonymEntry{{Stem: "पुरी", Gender: Feminine}}},
			}},
		},
		{
			name: "invalid entry gender",
			result: ParsedResult{Entries: []DictionaryEntry{
				{Head: "सर्प", Gender: "masculine"},
			}},
			wantErr: true,
		},
		{
			name: "missing entry gender",
			result: ParsedResult{Entries: []DictionaryEntry{
				{Head: "सर्प"},
			}},
			wantErr: true,
		},
		{
			name: "invalid synonym gender",
			result: ParsedResult{Entries: []DictionaryEntry{
				{Head: "सर्प", Gender: Masculine, Syns: []SynonymEntry{{Stem: "नाग", Gender: "x"}}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenderValid(t *testing.T) {
	for _, g := range []Gender{Masculine, Feminine, Neuter} {
		if !g.Valid() {
			t.Errorf("Expected %q to be valid", g)
		}
	}
	for _, g := range []Gender{"", "x", "mf", "M"} {
		if g.Valid() {
			t.Errorf("Expected %q to be invalid", g)
		}
	}
}

func TestEmptyResultMarshal(t *testing.T) {
	data, err := yaml.Marshal(EmptyResult())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if strings.TrimSpace(string(data)) != "entries: []" {
		t.Errorf("Expected 'entries: []', got %q", string(data))
	}
}
