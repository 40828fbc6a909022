package enrich

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/kosha"
)

// ErrBadResponse marks a model response that could not be decoded into
// dictionary entries. It is distinct from a model legitimately returning no
// entries.
var ErrBadResponse = errors.New("unparseable model response")

const responsePreviewLen = 200

// StripFence removes a surrounding markdown code fence from a model
// response. The line-based strip also consumes a json-tagged opening fence;
// the prefix trim after it only fires on degenerate single-line wrappers and
// is kept for parity with responses seen in the wild.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		lines := strings.Split(s, "\n")
		if len(lines) > 2 {
			s = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseResponse decodes a raw model response into dictionary entries. The
// response is untrusted input: decode failures and invalid gender codes both
// return an error wrapping ErrBadResponse, with a bounded preview of the
// offending text for the logs.
func ParseResponse(raw string) (kosha.ParsedResult, error) {
	text := StripFence(raw)

	var result kosha.ParsedResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return kosha.EmptyResult(), fmt.Errorf("%w: %v (response was: %s)", ErrBadResponse, err, preview(text))
	}
	if err := result.Validate(); err != nil {
		return kosha.EmptyResult(), fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	if result.Entries == nil {
		result.Entries = []kosha.DictionaryEntry{}
	}
	return result, nil
}

func preview(s string) string {
	if len(s) <= responsePreviewLen {
		return s
	}
	return s[:responsePreviewLen] + "..."
}
