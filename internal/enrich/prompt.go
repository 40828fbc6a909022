package enrich

import "fmt"

const promptTemplate = `You are a Sanskrit kosha (synonym dictionary) expert. Parse this sloka from a classical Sanskrit kosha and extract dictionary entries.

Sloka: %s

Instructions:
1. Identify groups of synonyms (words with the same meaning)
2. For each group, determine:
   - The headword (main word for that concept)
   - All words in the group with their prātipadika (stem/root form)
   - The gender: m (masculine/पुं), f (feminine/स्त्री), n (neuter/नपुं)
3. Note any qualifiers or contextual information

Rules:
- Words ending in ः are typically masculine (m)
- Words ending in आ/ई are typically feminine (f)
- Words ending in म्‌ are typically neuter (n)
- Look for sandhi and vibhakti to identify word boundaries
- Group words that are synonyms (have the same meaning)
- Use ONLY these gender codes: m, f, n

Return ONLY valid JSON in this exact format (no markdown, no explanation):
{
  "entries": [
    {
      "head": "prātipadika_of_headword",
      "gender": "m/f/n",
      "syns": [
        {"prati": "word1", "gender": "m/f/n"},
        {"prati": "word2", "gender": "m/f/n"}
      ]
    }
  ]
}

Example for: नागा बहुफणाः सर्पास्तेषां भोगवती पुरी॥
{
  "entries": [
    {
      "head": "सर्प",
      "gender": "m",
      "syns": [
        {"prati": "नाग", "gender": "m"},
        {"prati": "बहुफण", "gender": "m"},
        {"prati": "सर्प", "gender": "m"}
      ]
    },
    {
      "head": "भोगवती",
      "gender": "f",
      "qual": "तेषां",
      "syns": [
        {"prati": "पुरी", "gender": "f"}
      ]
    }
  ]
}

Now parse the given sloka and return JSON:`

// BuildPrompt renders the parsing instructions for one sloka. Same sloka,
// same prompt.
func BuildPrompt(sloka string) string {
	return fmt.Sprintf(promptTemplate, sloka)
}
