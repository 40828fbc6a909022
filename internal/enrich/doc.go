// Package enrich turns a sloka into structured dictionary entries by way of
// a hosted text-generation model. It builds the parsing prompt, abstracts
// the model behind a provider interface (Vertex AI or OpenAI), and decodes
// the JSON response at an untrusted-input boundary.
package enrich
