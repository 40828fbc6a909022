// Package processor contains the core pipeline for enriching kosha slokas.
// It loads the input document, drives the sequential per-sloka model calls,
// applies the verify-flag normalization, and writes the enriched output
// once at the end. This package serves as the main coordinator between all
// other components.
package processor
