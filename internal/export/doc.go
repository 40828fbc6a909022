// Package export writes enriched kosha entries to a SQLite database so the
// results can be queried outside the YAML workflow.
package export
