// Package kosha defines the data model for Sanskrit synonym-dictionary
// verses and their lexical metadata, and handles ordered YAML document I/O
// with verbatim Devanagari round-tripping.
package kosha
