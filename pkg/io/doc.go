// Package io reads and writes the files the markup tools work with.
//
// # Markup Documents
//
// [ReadMarkup] and [ImportMarkup] parse a whole document and reject trailing
// input that the parser left unconsumed. [WriteMarkup] writes the canonical
// notation produced by markup.Format.
//
// # Rosters
//
// A roster assigns names and colors to player indices. It is stored as TOML:
//
//	[[player]]
//	name = "Ann"
//	color = "red"            # named color, "#rrggbb" or "rgb(r,g,b)"
//
//	[[player]]
//	name = "Bob"             # color omitted: default palette
//
// [ImportRoster] and [ReadRoster] decode it; player names are validated with
// errors.ValidatePlayerName. [WriteRoster] encodes a roster back.
//
// # Artifacts
//
// [ExportArtifact] writes rendered output atomically, so a reader never
// observes a partially written file.
package io
