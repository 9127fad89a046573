// Package ingest reads the reconciliation input spreadsheet.
//
// It validates the header row against the configured column schema and
// produces immutable, typed transaction rows for the engine. A header
// mismatch is the one fatal error this package raises; everything after
// the header is handed to the engine as-is.
package ingest
