// Package storage archives finished audit reports to S3-compatible
// object storage.
//
// Archival is optional and best-effort: the report on the local output
// directory is the system of record, and an archive failure is logged
// as a warning without failing the run.
package storage
