// Package jobconfig loads the per-job YAML configuration: the SQL
// statement templates keyed by name, the expected input column schema,
// and database session settings.
//
// The statements are opaque strings with positional placeholders. The
// engine never builds SQL of its own, so a job can retarget tables or
// predicates through configuration alone.
package jobconfig
