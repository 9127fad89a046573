// Package logger provides a structured logging facility based on Zap.
//
// # Run Correlation
//
// Each batch run gets a unique run identifier. The WithRunID helper
// attaches it to the logger so all lines emitted by a single job
// invocation can be correlated when several runs land in the same
// aggregated log stream.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Job started")
package logger
