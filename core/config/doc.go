// Package config provides environment configuration for the reconcile job.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - PaymentsDB: MySQL connection for the payments store
//   - LedgerDB: MySQL connection for the ledger store
//   - Storage: S3/MinIO credentials for report archival
//   - Log: Logging level and format
//
// Connection credentials live here; everything job-specific (statement
// templates, column schema) comes from the job configuration file
// handled by the jobconfig package.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db, err := database.Connect(cfg.PaymentsDB)
package config
