package jobconfig

import (
	"fmt"
	"os"

	"p2p-recon/core/recon"

	"gopkg.in/yaml.v3"
)

// Statement template keys that must be present in the job configuration.
const (
	QueryUpdatePayment       = "update_payment"
	QueryUpdateDetailRecord  = "update_detail_record"
	QueryInsertRtxnReconDate = "insert_rtxn_recon_date"
	QueryUpdateMCRecon       = "update_mc_recon"
	QueryUpdateVisaRecon     = "update_visa_recon"
)

var requiredQueries = []string{
	QueryUpdatePayment,
	QueryUpdateDetailRecord,
	QueryInsertRtxnReconDate,
	QueryUpdateMCRecon,
	QueryUpdateVisaRecon,
}

// JobConfig is the per-job configuration file: the SQL statement
// templates, the expected input column schema, and database session
// settings.
type JobConfig struct {
	// ValidColumnHeaders is the ordered list of expected spreadsheet
	// column headers. Ingestion validates the header row against it
	// positionally before any data row is processed.
	ValidColumnHeaders []string `yaml:"valid_column_headers"`

	// SQLQueries maps statement keys to parameterized SQL templates.
	SQLQueries map[string]string `yaml:"sql_queries"`

	// DatabaseConfig holds per-store session settings.
	DatabaseConfig DatabaseConfig `yaml:"database_config"`
}

// DatabaseConfig controls the autocommit mode of the two stores. Both
// default to false; the engine owns commit and rollback per lane.
type DatabaseConfig struct {
	P2PAutocommit bool `yaml:"p2p_autocommit"`
	DNAAutocommit bool `yaml:"dna_autocommit"`
}

// Load reads and validates a job configuration YAML file.
func Load(path string) (*JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job config: %w", err)
	}

	var cfg JobConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse job config: %w", err)
	}

	if len(cfg.ValidColumnHeaders) == 0 {
		return nil, fmt.Errorf("job config has no valid_column_headers")
	}

	for _, key := range requiredQueries {
		if cfg.SQLQueries[key] == "" {
			return nil, fmt.Errorf("job config is missing sql query %q", key)
		}
	}

	return &cfg, nil
}

// Statements returns the templates in the form the engine consumes.
func (c *JobConfig) Statements() recon.Statements {
	return recon.Statements{
		UpdatePayment:       c.SQLQueries[QueryUpdatePayment],
		UpdateDetailRecord:  c.SQLQueries[QueryUpdateDetailRecord],
		InsertRtxnReconDate: c.SQLQueries[QueryInsertRtxnReconDate],
		UpdateMCRecon:       c.SQLQueries[QueryUpdateMCRecon],
		UpdateVisaRecon:     c.SQLQueries[QueryUpdateVisaRecon],
	}
}
