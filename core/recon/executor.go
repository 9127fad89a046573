package recon

import "gorm.io/gorm"

// execStatement runs one parameterized statement on tx and returns the
// affected row count and an error message. Execution failures are
// converted to a message here so the engine can treat "zero rows" and
// "error" uniformly as lane-level results without aborting the batch.
func execStatement(tx *gorm.DB, stmt string, params []any) (int64, string) {
	res := tx.Exec(stmt, params...)
	if res.Error != nil {
		return 0, res.Error.Error()
	}
	return res.RowsAffected, ""
}
