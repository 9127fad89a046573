package recon

import (
	"strings"
	"time"
)

// dateLayout is the MM/DD/YYYY form written into reconciled records.
const dateLayout = "01/02/2006"

// EffectiveDate computes the single reconcile date in effect for a run.
// An override supplied as MM-DD-YYYY is normalized to MM/DD/YYYY;
// otherwise the run date is used.
func EffectiveDate(override string, now time.Time) string {
	if override != "" {
		return strings.ReplaceAll(override, "-", "/")
	}
	return now.Format(dateLayout)
}
