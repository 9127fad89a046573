package recon

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Lane labels written to the audit report. Auditors match on these
// exact strings.
const (
	labelDetailRecord = "DetailRecord Table Update Status:"
	labelPayment      = "Payment Table Update Status:"
	labelRTXN         = "RTXN Entity Attribute Update Status:"
	labelMC           = "MC_ZELDLY Recon Table Update:"
	labelVisa         = "VISA_RW3 Recon Table Update:"
)

// Engine evaluates the five update lanes for every input row and
// streams outcomes to the report sink in input order. Processing is
// fail-soft: a lane failure is recorded and never aborts the row or
// the run.
type Engine struct {
	// Payments is the store targeted by the detail-record and payment lanes.
	Payments *gorm.DB
	// Ledger is the store targeted by the RTXN, Mastercard, and Visa lanes.
	Ledger *gorm.DB
	// Statements are the configured SQL templates.
	Statements Statements
	// ReconcileDate is the run-level effective date in MM/DD/YYYY form.
	ReconcileDate string
	// ReportOnly rolls back every lane mutation instead of committing.
	ReportOnly bool
	// Sink receives row and lane output.
	Sink ReportSink
	// Log is the structured run logger.
	Log *zap.Logger
}

// Run processes every row to completion. Row numbering counts the
// spreadsheet header row, so the first data row reports as Row 2.
func (e *Engine) Run(rows []TransactionRow) {
	for i, row := range rows {
		rowNum := i + 2
		e.Sink.BeginRow(rowNum, row.Fields())
		e.processRow(rowNum, row)
		e.Sink.EndRow()
	}
}

// processRow evaluates the lanes in fixed order. Lanes are independent:
// a skip or failure in one never affects another.
func (e *Engine) processRow(rowNum int, row TransactionRow) {
	if laneRequested(row.UpdateDetailRecord) {
		e.runAttempt(rowNum, labelDetailRecord, validateDetailRecordLane(row), func() LaneOutcome {
			return e.updatePaymentRecord(detailRecordKind, row.DetailRecordID)
		})
	}

	if laneRequested(row.UpdatePayment) {
		e.runAttempt(rowNum, labelPayment, validatePaymentLane(row), func() LaneOutcome {
			return e.updatePaymentRecord(paymentKind, row.PaymentID)
		})
	}

	if laneRequested(row.UpdateRTXN) {
		e.runAttempt(rowNum, labelRTXN, validateRTXNLane(row), func() LaneOutcome {
			return e.updateRTXN(row.AcctNbr, row.RtxnNbr)
		})
	}

	if laneRequested(row.UpdateMC) {
		e.runAttempt(rowNum, labelMC, validateMCLane(row), func() LaneOutcome {
			return e.updateMC(row.NetworkID)
		})
	}

	if laneRequested(row.UpdateVisa) {
		e.runAttempt(rowNum, labelVisa, validateVisaLane(row), func() LaneOutcome {
			return e.updateVisa(row.NetworkID, row.TranType)
		})
	}
}

// runAttempt records one attempted lane: validation failures short-circuit
// before any database call, otherwise the updater runs and its result is
// reported as-is.
func (e *Engine) runAttempt(rowNum int, label string, reasons []string, update func() LaneOutcome) {
	e.Sink.LaneLabel(label)

	var outcome LaneOutcome
	if len(reasons) > 0 {
		outcome = LaneOutcome{Kind: OutcomeValidationFailed, Reasons: reasons}
	} else {
		outcome = update()
	}

	for _, line := range outcome.ReportLines() {
		e.Sink.Line(line)
	}

	if outcome.Kind == OutcomeSQLError {
		e.Log.Warn("lane update failed",
			zap.Int("row", rowNum),
			zap.String("lane", label),
			zap.String("error", outcome.Err),
		)
	} else {
		e.Log.Debug("lane attempted",
			zap.Int("row", rowNum),
			zap.String("lane", label),
			zap.Int("outcome", int(outcome.Kind)),
		)
	}
}

// laneRequested reports whether a lane flag requests the lane to run.
func laneRequested(flag string) bool {
	return strings.EqualFold(flag, "Y")
}
