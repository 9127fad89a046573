package recon

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// The lane updaters select a statement template, build its positional
// parameters, and delegate execution to the lane runner. They add no
// retry or interpretation of their own.

// paymentRecordKind selects between the two payment-store templates.
type paymentRecordKind int

const (
	detailRecordKind paymentRecordKind = iota
	paymentKind
)

// effectiveDate returns the run-level reconcile date. The fallback to
// the current date preserves the original tool's safety net; Run always
// computes a date before any row is processed.
func (e *Engine) effectiveDate() string {
	if e.ReconcileDate != "" {
		return e.ReconcileDate
	}
	return time.Now().Format(dateLayout)
}

// updatePaymentRecord reconciles a detail record or payment in the
// payments store. id has already been validated all-digit.
func (e *Engine) updatePaymentRecord(kind paymentRecordKind, id string) LaneOutcome {
	stmt := e.Statements.UpdateDetailRecord
	if kind == paymentKind {
		stmt = e.Statements.UpdatePayment
	}

	recordID, _ := strconv.ParseInt(id, 10, 64)
	return e.runLane(e.Payments, stmt, []any{e.effectiveDate(), recordID})
}

// updateRTXN upserts the reconcile date entity attribute in the ledger
// store. The key pair appears twice: once for the insert values and
// once for the update match.
func (e *Engine) updateRTXN(acctNbr, rtxnNbr string) LaneOutcome {
	acct, _ := strconv.ParseInt(acctNbr, 10, 64)
	rtxn, _ := strconv.ParseInt(rtxnNbr, 10, 64)
	date := e.effectiveDate()
	return e.runLane(e.Ledger, e.Statements.InsertRtxnReconDate, []any{acct, rtxn, date, acct, rtxn})
}

// updateMC reconciles a Mastercard settlement record in the ledger store.
func (e *Engine) updateMC(networkTranID string) LaneOutcome {
	return e.runLane(e.Ledger, e.Statements.UpdateMCRecon, []any{e.effectiveDate(), networkTranID})
}

// updateVisa reconciles a Visa settlement record in the ledger store.
// tranCode is the validated TRAN_TYPE value.
func (e *Engine) updateVisa(networkTranID, tranCode string) LaneOutcome {
	return e.runLane(e.Ledger, e.Statements.UpdateVisaRecon, []any{e.effectiveDate(), networkTranID, tranCode})
}

// runLane executes one statement as its own unit of work: begin,
// execute, then commit or rollback depending on the run mode. In apply
// mode the commit happens regardless of outcome so no lock is left
// behind; in report-only mode the rollback guarantees no mutation
// persists while still exercising the SQL path.
func (e *Engine) runLane(db *gorm.DB, stmt string, params []any) LaneOutcome {
	tx := db.Begin()
	if tx.Error != nil {
		return LaneOutcome{Kind: OutcomeSQLError, Err: tx.Error.Error()}
	}

	rowsAffected, errMsg := execStatement(tx, stmt, params)

	if e.ReportOnly {
		tx.Rollback()
	} else {
		tx.Commit()
	}

	switch {
	case errMsg != "":
		return LaneOutcome{Kind: OutcomeSQLError, Err: errMsg}
	case rowsAffected > 0:
		return LaneOutcome{Kind: OutcomeUpdated, Date: e.effectiveDate()}
	default:
		return LaneOutcome{Kind: OutcomeAlreadyReconciled}
	}
}
