package recon

// Column header names of the reconciliation input file. The ingest
// package maps spreadsheet columns onto TransactionRow fields by these
// names; the report writer renders them back in sorted order.
const (
	ColDetailRecordID     = "DETAIL_RECORD_ID"
	ColPaymentID          = "PAYMENT_ID"
	ColAcctNbr            = "ACCTNBR"
	ColRtxnNbr            = "RTXNNBR"
	ColNetworkID          = "NETWORK_ID"
	ColTranType           = "TRAN_TYPE"
	ColUpdateDetailRecord = "UPDATE_DETAIL_RECORD"
	ColUpdatePayment      = "UPDATE_PAYMENT"
	ColUpdateRTXN         = "UPDATE_RTXN"
	ColUpdateVisa         = "UPDATE_VISA"
	ColUpdateMC           = "UPDATE_MC"
)

// TransactionRow is one parsed input record. Rows are immutable once
// parsed; lanes read them but never mutate them.
type TransactionRow struct {
	// DetailRecordID identifies the detail record to reconcile (numeric string).
	DetailRecordID string
	// PaymentID identifies the payment to reconcile (numeric string).
	PaymentID string
	// AcctNbr is the account number for the RTXN lane (numeric string).
	AcctNbr string
	// RtxnNbr is the transaction number for the RTXN lane (numeric string).
	RtxnNbr string
	// NetworkID is the card-network transaction identifier.
	NetworkID string
	// TranType is the card transaction type, expected CREDIT or DEBIT.
	TranType string

	// Lane flags. A case-insensitive "Y" gates whether the lane runs.
	UpdateDetailRecord string
	UpdatePayment      string
	UpdateRTXN         string
	UpdateMC           string
	UpdateVisa         string
}

// Fields returns the row as a header-name-to-value map for report rendering.
func (r TransactionRow) Fields() map[string]string {
	return map[string]string{
		ColDetailRecordID:     r.DetailRecordID,
		ColPaymentID:          r.PaymentID,
		ColAcctNbr:            r.AcctNbr,
		ColRtxnNbr:            r.RtxnNbr,
		ColNetworkID:          r.NetworkID,
		ColTranType:           r.TranType,
		ColUpdateDetailRecord: r.UpdateDetailRecord,
		ColUpdatePayment:      r.UpdatePayment,
		ColUpdateRTXN:         r.UpdateRTXN,
		ColUpdateVisa:         r.UpdateVisa,
		ColUpdateMC:           r.UpdateMC,
	}
}

// Statements holds the SQL statement templates supplied by the job
// configuration. Statements are opaque strings with positional
// placeholders; the engine performs no templating of its own.
type Statements struct {
	// UpdatePayment marks a payment record as reconciled.
	UpdatePayment string
	// UpdateDetailRecord marks a detail record as reconciled.
	UpdateDetailRecord string
	// InsertRtxnReconDate upserts the reconcile date entity attribute
	// keyed by (acctnbr, rtxnnbr).
	InsertRtxnReconDate string
	// UpdateMCRecon marks a Mastercard settlement record as reconciled.
	UpdateMCRecon string
	// UpdateVisaRecon marks a Visa settlement record as reconciled.
	UpdateVisaRecon string
}

// OutcomeKind enumerates the terminal states of an attempted lane.
type OutcomeKind int

const (
	// OutcomeUpdated means the statement affected at least one row.
	OutcomeUpdated OutcomeKind = iota
	// OutcomeAlreadyReconciled means the statement affected zero rows.
	// The statements are guarded to only touch unreconciled records, so
	// zero rows is reported as "already populated" even though it is
	// indistinguishable from "record not found" at the SQL level.
	OutcomeAlreadyReconciled
	// OutcomeValidationFailed means identifier fields failed validation
	// and no statement was executed.
	OutcomeValidationFailed
	// OutcomeSQLError means the statement execution failed.
	OutcomeSQLError
)

// LaneOutcome is the result of attempting one lane for one row. Every
// attempted lane produces exactly one outcome.
type LaneOutcome struct {
	// Kind is the terminal state of the lane.
	Kind OutcomeKind
	// Date is the reconcile date written, set for OutcomeUpdated.
	Date string
	// Reasons holds one entry per failed field, set for OutcomeValidationFailed.
	Reasons []string
	// Err is the raw execution error message, set for OutcomeSQLError.
	Err string
}

// ReportLines renders the outcome as audit report lines, one per
// validation failure or a single result line for the update attempt.
func (o LaneOutcome) ReportLines() []string {
	switch o.Kind {
	case OutcomeUpdated:
		return []string{"Reconcile Date Updated: " + o.Date}
	case OutcomeAlreadyReconciled:
		return []string{"Reconcile Date Not Updated: Reconcile Date is already populated"}
	case OutcomeValidationFailed:
		lines := make([]string, 0, len(o.Reasons))
		for _, reason := range o.Reasons {
			lines = append(lines, "Reconcile Date Not Updated: "+reason)
		}
		return lines
	default:
		return []string{"Reconcile Date Not Updated: " + o.Err}
	}
}

// ReportSink receives row and lane output in processing order. The
// report package provides the file-backed implementation.
type ReportSink interface {
	// BeginRow starts a row block. rowNum is 1-based and counts the
	// spreadsheet header row, so the first data row is 2.
	BeginRow(rowNum int, fields map[string]string)
	// LaneLabel writes the fixed label line for an attempted lane.
	LaneLabel(label string)
	// Line writes one outcome line.
	Line(text string)
	// EndRow terminates the row block.
	EndRow()
}
