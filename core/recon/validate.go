package recon

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation reason strings. These are part of the audit report
// contract and must match the wording reviewers expect.
const (
	reasonDetailRecordID = "DetailRecord Id is undefined or non numeric"
	reasonPaymentID      = "Payment Id is undefined or non numeric"
	reasonAcctNbr        = "ACCTNBR is undefined or non-numeric"
	reasonRtxnNbr        = "RTXNNBR is undefined or non-numeric"
	reasonNetworkID      = "NETWORK_ID is undefined"
	reasonTranCode       = "TRAN_CODE is undefined or not CREDIT or DEBIT"
)

// isNumericID reports whether v is present and all-digit.
func isNumericID(v string) bool {
	return validation.Validate(v, validation.Required, is.Digit) == nil
}

// isTranCode reports whether v is a case-insensitive CREDIT or DEBIT.
func isTranCode(v string) bool {
	return validation.Validate(strings.ToUpper(v), validation.Required, validation.In("CREDIT", "DEBIT")) == nil
}

// The per-lane validators are pure: they never touch the database and
// each failing field contributes its own reason, not just the first.

func validateDetailRecordLane(row TransactionRow) []string {
	if !isNumericID(row.DetailRecordID) {
		return []string{reasonDetailRecordID}
	}
	return nil
}

func validatePaymentLane(row TransactionRow) []string {
	if !isNumericID(row.PaymentID) {
		return []string{reasonPaymentID}
	}
	return nil
}

func validateRTXNLane(row TransactionRow) []string {
	var reasons []string
	if !isNumericID(row.AcctNbr) {
		reasons = append(reasons, reasonAcctNbr)
	}
	if !isNumericID(row.RtxnNbr) {
		reasons = append(reasons, reasonRtxnNbr)
	}
	return reasons
}

func validateMCLane(row TransactionRow) []string {
	if validation.Validate(row.NetworkID, validation.Required) != nil {
		return []string{reasonNetworkID}
	}
	return nil
}

func validateVisaLane(row TransactionRow) []string {
	var reasons []string
	if validation.Validate(row.NetworkID, validation.Required) != nil {
		reasons = append(reasons, reasonNetworkID)
	}
	if !isTranCode(row.TranType) {
		reasons = append(reasons, reasonTranCode)
	}
	return reasons
}
