package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDetailRecordLane(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		reasons []string
	}{
		{"Valid", "12345", nil},
		{"Empty", "", []string{"DetailRecord Id is undefined or non numeric"}},
		{"NonNumeric", "12a45", []string{"DetailRecord Id is undefined or non numeric"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := TransactionRow{DetailRecordID: tt.id}
			assert.Equal(t, tt.reasons, validateDetailRecordLane(row))
		})
	}
}

func TestValidatePaymentLane(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		reasons []string
	}{
		{"Valid", "987", nil},
		{"Empty", "", []string{"Payment Id is undefined or non numeric"}},
		{"Decimal", "98.7", []string{"Payment Id is undefined or non numeric"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := TransactionRow{PaymentID: tt.id}
			assert.Equal(t, tt.reasons, validatePaymentLane(row))
		})
	}
}

func TestValidateRTXNLane(t *testing.T) {
	tests := []struct {
		name    string
		acct    string
		rtxn    string
		reasons []string
	}{
		{"BothValid", "123", "456", nil},
		{
			// Each failing field contributes its own reason; a valid
			// RTXNNBR must not be reported.
			"AcctInvalidOnly",
			"abc", "456",
			[]string{"ACCTNBR is undefined or non-numeric"},
		},
		{
			"RtxnInvalidOnly",
			"123", "",
			[]string{"RTXNNBR is undefined or non-numeric"},
		},
		{
			"BothInvalid",
			"", "45x",
			[]string{
				"ACCTNBR is undefined or non-numeric",
				"RTXNNBR is undefined or non-numeric",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := TransactionRow{AcctNbr: tt.acct, RtxnNbr: tt.rtxn}
			assert.Equal(t, tt.reasons, validateRTXNLane(row))
		})
	}
}

func TestValidateMCLane(t *testing.T) {
	assert.Nil(t, validateMCLane(TransactionRow{NetworkID: "MC-1001"}))
	assert.Equal(t,
		[]string{"NETWORK_ID is undefined"},
		validateMCLane(TransactionRow{NetworkID: ""}),
	)
}

func TestValidateVisaLane(t *testing.T) {
	tests := []struct {
		name      string
		networkID string
		tranType  string
		reasons   []string
	}{
		{"CreditValid", "V1", "CREDIT", nil},
		{"DebitLowercase", "V1", "debit", nil},
		{"MissingNetworkID", "", "CREDIT", []string{"NETWORK_ID is undefined"}},
		{"BadTranType", "V1", "REFUND", []string{"TRAN_CODE is undefined or not CREDIT or DEBIT"}},
		{"MissingTranType", "V1", "", []string{"TRAN_CODE is undefined or not CREDIT or DEBIT"}},
		{
			"BothMissing",
			"", "",
			[]string{
				"NETWORK_ID is undefined",
				"TRAN_CODE is undefined or not CREDIT or DEBIT",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := TransactionRow{NetworkID: tt.networkID, TranType: tt.tranType}
			assert.Equal(t, tt.reasons, validateVisaLane(row))
		})
	}
}

func TestLaneOutcomeReportLines(t *testing.T) {
	tests := []struct {
		name    string
		outcome LaneOutcome
		lines   []string
	}{
		{
			"Updated",
			LaneOutcome{Kind: OutcomeUpdated, Date: "01/15/2024"},
			[]string{"Reconcile Date Updated: 01/15/2024"},
		},
		{
			"AlreadyReconciled",
			LaneOutcome{Kind: OutcomeAlreadyReconciled},
			[]string{"Reconcile Date Not Updated: Reconcile Date is already populated"},
		},
		{
			"ValidationFailed",
			LaneOutcome{Kind: OutcomeValidationFailed, Reasons: []string{"NETWORK_ID is undefined"}},
			[]string{"Reconcile Date Not Updated: NETWORK_ID is undefined"},
		},
		{
			"SQLError",
			LaneOutcome{Kind: OutcomeSQLError, Err: "Error 1146 (42S02): Table 'p2p.payment' doesn't exist"},
			[]string{"Reconcile Date Not Updated: Error 1146 (42S02): Table 'p2p.payment' doesn't exist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lines, tt.outcome.ReportLines())
		})
	}
}
