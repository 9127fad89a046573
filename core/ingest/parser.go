package ingest

import (
	"fmt"
	"strings"

	"p2p-recon/core/recon"

	"github.com/xuri/excelize/v2"
)

// ParseReconFile reads the reconciliation spreadsheet and returns its
// data rows as typed transaction records.
//
// The header row is validated positionally against validHeaders; a
// mismatch is fatal and aborts the run before any data row is seen.
func ParseReconFile(path string, validHeaders []string) ([]recon.TransactionRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in input file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("input file has no header row")
	}

	if err := validateHeaders(rows[0], validHeaders); err != nil {
		return nil, err
	}

	transactions := make([]recon.TransactionRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		var row recon.TransactionRow
		for i, header := range validHeaders {
			assignField(&row, header, cellValue(cells, i))
		}
		transactions = append(transactions, row)
	}

	return transactions, nil
}

// validateHeaders checks the header row cell-by-cell against the
// configured schema, in order.
func validateHeaders(header, validHeaders []string) error {
	for i, want := range validHeaders {
		got := cellValue(header, i)
		if got != want {
			return fmt.Errorf("%s is not a valid column name or is in the wrong position", got)
		}
	}
	return nil
}

// cellValue returns the trimmed cell at index i. excelize omits
// trailing empty cells, so short rows read as empty values.
func cellValue(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// assignField maps a spreadsheet column onto its TransactionRow field.
func assignField(row *recon.TransactionRow, header, value string) {
	switch header {
	case recon.ColDetailRecordID:
		row.DetailRecordID = value
	case recon.ColPaymentID:
		row.PaymentID = value
	case recon.ColAcctNbr:
		row.AcctNbr = value
	case recon.ColRtxnNbr:
		row.RtxnNbr = value
	case recon.ColNetworkID:
		row.NetworkID = value
	case recon.ColTranType:
		row.TranType = value
	case recon.ColUpdateDetailRecord:
		row.UpdateDetailRecord = value
	case recon.ColUpdatePayment:
		row.UpdatePayment = value
	case recon.ColUpdateRTXN:
		row.UpdateRTXN = value
	case recon.ColUpdateVisa:
		row.UpdateVisa = value
	case recon.ColUpdateMC:
		row.UpdateMC = value
	}
}
