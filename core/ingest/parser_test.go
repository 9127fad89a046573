package ingest_test

import (
	"path/filepath"
	"testing"

	"p2p-recon/core/ingest"
	"p2p-recon/core/recon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var validHeaders = []string{
	"DETAIL_RECORD_ID", "PAYMENT_ID", "ACCTNBR", "RTXNNBR",
	"NETWORK_ID", "TRAN_TYPE", "UPDATE_DETAIL_RECORD",
	"UPDATE_PAYMENT", "UPDATE_RTXN", "UPDATE_VISA", "UPDATE_MC",
}

// writeWorkbook builds an .xlsx test fixture with the given rows.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "recon.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func headerRow() []any {
	row := make([]any, len(validHeaders))
	for i, h := range validHeaders {
		row[i] = h
	}
	return row
}

func TestParseReconFile(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		headerRow(),
		{"100", "200", "300", "400", "MC-1", "CREDIT", "Y", "N", "Y", "N", "Y"},
		{"", "201", "", "", "V-2", "debit", "", "Y", "", "Y", ""},
	})

	rows, err := ingest.ParseReconFile(path, validHeaders)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, recon.TransactionRow{
		DetailRecordID:     "100",
		PaymentID:          "200",
		AcctNbr:            "300",
		RtxnNbr:            "400",
		NetworkID:          "MC-1",
		TranType:           "CREDIT",
		UpdateDetailRecord: "Y",
		UpdatePayment:      "N",
		UpdateRTXN:         "Y",
		UpdateVisa:         "N",
		UpdateMC:           "Y",
	}, rows[0])

	// Trailing empty cells read as empty fields.
	assert.Equal(t, "", rows[1].DetailRecordID)
	assert.Equal(t, "201", rows[1].PaymentID)
	assert.Equal(t, "debit", rows[1].TranType)
	assert.Equal(t, "", rows[1].UpdateMC)
}

func TestParseReconFileHeaderMismatch(t *testing.T) {
	badHeader := headerRow()
	badHeader[1] = "PAYMENT" // wrong name in position 2

	path := writeWorkbook(t, [][]any{badHeader, {"1"}})

	rows, err := ingest.ParseReconFile(path, validHeaders)
	assert.Nil(t, rows)
	require.Error(t, err)
	assert.EqualError(t, err, "PAYMENT is not a valid column name or is in the wrong position")
}

func TestParseReconFileHeaderOutOfOrder(t *testing.T) {
	swapped := headerRow()
	swapped[0], swapped[1] = swapped[1], swapped[0]

	path := writeWorkbook(t, [][]any{swapped})

	_, err := ingest.ParseReconFile(path, validHeaders)
	require.Error(t, err)
	assert.EqualError(t, err, "PAYMENT_ID is not a valid column name or is in the wrong position")
}

func TestParseReconFileHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, [][]any{headerRow()})

	rows, err := ingest.ParseReconFile(path, validHeaders)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseReconFileMissing(t *testing.T) {
	_, err := ingest.ParseReconFile(filepath.Join(t.TempDir(), "nope.xlsx"), validHeaders)
	assert.Error(t, err)
}
