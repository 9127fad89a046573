package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"p2p-recon/core/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	runDate := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "P2P_RECON_MANUAL_UPDATE_01-15-2024.txt", report.FileName(runDate))
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	w.WriteHeader(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC))
	require.NoError(t, w.Flush())

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "P2P RECON MANUAL UPDATE", lines[0])
	assert.Equal(t, "RUN DATE: 2024-01-15 09:30:00.000000", lines[1])
	assert.Equal(t, strings.Repeat("-", 150), lines[2])
	assert.Equal(t, "", lines[3])
}

func TestBeginRowRendersSortedFieldsWithNA(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	w.BeginRow(2, map[string]string{
		"PAYMENT_ID": "42",
		"ACCTNBR":    "",
		"NETWORK_ID": "MC-1",
	})
	require.NoError(t, w.Flush())

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Row 2:", lines[0])
	assert.Equal(t, strings.Repeat("-", 75), lines[1])
	// Fields sorted by name, empty values rendered as N/A.
	assert.Equal(t, "ACCTNBR: N/A", lines[2])
	assert.Equal(t, "NETWORK_ID: MC-1", lines[3])
	assert.Equal(t, "PAYMENT_ID: 42", lines[4])
}

func TestRowBlockLayout(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	w.BeginRow(2, map[string]string{"PAYMENT_ID": "42"})
	w.LaneLabel("Payment Table Update Status:")
	w.Line("Reconcile Date Updated: 01/15/2024")
	w.EndRow()
	require.NoError(t, w.Flush())

	want := "Row 2:\n" +
		strings.Repeat("-", 75) + "\n" +
		"PAYMENT_ID: 42\n" +
		"Payment Table Update Status:\n" +
		"Reconcile Date Updated: 01/15/2024\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}
