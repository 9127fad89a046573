package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

const (
	title = "P2P RECON MANUAL UPDATE"

	// timestampLayout matches the run-date stamp auditors see at the top
	// of every report.
	timestampLayout = "2006-01-02 15:04:05.000000"

	headerRuleWidth = 150
	rowRuleWidth    = 75
)

// FileName returns the report file name for a run date, e.g.
// P2P_RECON_MANUAL_UPDATE_01-15-2024.txt.
func FileName(runDate time.Time) string {
	return fmt.Sprintf("P2P_RECON_MANUAL_UPDATE_%s.txt", runDate.Format("01-02-2006"))
}

// Writer formats row and lane outcomes into the audit report. Lines are
// buffered; callers must Flush before closing the underlying file.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w in an audit report writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteHeader writes the report title block.
func (w *Writer) WriteHeader(runTime time.Time) {
	fmt.Fprintln(w.bw, title)
	fmt.Fprintf(w.bw, "RUN DATE: %s\n", runTime.Format(timestampLayout))
	fmt.Fprintln(w.bw, strings.Repeat("-", headerRuleWidth))
	fmt.Fprintln(w.bw)
}

// BeginRow starts a row block: the row header, a separator, and the row
// fields sorted by name. Empty values render as N/A.
func (w *Writer) BeginRow(rowNum int, fields map[string]string) {
	fmt.Fprintf(w.bw, "Row %d:\n", rowNum)
	fmt.Fprintln(w.bw, strings.Repeat("-", rowRuleWidth))

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := fields[name]
		if value == "" {
			value = "N/A"
		}
		fmt.Fprintf(w.bw, "%s: %s\n", name, value)
	}
}

// LaneLabel writes the fixed label line for an attempted lane.
func (w *Writer) LaneLabel(label string) {
	fmt.Fprintln(w.bw, label)
}

// Line writes one outcome line.
func (w *Writer) Line(text string) {
	fmt.Fprintln(w.bw, text)
}

// EndRow terminates the row block with a blank line.
func (w *Writer) EndRow() {
	fmt.Fprintln(w.bw)
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
