// Package report writes the human-readable audit report produced by a
// reconciliation run.
//
// The report is the primary output of the job: auditors read it
// top-to-bottom expecting input order, so rows and lane blocks appear
// exactly in processing order. Each row block carries the row's fields
// sorted by name followed by one labeled block per attempted lane.
package report
