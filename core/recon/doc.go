// Package recon implements the per-row reconciliation decision-and-update
// engine.
//
// For every input row the engine independently evaluates up to five update
// lanes: detail record, payment, RTXN entity attribute, Mastercard
// settlement, and Visa settlement. Each lane follows the same state machine:
//
//	Pending -> Skipped (flag not "Y", no outcome recorded)
//	        -> ValidationFailed (identifier checks, no SQL executed)
//	        -> Updated | AlreadyReconciled | SQLError (one statement executed)
//
// # Transaction discipline
//
// Two independent stores are in play: the payments store (detail record and
// payment lanes) and the ledger store (RTXN and card-network lanes). Each
// lane mutation is its own unit of work: begin, execute once, then commit
// (apply mode) or rollback (report-only mode) on every path. No transaction
// spans lanes or rows.
//
// # Failure policy
//
// Everything below the row level is recovered locally and turned into a
// report line. The batch always runs to completion; the primary output is
// an audit report for human review, so fail-soft beats fail-fast here.
//
// A statement affecting zero rows is reported as "already populated". The
// statements are guarded to only touch unreconciled records, so that is the
// working assumption, even though zero rows is indistinguishable from
// "record not found" at the SQL level.
package recon
