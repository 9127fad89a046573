// Package database establishes the two transactional store connections
// used by the reconciliation job: the payments store (detail record and
// payment lanes) and the ledger store (RTXN and card-network lanes).
//
// Both handles are created once at startup and closed once at shutdown.
// Commit and rollback boundaries belong to the engine, which scopes
// every lane mutation to its own transaction.
package database
