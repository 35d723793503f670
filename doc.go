// Package bankbook provides the types and functions for a local, single-user
// banking ledger. It is designed to be local-first and auditable: all state
// lives in two human-readable text files that can be inspected or versioned.
//
// The core functionalities include:
//   - Account Management: Creating accounts, authenticating against a stored
//     credential hash, and keeping the authoritative balance per account.
//   - Ledger Management: Recording every deposit and withdrawal as an
//     immutable, chronological entry in an append-only transaction log.
//   - Session Handling: Holding at most one authenticated account per
//     Service instance, so independent services can coexist.
//   - Data Persistence: Encoding and decoding account and transaction
//     records to and from a line-oriented, comma-separated format.
//
// This package serves as the foundational logic for the `bb` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bankbook
