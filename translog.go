package bankbook

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// TransactionLog is the durable, append-only audit trail of ledger entries,
// backed by a single line-oriented text file.
//
// The log is derived, non-authoritative data: the account store holds the
// authoritative balance, and no reconciliation logic enforces agreement
// beyond correct application order.
type TransactionLog struct {
	path string
	cur  string
}

// NewTransactionLog binds a log to the transactions file at path. Amounts
// are read and written in the given currency.
func NewTransactionLog(path, currency string) *TransactionLog {
	return &TransactionLog{path: path, cur: currency}
}

// Path returns the transactions file backing this log.
func (l *TransactionLog) Path() string { return l.path }

// Append writes one immutable entry at the end of the log, creating the
// file if needed. It never fails except on underlying storage errors.
func (l *TransactionLog) Append(tx Transaction) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return storageErr("open", l.path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(encodeTransaction(tx) + "\n"); err != nil {
		return storageErr("write", l.path, err)
	}
	return nil
}

// HistoryFor returns every entry recorded for id, newest first.
//
// The file is re-scanned on every call and the result is a materialized
// slice, not a lazy stream. Storage order is chronological; the slice is
// reversed for presentation, so entries written within the same second keep
// a deterministic order.
func (l *TransactionLog) HistoryFor(id string) ([]Transaction, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("open", l.path, err)
	}
	defer f.Close()

	var txs []Transaction
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tx, err := decodeTransaction(line, l.cur)
		if err != nil {
			return nil, storageErr("parse", l.path, err)
		}
		if tx.AccountID == id {
			txs = append(txs, tx)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, storageErr("read", l.path, err)
	}

	slices.Reverse(txs)
	return txs, nil
}
