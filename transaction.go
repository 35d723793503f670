package bankbook

import "fmt"

// Kind is a typed string identifying the type of a ledger entry.
type Kind string

// Entry kinds recorded in the transaction log.
const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is an immutable record of a single deposit or withdrawal.
//
// Entries are appended in chronological order and are never mutated or
// removed once written. The amount is strictly positive for both kinds.
type Transaction struct {
	AccountID string
	Kind      Kind
	Amount    Money
	Time      Timestamp
}

// NewDeposit creates a Deposit entry for the given account.
func NewDeposit(accountID string, amount Money, at Timestamp) Transaction {
	return Transaction{AccountID: accountID, Kind: KindDeposit, Amount: amount, Time: at}
}

// NewWithdrawal creates a Withdrawal entry for the given account.
func NewWithdrawal(accountID string, amount Money, at Timestamp) Transaction {
	return Transaction{AccountID: accountID, Kind: KindWithdrawal, Amount: amount, Time: at}
}

// Equal reports whether two entries carry the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.AccountID == o.AccountID && t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount) && t.Time.Equal(o.Time)
}
