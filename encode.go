package bankbook

import (
	"fmt"
	"strings"
)

// Record lines are comma-separated with no quoting:
//
//	account:     id,name,passwordHashHex,balanceDecimalString
//	transaction: id,kind,amountDecimalString,YYYY-MM-DD HH:MM:SS
//
// Because the format has no escaping, names containing a comma or a line
// break are rejected at creation (see validateName).

// encodeAccount renders one account as a record line.
func encodeAccount(a *Account) string {
	return strings.Join([]string{a.id, a.name, a.credentialHash, a.balance.DecimalString()}, ",")
}

// decodeAccount parses one account record line. The currency applies to the
// balance field; it is not part of the record.
func decodeAccount(line, currency string) (*Account, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("malformed account record %q: want 4 fields, got %d", line, len(parts))
	}
	balance, err := ParseAmount(parts[3], currency)
	if err != nil {
		return nil, fmt.Errorf("malformed account record %q: %w", line, err)
	}
	return &Account{
		id:             parts[0],
		name:           parts[1],
		credentialHash: parts[2],
		balance:        balance,
	}, nil
}

// encodeTransaction renders one ledger entry as a record line.
func encodeTransaction(tx Transaction) string {
	return strings.Join([]string{tx.AccountID, string(tx.Kind), tx.Amount.DecimalString(), tx.Time.String()}, ",")
}

// decodeTransaction parses one transaction record line. Fields after the
// amount are rejoined before parsing the timestamp, so a record written with
// a comma-bearing timestamp format still reads back.
func decodeTransaction(line, currency string) (Transaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return Transaction{}, fmt.Errorf("malformed transaction record %q: want 4 fields, got %d", line, len(parts))
	}
	kind, err := ParseKind(parts[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("malformed transaction record %q: %w", line, err)
	}
	amount, err := ParseAmount(parts[2], currency)
	if err != nil {
		return Transaction{}, fmt.Errorf("malformed transaction record %q: %w", line, err)
	}
	ts, err := ParseTimestamp(strings.Join(parts[3:], ","))
	if err != nil {
		return Transaction{}, fmt.Errorf("malformed transaction record %q: %w", line, err)
	}
	return Transaction{AccountID: parts[0], Kind: kind, Amount: amount, Time: ts}, nil
}

// validateName rejects names that cannot survive the unquoted record format.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty: %w", ErrInvalidName)
	}
	if strings.ContainsAny(name, ",\n\r") {
		return fmt.Errorf("name %q contains a comma or a line break: %w", name, ErrInvalidName)
	}
	return nil
}
