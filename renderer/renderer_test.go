package renderer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/bankbook"
)

// newAccount creates a persisted account to render. Renderer tests go
// through the store because the account constructor is not exported.
func newAccount(t *testing.T, name string, balance bankbook.Money) *bankbook.Account {
	t.Helper()
	store := bankbook.NewAccountStore(filepath.Join(t.TempDir(), "accounts.txt"), "USD")
	a, err := store.Create(name, balance, "pw")
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func usd(v float64) bankbook.Money { return bankbook.M(v, "USD") }

func TestTransaction(t *testing.T) {
	when := bankbook.MustParseTimestamp("2025-03-01 10:30:00")

	got := Transaction(bankbook.NewDeposit("123456", usd(50), when))
	if got != "Deposited $50.00 on 2025-03-01 10:30:00" {
		t.Errorf("Transaction() = %q", got)
	}

	got = Transaction(bankbook.NewWithdrawal("123456", usd(25), when))
	if got != "Withdrew $25.00 on 2025-03-01 10:30:00" {
		t.Errorf("Transaction() = %q", got)
	}
}

func TestHistory(t *testing.T) {
	a := newAccount(t, "Alice", usd(150))
	when := bankbook.MustParseTimestamp("2025-03-01 10:30:00")
	txs := []bankbook.Transaction{
		bankbook.NewDeposit(a.ID(), usd(50), when),
		bankbook.NewDeposit(a.ID(), usd(100), when),
	}

	md := History(a, txs)
	if !strings.Contains(md, "Alice") || !strings.Contains(md, a.ID()) {
		t.Errorf("History() missing the account header:\n%s", md)
	}
	if !strings.Contains(md, "| Deposit | $50.00 |") {
		t.Errorf("History() missing the deposit row:\n%s", md)
	}
	// Rows keep the given order: newest first is the caller's contract.
	if strings.Index(md, "$50.00") > strings.Index(md, "$100.00") {
		t.Errorf("History() reordered the rows:\n%s", md)
	}
}

func TestHistory_Empty(t *testing.T) {
	a := newAccount(t, "Alice", usd(150))
	md := History(a, nil)
	if !strings.Contains(md, "No transactions found.") {
		t.Errorf("History() without entries = %q", md)
	}
}

func TestAccountSummary(t *testing.T) {
	a := newAccount(t, "Alice", usd(150))
	md := AccountSummary(a)
	for _, want := range []string{"ALICE", a.ID(), "$150.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("AccountSummary() missing %q:\n%s", want, md)
		}
	}
}

func TestReceipt(t *testing.T) {
	a := newAccount(t, "Alice", usd(150))
	tx := bankbook.NewWithdrawal(a.ID(), usd(25), bankbook.MustParseTimestamp("2025-03-01 10:30:00"))
	md := Receipt(a, tx)
	for _, want := range []string{"Withdrawal Receipt", a.ID(), "$25.00", "$150.00", "2025-03-01 10:30:00"} {
		if !strings.Contains(md, want) {
			t.Errorf("Receipt() missing %q:\n%s", want, md)
		}
	}
}
