// Package renderer turns bankbook values into markdown strings for the
// terminal. Functions here are pure: they never touch the stores.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/bankbook"
)

// Transaction renders a ledger entry to a one-line description.
func Transaction(tx bankbook.Transaction) string {
	switch tx.Kind {
	case bankbook.KindDeposit:
		return fmt.Sprintf("Deposited %s on %s", tx.Amount, tx.Time)
	case bankbook.KindWithdrawal:
		return fmt.Sprintf("Withdrew %s on %s", tx.Amount, tx.Time)
	default:
		return string(tx.Kind)
	}
}

// History renders the newest-first transaction table for an account.
func History(a *bankbook.Account, txs []bankbook.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction History for %s (%s)\n\n", a.Name(), a.ID())
	if len(txs) == 0 {
		b.WriteString("No transactions found.\n")
		return b.String()
	}
	b.WriteString("| Kind | Amount | Date |\n")
	b.WriteString("|------|-------:|------|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", tx.Kind, tx.Amount, tx.Time)
	}
	return b.String()
}

// AccountSummary renders the logged-in account header: name, number, and
// formatted balance.
func AccountSummary(a *bankbook.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Welcome, %s!\n\n", strings.ToUpper(a.Name()))
	fmt.Fprintf(&b, "Account Number: %s\n\n", a.ID())
	fmt.Fprintf(&b, "Current Balance: %s\n", a.Balance())
	return b.String()
}

// Receipt renders the post-operation receipt block for a balance mutation.
func Receipt(a *bankbook.Account, tx bankbook.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s Receipt\n\n", tx.Kind)
	fmt.Fprintf(&b, "- Date: %s\n", tx.Time)
	fmt.Fprintf(&b, "- Account: %s\n", tx.AccountID)
	fmt.Fprintf(&b, "- Amount: %s\n", tx.Amount)
	fmt.Fprintf(&b, "- Remaining: %s\n\n", a.Balance())
	b.WriteString("Thank you for banking with us!\n")
	return b.String()
}
