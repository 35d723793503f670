// Package cmd implements the CLI application to manage the bank book.
package cmd

import (
	"flag"
	"log"
	"os"

	"github.com/etnz/bankbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&balanceCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&historyCmd{}, "transactions")

	c.Register(&menuCmd{}, "")
}

// Environment variables overriding the global flag defaults.
const (
	EnvAccountsFile     = "BB_ACCOUNTS_FILE"
	EnvTransactionsFile = "BB_TRANSACTIONS_FILE"
	EnvCurrency         = "BB_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountsFile = flag.String("accounts-file", envOr(EnvAccountsFile, "accounts.txt"), "Path to the accounts record file")
var transactionsFile = flag.String("transactions-file", envOr(EnvTransactionsFile, "transactions.txt"), "Path to the transaction log file")
var currency = flag.String("currency", envOr(EnvCurrency, "USD"), "Currency code used to display amounts")
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// NewService binds a fresh banking service to the app record files.
func NewService() *bankbook.Service {
	store := bankbook.NewAccountStore(*accountsFile, *currency)
	translog := bankbook.NewTransactionLog(*transactionsFile, *currency)
	return bankbook.NewService(store, translog)
}

// verbosef logs when the -v flag is set.
func verbosef(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}
