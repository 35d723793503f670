package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook"
	"github.com/google/subcommands"
)

type depositCmd struct {
	id       string
	amount   string
	password string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit funds into an account" }
func (*depositCmd) Usage() string {
	return `bb deposit -id <account> -amount <amount> [-password <password>]

  Logs in, deposits the amount, and prints the new balance. The deposit is
  recorded in the transaction log.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account number.")
	f.StringVar(&c.amount, "amount", "", "Amount to deposit (must be positive).")
	f.StringVar(&c.password, "password", "", "Account password (prompted when omitted).")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -amount are required.")
		return subcommands.ExitUsageError
	}
	amount, err := bankbook.ParseAmount(c.amount, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	svc, err := login(c.id, c.password, bufio.NewReader(os.Stdin))
	if err != nil {
		printError("%v", err)
		return subcommands.ExitFailure
	}
	defer svc.Logout()

	balance, err := svc.Deposit(amount)
	if err != nil {
		printError("%v", err)
		return subcommands.ExitFailure
	}
	printSuccess("Deposit successful! Current balance: %s", balance)
	return subcommands.ExitSuccess
}
