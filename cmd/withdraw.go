package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook"
	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	id       string
	amount   string
	password string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw funds from an account" }
func (*withdrawCmd) Usage() string {
	return `bb withdraw -id <account> -amount <amount> [-password <password>]

  Logs in, withdraws the amount, and prints a receipt. Fails when the
  amount exceeds the balance.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account number.")
	f.StringVar(&c.amount, "amount", "", "Amount to withdraw (must be positive).")
	f.StringVar(&c.password, "password", "", "Account password (prompted when omitted).")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	balance, err := svc.Withdraw(amount)
	if err != nil {
		printError("%v", err)
		return subcommands.ExitFailure
	}
	printSuccess("Withdrawal successful! Current balance: %s", balance)
	account := svc.CurrentAccount()
	printMarkdown(renderer.Receipt(account, bankbook.NewWithdrawal(account.ID(), amount, bankbook.Now())))
	return subcommands.ExitSuccess
}
