package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	id       string
	password string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show an account summary and current balance" }
func (*balanceCmd) Usage() string {
	return `bb balance -id <account> [-password <password>]

  Logs in and displays the account summary with the current balance.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account number.")
	f.StringVar(&c.password, "password", "", "Account password (prompted when omitted).")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	svc, err := login(c.id, c.password, bufio.NewReader(os.Stdin))
	if err != nil {
		printError("%v", err)
		return subcommands.ExitFailure
	}
	defer svc.Logout()

	printMarkdown(renderer.AccountSummary(svc.CurrentAccount()))
	return subcommands.ExitSuccess
}
