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

type historyCmd struct {
	id       string
	password string
	head     int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list an account's transactions, newest first" }
func (*historyCmd) Usage() string {
	return `bb history -id <account> [-password <password>] [-head <n>]

  Logs in and lists the account's transactions, newest first, with options
  for limiting the output.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account number.")
	f.StringVar(&c.password, "password", "", "Account password (prompted when omitted).")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	txs, err := svc.TransactionHistory()
	if err != nil {
		printError("%v", err)
		return subcommands.ExitFailure
	}
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	printMarkdown(renderer.History(svc.CurrentAccount(), txs))
	return subcommands.ExitSuccess
}
