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

type createCmd struct {
	name     string
	deposit  string
	password string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new bank account" }
func (*createCmd) Usage() string {
	return `bb create -name <name> -deposit <amount> [-password <password>]

  Creates a new account with an initial deposit and prints the new account
  number. The password is prompted for when the flag is omitted.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account holder display name.")
	f.StringVar(&c.deposit, "deposit", "", "Initial deposit amount (must be positive).")
	f.StringVar(&c.password, "password", "", "Account password (prompted when omitted).")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.deposit == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -deposit are required.")
		return subcommands.ExitUsageError
	}
	amount, err := bankbook.ParseAmount(c.deposit, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing deposit: %v\n", err)
		return subcommands.ExitUsageError
	}

	password := c.password
	if password == "" {
		in := bufio.NewReader(os.Stdin)
		p, err := readPassword(in, "Create a password: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		confirm, err := readPassword(in, "Confirm password: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if p != confirm {
			printError("Passwords don't match!")
			return subcommands.ExitFailure
		}
		password = p
	}

	account, err := NewService().CreateAccount(c.name, amount, password)
	if err != nil {
		printError("%v", err)
		return subcommands.ExitFailure
	}
	printSuccess("Account created successfully!")
	printInfo("Your account number: %s", account.ID())
	printWarning("Please save this number for login.")
	return subcommands.ExitSuccess
}
