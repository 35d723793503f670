package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/etnz/bankbook"
	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

// menuCmd runs the interactive session loop. It is the only command that
// keeps a session alive across several operations.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive banking menu" }
func (*menuCmd) Usage() string {
	return `bb menu

  Runs an interactive session: create accounts, log in, deposit, withdraw,
  and review transaction history from a menu loop.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (m *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := NewService()
	in := bufio.NewReader(os.Stdin)
	for {
		var quit bool
		var err error
		if svc.CurrentAccount() != nil {
			quit, err = m.loggedInMenu(svc, in)
		} else {
			quit, err = m.mainMenu(svc, in)
		}
		if errors.Is(err, io.EOF) {
			return subcommands.ExitSuccess
		}
		if err != nil {
			printError("%v", err)
		}
		if quit {
			printInfo("Thank you for using bankbook. Goodbye!")
			return subcommands.ExitSuccess
		}
	}
}

func (m *menuCmd) mainMenu(svc *bankbook.Service, in *bufio.Reader) (quit bool, err error) {
	printMarkdown("# MAIN MENU\n\n1. Create Account\n2. Login\n3. Exit\n")
	choice, err := readLine(in, "Enter your choice: ")
	if err != nil {
		return false, err
	}
	switch choice {
	case "1":
		return false, m.createAccount(svc, in)
	case "2":
		return false, m.login(svc, in)
	case "3":
		return true, nil
	default:
		printError("Invalid choice. Please try again.")
		return false, nil
	}
}

func (m *menuCmd) loggedInMenu(svc *bankbook.Service, in *bufio.Reader) (quit bool, err error) {
	printMarkdown(renderer.AccountSummary(svc.CurrentAccount()))
	printMarkdown("1. Deposit Funds\n2. Withdraw Funds\n3. View Transaction History\n4. Logout\n")
	choice, err := readLine(in, "Enter your choice: ")
	if err != nil {
		return false, err
	}
	switch choice {
	case "1":
		return false, m.mutate(svc, in, "Enter amount to deposit: ", (*bankbook.Service).Deposit)
	case "2":
		return false, m.mutate(svc, in, "Enter amount to withdraw: ", (*bankbook.Service).Withdraw)
	case "3":
		txs, err := svc.TransactionHistory()
		if err != nil {
			return false, err
		}
		printMarkdown(renderer.History(svc.CurrentAccount(), txs))
		return false, nil
	case "4":
		svc.Logout()
		printSuccess("Logged out successfully!")
		return false, nil
	default:
		printError("Invalid choice. Please try again.")
		return false, nil
	}
}

func (m *menuCmd) createAccount(svc *bankbook.Service, in *bufio.Reader) error {
	name, err := readLine(in, "Enter your name: ")
	if err != nil {
		return err
	}
	rawAmount, err := readLine(in, "Enter your initial deposit: ")
	if err != nil {
		return err
	}
	amount, err := bankbook.ParseAmount(rawAmount, *currency)
	if err != nil {
		printError("Please enter a valid amount.")
		return nil
	}
	password, err := readPassword(in, "Create a password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword(in, "Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		printError("Passwords don't match!")
		return nil
	}
	account, err := svc.CreateAccount(name, amount, password)
	if err != nil {
		return err
	}
	printSuccess("Account created successfully!")
	printInfo("Your account number: %s", account.ID())
	printWarning("Please save this number for login.")
	return nil
}

func (m *menuCmd) login(svc *bankbook.Service, in *bufio.Reader) error {
	id, err := readLine(in, "Enter your account number: ")
	if err != nil {
		return err
	}
	password, err := readPassword(in, "Enter your password: ")
	if err != nil {
		return err
	}
	if err := svc.Login(id, password); err != nil {
		return err
	}
	printSuccess("Login successful!")
	return nil
}

// mutate reads an amount and applies one balance mutation on the session.
func (m *menuCmd) mutate(svc *bankbook.Service, in *bufio.Reader, prompt string, op func(*bankbook.Service, bankbook.Money) (bankbook.Money, error)) error {
	rawAmount, err := readLine(in, prompt)
	if err != nil {
		return err
	}
	amount, err := bankbook.ParseAmount(rawAmount, *currency)
	if err != nil {
		printError("Please enter a valid amount.")
		return nil
	}
	balance, err := op(svc, amount)
	if err != nil {
		return err
	}
	printSuccess("Operation successful! Current balance: %s", balance)
	return nil
}
