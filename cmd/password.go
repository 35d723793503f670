package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bankbook"
	"golang.org/x/term"
)

// readPassword prompts for a password without echoing when stdin is a
// terminal, and falls back to a plain line read from in otherwise.
func readPassword(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLine prompts and reads one trimmed line from in.
func readLine(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// login authenticates against the app record files and returns a service
// with an active session. An empty password is prompted for.
func login(id, password string, in *bufio.Reader) (*bankbook.Service, error) {
	if password == "" {
		p, err := readPassword(in, "Enter your password: ")
		if err != nil {
			return nil, err
		}
		password = p
	}
	svc := NewService()
	if err := svc.Login(id, password); err != nil {
		return nil, err
	}
	verbosef("logged in as %s", id)
	return svc, nil
}
