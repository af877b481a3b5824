// Command passwd generates an argon2id password hash for the users file.
// It prompts for the password twice without echo and prints the PHC-encoded
// hash to stdout, ready to paste into the "password" field of a user record.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/azarovs/forumd/internal/cryptox"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	password, err := prompt("Password: ")
	if err != nil {
		return err
	}

	confirm, err := prompt("Confirm: ")
	if err != nil {
		return err
	}

	if string(password) != string(confirm) {
		return errors.New("mismatching passwords")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}

func prompt(label string) ([]byte, error) {
	fmt.Print(label)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, err
	}
	return pw, nil
}
