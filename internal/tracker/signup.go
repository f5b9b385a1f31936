package tracker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/moffd234/FlightPriceTracker/internal/domain"
)

// Signup runs the interactive account-creation flow: confirm intent, collect
// name and email, re-prompt until the email is entered the same way twice,
// then append the subscriber row. Declining is not an error.
func (t *Tracker) Signup(ctx context.Context, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	answer, err := prompt(r, out, "Would you like to create an account? yes/no ")
	if err != nil {
		return err
	}
	if answer != "yes" {
		return nil
	}

	firstName, err := prompt(r, out, "What is your first name? ")
	if err != nil {
		return err
	}
	lastName, err := prompt(r, out, "What is your last name? ")
	if err != nil {
		return err
	}

	email, err := prompt(r, out, "What is your email address? ")
	if err != nil {
		return err
	}
	confirm, err := prompt(r, out, "Please re-enter your email address ")
	if err != nil {
		return err
	}
	for email != confirm {
		fmt.Fprintln(out, "Those emails do not match")
		if email, err = prompt(r, out, "What is your email address? "); err != nil {
			return err
		}
		if confirm, err = prompt(r, out, "Please re-enter your email address "); err != nil {
			return err
		}
	}

	sub := domain.Subscriber{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := t.store.AddSubscriber(ctx, sub); err != nil {
		return fmt.Errorf("add subscriber: %w", err)
	}

	fmt.Fprintf(out, "Welcome aboard, %s!\n", sub.FullName())
	return nil
}

func prompt(r *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
