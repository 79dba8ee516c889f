package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dkoval85/dashterm/internal/client/services"
)

// Field order for rendering validation messages; maps iterate randomly.
var signupFields = []string{"name", "email", "password", "confirm"}

func (a *App) execEntry(ctx context.Context, cmd string) {
	switch cmd {
	case "help":
		printlnFn("Available commands: login, register, exit")
	case "login":
		_ = a.Login(ctx)
	case "register", "signup":
		_ = a.Register(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}

// Login prompts for credentials and tries to authenticate. Invalid
// credentials are reported with a single message regardless of which field
// was wrong. I/O errors are returned unchanged.
func (a *App) Login(ctx context.Context) error {
	if !a.authInFlight.CompareAndSwap(false, true) {
		printlnFn("Another sign-in is already in progress")
		return nil
	}
	defer a.authInFlight.Store(false)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	secret, err := getSecret(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if _, err := a.identity.Login(ctx, email, secret); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			printlnFn("Login failed: invalid email or password")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		printlnFn("Login failed, try again later")
		return nil
	}

	printlnFn("Login successful. Redirecting to dashboard...")
	return nil
}

// Register prompts for the signup fields and attempts to create an account.
// Validation failures are listed per field and leave the form usable; a
// duplicate email is reported the same way. On success the new account is
// already logged in.
func (a *App) Register(ctx context.Context) error {
	if !a.authInFlight.CompareAndSwap(false, true) {
		printlnFn("Another sign-in is already in progress")
		return nil
	}
	defer a.authInFlight.Store(false)

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	secret, err := getSecret(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := getSecret(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	if _, err := a.identity.Register(ctx, name, email, secret, confirm); err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			for _, field := range signupFields {
				if msg, ok := verr.Fields[field]; ok {
					printlnFn(field + ": " + msg)
				}
			}
		case errors.Is(err, services.ErrDuplicateEmail):
			printlnFn("Signup failed: email already in use")
		default:
			a.log.Error(ctx, "signup failed", "error", err)
			printlnFn("Signup failed, try again later")
		}
		return nil
	}

	printlnFn("Account created. Redirecting to dashboard...")
	return nil
}
