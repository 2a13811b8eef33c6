package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/vanda-app/vanda-client/internal/client/models"
	"github.com/vanda-app/vanda-client/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a phone number and password and signs in through the
// session manager.
//
// A rejection from the backend is shown inline (the message comes from the
// server verbatim) and leaves the session untouched; the user can simply
// retry. A degraded login (credential accepted, profile fetch failed) still
// counts as signed in. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, phone, password); err != nil {
		fmt.Fprintln(a.out, color.RedString("Login failed: %s", err.Error()))
		return nil
	}

	snap := a.session.Snapshot()
	if snap.User != nil {
		fmt.Fprintln(a.out, color.GreenString("Welcome back, %s!", snap.User.DisplayName()))
	} else {
		fmt.Fprintln(a.out, color.GreenString("Signed in."))
	}
	return nil
}

// Logout signs the user out. It cannot fail.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
}

// Register prompts for account details and creates a new account, then
// signs in with the same credentials.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Password:  string(password),
	}
	if err := a.api.Register(ctx, req); err != nil {
		fmt.Fprintln(a.out, color.RedString("Registration failed: %s", err.Error()))
		return nil
	}

	fmt.Fprintln(a.out, color.GreenString("Account created."))

	if err := a.session.Login(ctx, phone, password); err != nil {
		fmt.Fprintln(a.out, "Sign in with your new account using 'login'.")
	}
	return nil
}

// Refresh refetches the cached profile. Failures are absorbed by the
// session manager; the command just reports the resulting state.
func (a *App) Refresh(ctx context.Context) {
	a.session.RefreshUser(ctx)
	if u := a.session.Snapshot().User; u != nil {
		fmt.Fprintf(a.out, "Profile refreshed for %s.\n", u.DisplayName())
	} else {
		fmt.Fprintln(a.out, "No profile available.")
	}
}
