package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	switch {
	case snap.Initializing:
		return "(starting)"
	case snap.User != nil:
		return fmt.Sprintf("(%s)", snap.User.DisplayName())
	case snap.SignedIn():
		return "(signed in)"
	default:
		return ""
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	fmt.Fprintln(a.out, "Welcome to VANDA (type 'help' for commands)")

	a.session.Bootstrap(ctx)
	if snap := a.session.Snapshot(); snap.User != nil {
		fmt.Fprintf(a.out, "Signed in as %s.\n", snap.User.DisplayName())
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "vanda %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if err := a.dispatch(ctx, cmd, args); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}

		if cmd == "exit" {
			return
		}
	}
}

// dispatch routes one REPL command. Commands needing a session check
// isLoggedIn first so the hint stays consistent.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
		return nil

	case "login":
		return a.Login(ctx)

	case "register":
		return a.Register(ctx)

	case "listings":
		return a.Listings(ctx, args)

	case "listing":
		return a.Listing(ctx, args)

	case "logout":
		if !a.requireLogin() {
			return nil
		}
		a.Logout(ctx)
		return nil

	case "whoami":
		a.Whoami()
		return nil

	case "refresh":
		if !a.requireLogin() {
			return nil
		}
		a.Refresh(ctx)
		return nil

	case "book":
		if !a.requireLogin() {
			return nil
		}
		return a.Book(ctx, args)

	case "bookings":
		if !a.requireLogin() {
			return nil
		}
		return a.Bookings(ctx)

	case "cancel":
		if !a.requireLogin() {
			return nil
		}
		return a.Cancel(ctx, args)

	case "pay":
		if !a.requireLogin() {
			return nil
		}
		return a.Pay(ctx, args)

	case "upload":
		if !a.requireLogin() {
			return nil
		}
		return a.Upload(ctx, args)

	case "exit":
		return nil

	default:
		fmt.Fprintf(a.out, "Unknown command %q, type 'help'.\n", cmd)
		return nil
	}
}

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first with 'login'.")
		return false
	}
	return true
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: listings, listing <id>, book <listing-id>, bookings, cancel <id>, pay <booking-id>, upload <path>, whoami, refresh, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, register, listings, listing <id>, whoami, exit")
	}
}
