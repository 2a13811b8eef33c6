package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
)

// Whoami prints the current session state: the cached profile if hydrated,
// otherwise whatever can be said from the token alone.
func (a *App) Whoami() {
	snap := a.session.Snapshot()

	if !snap.SignedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}

	if snap.User == nil {
		fmt.Fprintln(a.out, "Signed in (profile not loaded, try 'refresh').")
	} else {
		u := snap.User
		fmt.Fprintf(a.out, "%s\n", color.CyanString(u.DisplayName()))
		fmt.Fprintf(a.out, "  phone:    %s\n", u.Phone)
		fmt.Fprintf(a.out, "  email:    %s\n", u.Email)
		fmt.Fprintf(a.out, "  verified: %t\n", u.Verified)
		if len(u.Roles) > 0 {
			fmt.Fprintf(a.out, "  roles:    %s\n", strings.Join(u.Roles, ", "))
		}
		if u.PayoutPhone != "" {
			fmt.Fprintf(a.out, "  payout:   %s (%s)\n", u.PayoutPhone, u.PayoutName)
		}
		if len(u.Documents) > 0 {
			fmt.Fprintf(a.out, "  documents: %d on file\n", len(u.Documents))
		}
	}

	if exp := tokenExpiry(snap.Token); !exp.IsZero() {
		fmt.Fprintf(a.out, "  session expires: %s\n", exp.Local().Format(time.RFC1123))
	}
}

// tokenExpiry best-effort decodes the exp claim of the bearer token for
// display. The token stays opaque to session logic; no signature check is
// done or needed here. Returns the zero time when the token is not a JWT or
// carries no expiry.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
