package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/vanda-app/vanda-client/internal/client/models"
)

// Pay initiates payment for a booking: "pay <booking-id> [momo|card]".
// The backend returns a checkout URL the user finishes payment at.
func (a *App) Pay(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(a.out, "Usage: pay <booking-id> [momo|card]")
		return nil
	}
	bookingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: pay <booking-id> [momo|card]")
		return nil
	}

	method := "momo"
	if len(args) == 2 {
		method = args[1]
	}
	if method != "momo" && method != "card" {
		fmt.Fprintln(a.out, "Payment method must be 'momo' or 'card'.")
		return nil
	}

	token := a.session.Snapshot().Token
	payment, err := a.api.InitiatePayment(ctx, token, models.PaymentRequest{
		BookingID: bookingID,
		Method:    method,
	})
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("Payment initiation failed: %s", err.Error()))
		return nil
	}

	fmt.Fprintln(a.out, color.GreenString("Payment %s initiated (%d %s).",
		payment.Reference, payment.Amount, payment.Currency))
	if payment.CheckoutURL != "" {
		fmt.Fprintf(a.out, "Complete payment at: %s\n", payment.CheckoutURL)
	}
	return nil
}
