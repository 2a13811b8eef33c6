package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/vanda-app/vanda-client/internal/client/models"
)

// Book reserves a listing: "book <listing-id>". Dates and guest count are
// prompted interactively.
func (a *App) Book(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: book <listing-id>")
		return nil
	}
	listingID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: book <listing-id>")
		return nil
	}

	checkIn, err := getSimpleText(a.reader, "Check-in date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	checkOut, err := getSimpleText(a.reader, "Check-out date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	guestsStr, err := getSimpleText(a.reader, "Number of guests", a.out)
	if err != nil {
		return err
	}
	guests, err := strconv.Atoi(guestsStr)
	if err != nil || guests < 1 {
		fmt.Fprintln(a.out, "Guest count must be a positive number.")
		return nil
	}

	token := a.session.Snapshot().Token
	booking, err := a.api.CreateBooking(ctx, token, models.BookingRequest{
		ListingID: listingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    guests,
	})
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("Booking failed: %s", err.Error()))
		return nil
	}

	fmt.Fprintln(a.out, color.GreenString("Booking #%d created (%s).", booking.ID, booking.Status))
	fmt.Fprintf(a.out, "Total: %d %s. Use 'pay %d' to complete payment.\n",
		booking.TotalPrice, booking.Currency, booking.ID)
	return nil
}

// Bookings lists the user's reservations.
func (a *App) Bookings(ctx context.Context) error {
	token := a.session.Snapshot().Token

	bookings, err := a.api.Bookings(ctx, token)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings yet.")
		return nil
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"ID", "Listing", "Check-In", "Check-Out", "Guests", "Total", "Status"})
	for _, b := range bookings {
		table.Append([]string{
			strconv.FormatInt(b.ID, 10),
			b.Listing,
			b.CheckIn,
			b.CheckOut,
			strconv.Itoa(b.Guests),
			fmt.Sprintf("%d %s", b.TotalPrice, b.Currency),
			b.Status,
		})
	}
	table.Render()
	return nil
}

// Cancel cancels a reservation: "cancel <booking-id>".
func (a *App) Cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: cancel <booking-id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: cancel <booking-id>")
		return nil
	}

	token := a.session.Snapshot().Token
	if err := a.api.CancelBooking(ctx, token, id); err != nil {
		fmt.Fprintln(a.out, color.RedString("Cancellation failed: %s", err.Error()))
		return nil
	}
	fmt.Fprintf(a.out, "Booking #%d cancelled.\n", id)
	return nil
}
