package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vanda-app/vanda-client/internal/client/models"
)

// Listings queries and renders available properties. An optional argument
// filters by city: "listings Douala".
func (a *App) Listings(ctx context.Context, args []string) error {
	filter := models.ListingFilter{PageSize: 20}
	if len(args) > 0 {
		filter.City = args[0]
	}

	listings, err := a.api.Listings(ctx, filter)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		fmt.Fprintln(a.out, "No listings found.")
		return nil
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"ID", "Title", "City", "Price/Night", "Guests", "Rating"})
	for _, l := range listings {
		table.Append([]string{
			strconv.FormatInt(l.ID, 10),
			l.Title,
			l.City,
			fmt.Sprintf("%d %s", l.PricePerNight, l.Currency),
			strconv.Itoa(l.MaxGuests),
			fmt.Sprintf("%.1f (%d)", l.Rating, l.ReviewCount),
		})
	}
	table.Render()
	return nil
}

// Listing shows one property in detail: "listing 7".
func (a *App) Listing(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: listing <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: listing <id>")
		return nil
	}

	l, err := a.api.Listing(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (#%d)\n", l.Title, l.ID)
	fmt.Fprintf(a.out, "  %s, %s\n", l.Neighborhood, l.City)
	fmt.Fprintf(a.out, "  %d %s per night, up to %d guests\n", l.PricePerNight, l.Currency, l.MaxGuests)
	fmt.Fprintf(a.out, "  %d bedrooms, %d bathrooms\n", l.Bedrooms, l.Bathrooms)
	if len(l.Amenities) > 0 {
		fmt.Fprintf(a.out, "  amenities: %s\n", strings.Join(l.Amenities, ", "))
	}
	if l.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", l.Description)
	}
	return nil
}
