package models

// Booking statuses as reported by the backend.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking is a reservation of a listing for a date range.
type Booking struct {
	ID         int64  `json:"id"`
	ListingID  int64  `json:"listingId"`
	Listing    string `json:"listingTitle"`
	CheckIn    string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut   string `json:"checkOut"` // YYYY-MM-DD
	Guests     int    `json:"guests"`
	TotalPrice int64  `json:"totalPrice"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// BookingRequest is the payload for creating a reservation.
type BookingRequest struct {
	ListingID int64  `json:"listingId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Guests    int    `json:"guests"`
}
