package models

// Payment statuses as reported by the backend.
const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
)

// Payment is the result of initiating payment for a booking. The client
// hands the checkout URL to the user; settlement happens entirely on the
// provider side.
type Payment struct {
	Reference   string `json:"reference"`
	BookingID   int64  `json:"bookingId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkoutUrl"`
}

// PaymentRequest is the payload for initiating payment of a booking.
type PaymentRequest struct {
	BookingID int64  `json:"bookingId"`
	Method    string `json:"method"` // "momo", "card"
}
