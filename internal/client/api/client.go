// Package api defines the VANDA backend client: the interface consumed by
// application services and its HTTP implementation.
package api

import (
	"context"

	"github.com/vanda-app/vanda-client/internal/client/models"
)

type Client interface {
	Close() error

	// Auth.
	Authenticate(ctx context.Context, phone string, password []byte) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error

	// Profile.
	FetchProfile(ctx context.Context, token string) (*models.Profile, error)

	// Listings.
	Listings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	Listing(ctx context.Context, id int64) (*models.Listing, error)

	// Bookings.
	CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error)
	Bookings(ctx context.Context, token string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, token string, id int64) error

	// Payments.
	InitiatePayment(ctx context.Context, token string, req models.PaymentRequest) (*models.Payment, error)

	// Verification documents.
	RequestDocumentUpload(ctx context.Context, token string, fileName string) (*DocumentUploadTicket, error)
	UploadDocument(ctx context.Context, uploadURL string, data []byte) error
}

// DocumentUploadTicket is the backend's grant to upload one document:
// a pre-signed URL the client PUTs the file to, plus the document id the
// upload will be attached to.
type DocumentUploadTicket struct {
	DocumentID int64  `json:"documentId"`
	UploadURL  string `json:"uploadUrl"`
}
