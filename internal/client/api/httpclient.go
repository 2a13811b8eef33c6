package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/vanda-app/vanda-client/internal/client/models"
)

// HTTPClient talks to the VANDA REST backend. All request bodies and
// responses are JSON; authenticated endpoints carry the bearer token in the
// Authorization header.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a client for the backend at baseURL
// (e.g. "https://api.vanda.app"). The underlying http.Client is used as-is;
// pass one with a Timeout configured.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: baseURL, http: hc}
}

func (c *HTTPClient) Close() error { return nil }

// errorBody is the backend's error envelope. Handlers are inconsistent
// about the key, so both are tried.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// extractMessage pulls a displayable message out of an error response body,
// falling back to the HTTP status text.
func extractMessage(statusCode int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return http.StatusText(statusCode)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do executes the request and decodes a 2xx JSON response into out (out may
// be nil). Network-level failures map to ErrUnavailable; non-2xx responses
// are returned as *statusError for the caller to map.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{code: resp.StatusCode, message: extractMessage(resp.StatusCode, body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.code, e.message)
}

type loginResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges phone+password for a bearer token. Any rejection
// by the backend becomes an *AuthError with the backend's message.
func (c *HTTPClient) Authenticate(ctx context.Context, phone string, password []byte) (string, error) {
	payload := map[string]string{"phone": phone, "password": string(password)}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", "", payload)
	if err != nil {
		return "", err
	}

	var lr loginResponse
	if err := c.do(req, &lr); err != nil {
		var se *statusError
		if errors.As(err, &se) {
			return "", &AuthError{Message: se.message}
		}
		return "", err
	}
	if lr.Token == "" {
		return "", &AuthError{Message: "empty token in response"}
	}
	return lr.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, r models.RegisterRequest) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/register", "", r)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		var se *statusError
		if errors.As(err, &se) {
			return &AuthError{Message: se.message}
		}
		return err
	}
	return nil
}

// FetchProfile returns the account profile for the given token. Every
// failure mode collapses into ErrProfileUnavailable; the session layer does
// not distinguish further.
func (c *HTTPClient) FetchProfile(ctx context.Context, token string) (*models.Profile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/users/me", token, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	var p models.Profile
	if err := c.do(req, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	return &p, nil
}

func (c *HTTPClient) Listings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	q := url.Values{}
	if filter.City != "" {
		q.Set("city", filter.City)
	}
	if filter.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatInt(filter.MinPrice, 10))
	}
	if filter.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatInt(filter.MaxPrice, 10))
	}
	if filter.Guests > 0 {
		q.Set("guests", strconv.Itoa(filter.Guests))
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(filter.PageSize))
	}

	path := "/api/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var listings []models.Listing
	if err := c.do(req, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *HTTPClient) Listing(ctx context.Context, id int64) (*models.Listing, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/listings/"+strconv.FormatInt(id, 10), "", nil)
	if err != nil {
		return nil, err
	}

	var l models.Listing
	if err := c.do(req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateBooking reserves a listing. The request carries an Idempotency-Key
// so a retried submission cannot double-book.
func (c *HTTPClient) CreateBooking(ctx context.Context, token string, r models.BookingRequest) (*models.Booking, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/bookings", token, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Idempotency-Key", uuid.NewString())

	var b models.Booking
	if err := c.do(req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) Bookings(ctx context.Context, token string) ([]models.Booking, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/bookings", token, nil)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := c.do(req, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *HTTPClient) CancelBooking(ctx context.Context, token string, id int64) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/bookings/"+strconv.FormatInt(id, 10)+"/cancel", token, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// InitiatePayment starts payment for a booking and returns the provider
// reference plus checkout URL. Idempotency-Key prevents double charges on
// resubmission.
func (c *HTTPClient) InitiatePayment(ctx context.Context, token string, r models.PaymentRequest) (*models.Payment, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/payments/initiate", token, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Idempotency-Key", uuid.NewString())

	var p models.Payment
	if err := c.do(req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) RequestDocumentUpload(ctx context.Context, token string, fileName string) (*DocumentUploadTicket, error) {
	payload := map[string]string{"fileName": fileName}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/documents/upload-url", token, payload)
	if err != nil {
		return nil, err
	}

	var t DocumentUploadTicket
	if err := c.do(req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UploadDocument PUTs the file contents to a pre-signed URL issued by
// RequestDocumentUpload. No auth header: the URL itself carries the grant.
func (c *HTTPClient) UploadDocument(ctx context.Context, uploadURL string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload failed: http %d", resp.StatusCode)
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)
