// Package models defines the API-facing types of the VANDA backend as seen
// by the client: account profiles, listings, bookings, and payments.
package models

// Document is a verification document attached to an account
// (ID card, proof of ownership, etc.).
type Document struct {
	ID         int64  `json:"id"`
	Kind       string `json:"kind"`
	FileName   string `json:"fileName"`
	Status     string `json:"status"`
	UploadedAt string `json:"uploadedAt"`
}

// Profile is the backend's snapshot of the authenticated account. The client
// caches it in memory and refetches it on demand; it never mutates fields
// locally.
type Profile struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Verified    bool       `json:"verified"`
	PayoutPhone string     `json:"payoutPhone"`
	PayoutName  string     `json:"payoutName"`
	Roles       []string   `json:"roles"`
	Documents   []Document `json:"documents"`
}

// HasRole reports whether the profile carries the given role.
func (p *Profile) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DisplayName returns "First Last", falling back to the phone number when
// the name fields are empty.
func (p *Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	default:
		return p.Phone
	}
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}
