package models

// Listing is a property available for short-term rental.
type Listing struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	City          string   `json:"city"`
	Neighborhood  string   `json:"neighborhood"`
	PricePerNight int64    `json:"pricePerNight"`
	Currency      string   `json:"currency"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	MaxGuests     int      `json:"maxGuests"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Amenities     []string `json:"amenities"`
	PhotoURLs     []string `json:"photoUrls"`
	HostID        int64    `json:"hostId"`
	Description   string   `json:"description"`
}

// ListingFilter narrows a listings query. Zero values mean "no constraint".
type ListingFilter struct {
	City     string
	MinPrice int64
	MaxPrice int64
	Guests   int
	Page     int
	PageSize int
}
