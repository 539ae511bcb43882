package domain

import (
	"time"

	"github.com/google/uuid"
)

// Monetary amounts are carried as the decimal text the database stores
// (pgx scans NUMERIC into string). Formatting and the "Valor inválido"
// fallback live in the presenter; nothing in the core parses money.

type Owner struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time

	// PropertyCount is filled by list queries for the admin view.
	PropertyCount int
}

type Amenity struct {
	ID   int64
	Name string
	Icon string
}

type Price struct {
	ID         int64
	PropertyID int64
	Purpose    Purpose
	Value      string

	// Seasonal-only fields.
	MinNights     *int
	CleaningFee   *string
	GuestCapacity *int
}

type Photo struct {
	ID         int64
	PropertyID int64
	ImagePath  string
	Caption    string
	IsCover    bool
	SortOrder  int
	CreatedAt  time.Time
}

type Property struct {
	ID          int64
	OwnerID     uuid.UUID
	Title       string
	Description string
	Type        PropertyType
	Status      PropertyStatus

	Street       string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	Latitude     *float64
	Longitude    *float64
	// Geohash cell (precision 5) derived from the coordinates on save,
	// empty when the property has no coordinates.
	Geohash string

	UsableArea  *float64
	TotalArea   *float64
	Bedrooms    int
	Suites      int
	Bathrooms   int
	GarageSpots int
	Floor       string
	YearBuilt   *int

	Furnishing       Furnishing
	PetFriendly      bool
	AcceptsFinancing bool

	CondoFee *string
	Tax      *string

	Amenities []Amenity
	Prices    []Price
	Photos    []Photo

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Property) HasPhotos() bool {
	return len(p.Photos) > 0
}

// CoverPhoto returns the photo flagged as cover, or the first photo in
// display order when no flag is set. Nil when the property has no photos.
func (p *Property) CoverPhoto() *Photo {
	for i := range p.Photos {
		if p.Photos[i].IsCover {
			return &p.Photos[i]
		}
	}
	if len(p.Photos) > 0 {
		return &p.Photos[0]
	}
	return nil
}

const recentlyPublishedWindow = 7 * 24 * time.Hour

func (p *Property) RecentlyPublished(now time.Time) bool {
	return !p.CreatedAt.Before(now.Add(-recentlyPublishedWindow))
}

type Client struct {
	ID       int64
	FullName string
	Email    string
	Phone    string

	Status ClientStatus
	Origin ContactOrigin

	InterestPurpose string
	MaxBudget       *string
	Notes           string

	InterestPropertyIDs []int64

	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastContactAt *time.Time
}

func (c *Client) InterestCount() int {
	return len(c.InterestPropertyIDs)
}
