package rest

import "time"

// BadgeResponse carries a display label plus its color for list views.
type BadgeResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type DictionaryItemResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type AmenityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type PriceResponse struct {
	ID            int64   `json:"id"`
	Purpose       string  `json:"purpose"`
	PurposeLabel  string  `json:"purpose_label"`
	Value         string  `json:"value"`
	Formatted     string  `json:"formatted"`
	MinNights     *int    `json:"min_nights,omitempty"`
	CleaningFee   *string `json:"cleaning_fee,omitempty"`
	GuestCapacity *int    `json:"guest_capacity,omitempty"`
}

type PhotoResponse struct {
	ID        int64  `json:"id"`
	ImagePath string `json:"image_path"`
	Caption   string `json:"caption,omitempty"`
	IsCover   bool   `json:"is_cover"`
	SortOrder int    `json:"sort_order"`
}

// PropertyCardResponse is the listing-card shape: enough to render a
// result tile without a second request.
type PropertyCardResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Type         string          `json:"type"`
	TypeLabel    string          `json:"type_label"`
	Street       string          `json:"street"`
	Neighborhood string          `json:"neighborhood"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	GarageSpots  int             `json:"garage_spots"`
	UsableArea   *float64        `json:"usable_area"`
	CoverPhoto   *PhotoResponse  `json:"cover_photo"`
	PhotosCount  int             `json:"photos_count"`
	Prices       []PriceResponse `json:"prices"`
	PriceSummary string          `json:"price_summary"`
	IsNew        bool            `json:"is_new"`
	CreatedAt    time.Time       `json:"created_at"`
}

type PaginatedPropertiesResponse struct {
	Data           []PropertyCardResponse `json:"data"`
	Total          int                    `json:"total"`
	Page           int                    `json:"page"`
	TotalPages     int                    `json:"total_pages"`
	PerPage        int                    `json:"per_page"`
	AppliedFilters map[string]interface{} `json:"applied_filters"`
}

type HomePageResponse struct {
	Featured []PropertyCardResponse   `json:"featured"`
	Cities   []string                 `json:"cities"`
	Types    []DictionaryItemResponse `json:"types"`
}

type PropertyResponse struct {
	ID               int64           `json:"id"`
	OwnerID          string          `json:"owner_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Type             string          `json:"type"`
	TypeLabel        string          `json:"type_label"`
	Status           string          `json:"status"`
	Street           string          `json:"street"`
	Neighborhood     string          `json:"neighborhood"`
	City             string          `json:"city"`
	State            string          `json:"state"`
	PostalCode       string          `json:"postal_code"`
	Latitude         *float64        `json:"latitude"`
	Longitude        *float64        `json:"longitude"`
	UsableArea       *float64        `json:"usable_area"`
	TotalArea        *float64        `json:"total_area"`
	Bedrooms         int             `json:"bedrooms"`
	Suites           int             `json:"suites"`
	Bathrooms        int             `json:"bathrooms"`
	GarageSpots      int             `json:"garage_spots"`
	Floor            string          `json:"floor,omitempty"`
	YearBuilt        *int            `json:"year_built"`
	Furnishing       string          `json:"furnishing"`
	PetFriendly      bool            `json:"pet_friendly"`
	AcceptsFinancing bool            `json:"accepts_financing"`
	CondoFee         *string         `json:"condo_fee"`
	CondoFeeDisplay  string          `json:"condo_fee_display,omitempty"`
	Tax              *string         `json:"tax"`
	TaxDisplay       string          `json:"tax_display,omitempty"`
	Amenities        []AmenityResponse `json:"amenities"`
	Prices           []PriceResponse `json:"prices"`
	Photos           []PhotoResponse `json:"photos"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type PropertyDetailsResponse struct {
	Property        PropertyResponse       `json:"property"`
	Similar         []PropertyCardResponse `json:"similar"`
	WhatsAppMessage string                 `json:"whatsapp_message"`
}

// LeadRequest is the public lead-capture payload; it is validated
// against the lead-submission JSON schema before decoding.
type LeadRequest struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone"`
	InterestPurpose string  `json:"interest_purpose,omitempty"`
	MaxBudget       *string `json:"max_budget,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	PropertyID      *int64  `json:"property_id,omitempty"`
	Origin          string  `json:"origin,omitempty"`
}

type LeadResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// --- Admin DTOs ---

// AdminPropertyRowResponse is the decorated admin list row.
type AdminPropertyRowResponse struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	TypeBadge    BadgeResponse `json:"type_badge"`
	StatusBadge  BadgeResponse `json:"status_badge"`
	PhotosBadge  BadgeResponse `json:"photos_badge"`
	PriceSummary string        `json:"price_summary"`
	City         string        `json:"city"`
	CreatedAt    time.Time     `json:"created_at"`
}

type AdminPropertyListResponse struct {
	Data  []AdminPropertyRowResponse `json:"data"`
	Total int                        `json:"total"`
}

type PropertyRequest struct {
	OwnerID          string   `json:"owner_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Status           string   `json:"status"`
	Street           string   `json:"street"`
	Neighborhood     string   `json:"neighborhood"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	PostalCode       string   `json:"postal_code"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	UsableArea       *float64 `json:"usable_area"`
	TotalArea        *float64 `json:"total_area"`
	Bedrooms         int      `json:"bedrooms"`
	Suites           int      `json:"suites"`
	Bathrooms        int      `json:"bathrooms"`
	GarageSpots      int      `json:"garage_spots"`
	Floor            string   `json:"floor"`
	YearBuilt        *int     `json:"year_built"`
	Furnishing       string   `json:"furnishing"`
	PetFriendly      bool     `json:"pet_friendly"`
	AcceptsFinancing bool     `json:"accepts_financing"`
	CondoFee         *string  `json:"condo_fee"`
	Tax              *string  `json:"tax"`
	AmenityIDs       []int64  `json:"amenity_ids"`

	// Nested rows saved in the same transaction as the property.
	Prices []PriceRequest `json:"prices"`
	Photos []PhotoRequest `json:"photos"`
}

type PriceRequest struct {
	Purpose       string  `json:"purpose"`
	Value         string  `json:"value"`
	MinNights     *int    `json:"min_nights"`
	CleaningFee   *string `json:"cleaning_fee"`
	GuestCapacity *int    `json:"guest_capacity"`
}

type PhotoRequest struct {
	ImagePath string `json:"image_path"`
	Caption   string `json:"caption"`
	IsCover   bool   `json:"is_cover"`
	SortOrder int    `json:"sort_order"`
}

type OwnerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type OwnerResponse struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PropertyCount int       `json:"property_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type OwnerListResponse struct {
	Data  []OwnerResponse `json:"data"`
	Total int             `json:"total"`
}

type ClientRequest struct {
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Status              string     `json:"status"`
	Origin              string     `json:"origin"`
	InterestPurpose     string     `json:"interest_purpose"`
	MaxBudget           *string    `json:"max_budget"`
	Notes               string     `json:"notes"`
	InterestPropertyIDs []int64    `json:"interest_property_ids"`
	LastContactAt       *time.Time `json:"last_contact_at"`
}

type ClientResponse struct {
	ID                  int64      `json:"id"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Status              string     `json:"status"`
	Origin              string     `json:"origin"`
	InterestPurpose     string     `json:"interest_purpose"`
	MaxBudget           *string    `json:"max_budget"`
	Notes               string     `json:"notes"`
	InterestPropertyIDs []int64    `json:"interest_property_ids"`
	LastContactAt       *time.Time `json:"last_contact_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// AdminClientRowResponse is the decorated CRM list row.
type AdminClientRowResponse struct {
	ID               int64         `json:"id"`
	FullName         string        `json:"full_name"`
	Phone            string        `json:"phone"`
	StatusBadge      BadgeResponse `json:"status_badge"`
	OriginIconClass  string        `json:"origin_icon_class"`
	OriginLabel      string        `json:"origin_label"`
	BudgetDisplay    string        `json:"budget_display"`
	LastContactBadge BadgeResponse `json:"last_contact_badge"`
	InterestCount    int           `json:"interest_count"`
}

type AdminClientListResponse struct {
	Data  []AdminClientRowResponse `json:"data"`
	Total int                      `json:"total"`
}

type AmenityRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type BulkStatusRequest struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

type BulkIDsRequest struct {
	IDs []int64 `json:"ids"`
}

type BulkResultResponse struct {
	Affected int64 `json:"affected"`
}
