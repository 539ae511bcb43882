package domain

// SearchFilters is the typed form of the public listing query string.
// Pointers distinguish "not provided" from a real value; the REST layer
// applies the ignore-on-parse-failure policy before this struct is built,
// so a non-nil numeric field is always > 0 here.
type SearchFilters struct {
	Query        string
	Purpose      string
	Type         string
	City         string
	Neighborhood string

	MinBedrooms   *int
	MinBathrooms  *int
	MinGarage     *int
	MinUsableArea *float64

	PriceMin *float64
	PriceMax *float64

	Furnishing string

	// These filter only when true; a false value means "not provided".
	PetFriendly      bool
	AcceptsFinancing bool
	HasPhotos        bool

	// A matching property must have every listed amenity.
	AmenityIDs []int64

	Sort SortOrder
}

type SortOrder string

const (
	SortLowestPrice  SortOrder = "preco_menor"
	SortHighestPrice SortOrder = "preco_maior"
	SortNewest       SortOrder = "mais_recentes"
	SortLargestArea  SortOrder = "maior_area"
	// SortRelevance is the default: newest created, then newest updated.
	SortRelevance SortOrder = "relevancia"
)

// NormalizeSort maps an arbitrary request value onto a known sort order,
// falling back to relevance.
func NormalizeSort(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortLowestPrice, SortHighestPrice, SortNewest, SortLargestArea:
		return SortOrder(raw)
	default:
		return SortRelevance
	}
}

// PageSize is the fixed public listing page size.
const PageSize = 12

type PaginatedProperties struct {
	Properties  []Property
	TotalCount  int
	CurrentPage int
	TotalPages  int
	PerPage     int
}

// ClampPage snaps an out-of-range page number to the nearest valid page.
// An empty result set still has one (empty) page.
func ClampPage(page, totalCount, perPage int) int {
	totalPages := TotalPages(totalCount, perPage)
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func TotalPages(totalCount, perPage int) int {
	if totalCount <= 0 || perPage <= 0 {
		return 1
	}
	pages := (totalCount + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// DictionaryItem is one entry of an enum dictionary exposed to clients.
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}

// HomePage is what the dashboard endpoint returns.
type HomePage struct {
	Featured []Property
	Cities   []string
	Types    []DictionaryItem
}

// PropertyDetails is the detail view: the property itself plus up to four
// similar active properties (same type and city).
type PropertyDetails struct {
	Property        Property
	Similar         []Property
	WhatsAppMessage string
}
