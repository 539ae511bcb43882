package postgres

import (
	"testing"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApplyFiltersEmpty(t *testing.T) {
	q := applyFilters(domain.SearchFilters{})

	assert.Empty(t, q.JoinClause)
	assert.Equal(t, "WHERE p.status = 'ativo'", q.WhereClause)
	assert.Empty(t, q.Args)
	assert.Equal(t, "p.created_at DESC, p.updated_at DESC", q.OrderBy)
}

func TestApplyFiltersTextSearch(t *testing.T) {
	q := applyFilters(domain.SearchFilters{Query: "piscina"})

	assert.Contains(t, q.WhereClause, "p.title ILIKE $1")
	assert.Contains(t, q.WhereClause, "p.description ILIKE $1")
	// A single bind serves all five ILIKE targets
	assert.Equal(t, []interface{}{"%piscina%"}, q.Args)
}

func TestApplyFiltersPriceBoundsJoinSeparately(t *testing.T) {
	q := applyFilters(domain.SearchFilters{
		PriceMin: floatPtr(100000),
		PriceMax: floatPtr(500000),
	})

	// Each bound gets its own join, so min and max may match different
	// price rows of the same property.
	assert.Contains(t, q.JoinClause, "JOIN property_prices pr_min ON pr_min.property_id = p.id")
	assert.Contains(t, q.JoinClause, "JOIN property_prices pr_max ON pr_max.property_id = p.id")
	assert.Contains(t, q.WhereClause, "pr_min.value >= $1")
	assert.Contains(t, q.WhereClause, "pr_max.value <= $2")
	assert.Equal(t, []interface{}{100000.0, 500000.0}, q.Args)
}

func TestApplyFiltersPurposeJoinsPrices(t *testing.T) {
	q := applyFilters(domain.SearchFilters{Purpose: "aluguel"})

	assert.Contains(t, q.JoinClause, "pr_fin ON pr_fin.property_id = p.id")
	assert.Contains(t, q.WhereClause, "pr_fin.purpose = $1")
	assert.Equal(t, []interface{}{"aluguel"}, q.Args)
}

func TestApplyFiltersAmenitiesAndCombined(t *testing.T) {
	q := applyFilters(domain.SearchFilters{AmenityIDs: []int64{4, 9}})

	// One join per amenity id makes the combination an AND
	assert.Contains(t, q.JoinClause, "JOIN property_amenities am_0 ON am_0.property_id = p.id")
	assert.Contains(t, q.JoinClause, "JOIN property_amenities am_1 ON am_1.property_id = p.id")
	assert.Contains(t, q.WhereClause, "am_0.amenity_id = $1")
	assert.Contains(t, q.WhereClause, "am_1.amenity_id = $2")
	assert.Equal(t, []interface{}{int64(4), int64(9)}, q.Args)
}

func TestApplyFiltersNumericMinimums(t *testing.T) {
	q := applyFilters(domain.SearchFilters{
		MinBedrooms:   intPtr(3),
		MinBathrooms:  intPtr(2),
		MinGarage:     intPtr(1),
		MinUsableArea: floatPtr(70),
	})

	assert.Contains(t, q.WhereClause, "p.bedrooms >= $1")
	assert.Contains(t, q.WhereClause, "p.bathrooms >= $2")
	assert.Contains(t, q.WhereClause, "p.garage_spots >= $3")
	assert.Contains(t, q.WhereClause, "p.usable_area >= $4")
	assert.Len(t, q.Args, 4)
}

func TestApplyFiltersFlagsAddNoArgs(t *testing.T) {
	q := applyFilters(domain.SearchFilters{
		PetFriendly:      true,
		AcceptsFinancing: true,
		HasPhotos:        true,
	})

	assert.Contains(t, q.WhereClause, "p.pet_friendly = true")
	assert.Contains(t, q.WhereClause, "p.accepts_financing = true")
	assert.Contains(t, q.JoinClause, "JOIN property_photos ph ON ph.property_id = p.id")
	assert.Empty(t, q.Args)
}

func TestSortClauses(t *testing.T) {
	join, order := sortClause(domain.SortLowestPrice)
	assert.Equal(t, "LEFT JOIN property_prices sp ON sp.property_id = p.id", join)
	assert.Equal(t, "MIN(sp.value) ASC NULLS LAST", order)

	join, order = sortClause(domain.SortHighestPrice)
	assert.NotEmpty(t, join)
	assert.Equal(t, "MAX(sp.value) DESC NULLS LAST", order)

	join, order = sortClause(domain.SortNewest)
	assert.Empty(t, join)
	assert.Equal(t, "p.created_at DESC", order)

	join, order = sortClause(domain.SortLargestArea)
	assert.Empty(t, join)
	assert.Equal(t, "p.usable_area DESC NULLS LAST", order)

	_, order = sortClause(domain.SortRelevance)
	assert.Equal(t, "p.created_at DESC, p.updated_at DESC", order)
}

func TestCountAndDataQueries(t *testing.T) {
	q := applyFilters(domain.SearchFilters{
		City: "Curitiba",
		Sort: domain.SortLowestPrice,
	})

	count := q.CountQuery()
	assert.Contains(t, count, "SELECT COUNT(DISTINCT p.id) FROM properties p")
	assert.Contains(t, count, "LOWER(p.city) = LOWER($1)")
	// The sort join never leaks into the count
	assert.NotContains(t, count, "sp.property_id")

	data := q.DataQuery()
	assert.Contains(t, data, "LEFT JOIN property_prices sp ON sp.property_id = p.id")
	assert.Contains(t, data, "GROUP BY p.id")
	assert.Contains(t, data, "ORDER BY MIN(sp.value) ASC NULLS LAST")
	// LIMIT and OFFSET binds come after the filter args
	assert.Contains(t, data, "LIMIT $2 OFFSET $3")
}
