package rest

import (
	"net/url"
	"testing"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseSearchFiltersTextParams(t *testing.T) {
	query := url.Values{}
	query.Set("busca", " cobertura ")
	query.Set("tipo", "apartamento")
	query.Set("cidade", "Curitiba")
	query.Set("bairro", "Centro")
	query.Set("finalidade", "venda")
	query.Set("mobilia", "mobiliado")

	filters, page, applied := ParseSearchFilters(query)

	assert.Equal(t, "cobertura", filters.Query)
	assert.Equal(t, "apartamento", filters.Type)
	assert.Equal(t, "Curitiba", filters.City)
	assert.Equal(t, "Centro", filters.Neighborhood)
	assert.Equal(t, "venda", filters.Purpose)
	assert.Equal(t, "mobiliado", filters.Furnishing)
	assert.Equal(t, 1, page)
	assert.Len(t, applied, 6)
}

func TestParseSearchFiltersNoneAndBlankAreAbsent(t *testing.T) {
	query := url.Values{}
	query.Set("cidade", "none")
	query.Set("tipo", "None")
	query.Set("bairro", "   ")
	query.Set("busca", "")

	filters, _, applied := ParseSearchFilters(query)

	assert.Empty(t, filters.City)
	assert.Empty(t, filters.Type)
	assert.Empty(t, filters.Neighborhood)
	assert.Empty(t, filters.Query)
	assert.Empty(t, applied)
}

func TestParseSearchFiltersNumericIgnoreOnFailure(t *testing.T) {
	query := url.Values{}
	query.Set("quartos", "abc")
	query.Set("banheiros", "-2")
	query.Set("vagas", "0")
	query.Set("area_min", "muito grande")
	query.Set("preco_min", "-100")
	query.Set("preco_max", "infinity")

	filters, _, _ := ParseSearchFilters(query)

	// Malformed or non-positive numerics behave exactly as if absent
	assert.Nil(t, filters.MinBedrooms)
	assert.Nil(t, filters.MinBathrooms)
	assert.Nil(t, filters.MinGarage)
	assert.Nil(t, filters.MinUsableArea)
	assert.Nil(t, filters.PriceMin)
	assert.Nil(t, filters.PriceMax)

	// ParseFloat-accepted non-finite spellings are ignored too
	for _, raw := range []string{"inf", "+Inf", "nan", "NaN"} {
		query.Set("preco_max", raw)
		filters, _, _ = ParseSearchFilters(query)
		assert.Nil(t, filters.PriceMax, raw)
	}
}

func TestParseSearchFiltersValidNumerics(t *testing.T) {
	query := url.Values{}
	query.Set("quartos", "3")
	query.Set("banheiros", "2")
	query.Set("vagas", "1")
	query.Set("area_min", "80.5")
	query.Set("preco_min", "100000")
	query.Set("preco_max", "500000")

	filters, _, _ := ParseSearchFilters(query)

	assert.Equal(t, 3, *filters.MinBedrooms)
	assert.Equal(t, 2, *filters.MinBathrooms)
	assert.Equal(t, 1, *filters.MinGarage)
	assert.Equal(t, 80.5, *filters.MinUsableArea)
	assert.Equal(t, 100000.0, *filters.PriceMin)
	assert.Equal(t, 500000.0, *filters.PriceMax)
}

func TestParseSearchFiltersBooleansRequireLiteralTrue(t *testing.T) {
	query := url.Values{}
	query.Set("pet_friendly", "true")
	query.Set("financiamento", "false")
	query.Set("com_fotos", "1")

	filters, _, _ := ParseSearchFilters(query)

	assert.True(t, filters.PetFriendly)
	assert.False(t, filters.AcceptsFinancing)
	assert.False(t, filters.HasPhotos)
}

func TestParseSearchFiltersAmenityIDs(t *testing.T) {
	query := url.Values{"infraestrutura": {"1", "abc", "7", "-"}}

	filters, _, applied := ParseSearchFilters(query)

	// Invalid ids are silently skipped, survivors kept in order
	assert.Equal(t, []int64{1, 7}, filters.AmenityIDs)
	assert.Equal(t, []string{"1", "abc", "7", "-"}, applied["infraestrutura"])
}

func TestParseSearchFiltersSortFallback(t *testing.T) {
	query := url.Values{}
	query.Set("ordenacao", "preco_menor")
	filters, _, _ := ParseSearchFilters(query)
	assert.Equal(t, domain.SortLowestPrice, filters.Sort)

	query.Set("ordenacao", "whatever")
	filters, _, _ = ParseSearchFilters(query)
	assert.Equal(t, domain.SortRelevance, filters.Sort)
}

func TestParseSearchFiltersPage(t *testing.T) {
	query := url.Values{}
	query.Set("page", "3")
	_, page, applied := ParseSearchFilters(query)
	assert.Equal(t, 3, page)
	// page is never part of the applied-filters echo
	assert.NotContains(t, applied, "page")

	query.Set("page", "nope")
	_, page, _ = ParseSearchFilters(query)
	assert.Equal(t, 1, page)

	query.Set("page", "-4")
	_, page, _ = ParseSearchFilters(query)
	assert.Equal(t, 1, page)
}
