package rest

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

// Recognized single-valued listing parameters, in the order they are
// echoed back as applied filters.
var knownFilterParams = []string{
	"busca", "finalidade", "tipo", "cidade", "bairro",
	"quartos", "banheiros", "vagas", "area_min",
	"preco_min", "preco_max", "mobilia",
	"pet_friendly", "financiamento", "com_fotos",
	"ordenacao",
}

const amenityParam = "infraestrutura"

// hasValue reports whether a query value counts as provided. Blank
// values and the literal string "none" are treated as absent.
func hasValue(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed != "" && !strings.EqualFold(trimmed, "none")
}

func parseText(query url.Values, key string) string {
	raw := strings.TrimSpace(query.Get(key))
	if !hasValue(raw) {
		return ""
	}
	return raw
}

// parsePositiveInt returns nil on any parse failure or non-positive
// value; malformed numeric filters are never surfaced as errors.
func parsePositiveInt(query url.Values, key string) *int {
	raw := strings.TrimSpace(query.Get(key))
	if !hasValue(raw) {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return nil
	}
	return &value
}

func parsePositiveFloat(query url.Values, key string) *float64 {
	raw := strings.TrimSpace(query.Get(key))
	if !hasValue(raw) {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return nil
	}
	// ParseFloat accepts "inf" and "nan" spellings; those never reach SQL.
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return nil
	}
	return &value
}

// parseTrueFlag matches only the literal string "true"; anything else,
// "false" included, means the flag was not provided.
func parseTrueFlag(query url.Values, key string) bool {
	return strings.TrimSpace(query.Get(key)) == "true"
}

func parseAmenityIDs(query url.Values) []int64 {
	raw := query[amenityParam]
	if len(raw) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(raw))
	for _, candidate := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(candidate), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ParseSearchFilters converts the raw listing query string into typed
// filters, the requested page and the applied-filters echo. The echo
// contains every recognized, non-blank parameter exactly as supplied
// (the amenity list keeps its raw values); "page" is never echoed.
func ParseSearchFilters(query url.Values) (domain.SearchFilters, int, map[string]interface{}) {
	filters := domain.SearchFilters{
		Query:        parseText(query, "busca"),
		Purpose:      parseText(query, "finalidade"),
		Type:         parseText(query, "tipo"),
		City:         parseText(query, "cidade"),
		Neighborhood: parseText(query, "bairro"),

		MinBedrooms:   parsePositiveInt(query, "quartos"),
		MinBathrooms:  parsePositiveInt(query, "banheiros"),
		MinGarage:     parsePositiveInt(query, "vagas"),
		MinUsableArea: parsePositiveFloat(query, "area_min"),

		PriceMin: parsePositiveFloat(query, "preco_min"),
		PriceMax: parsePositiveFloat(query, "preco_max"),

		Furnishing: parseText(query, "mobilia"),

		PetFriendly:      parseTrueFlag(query, "pet_friendly"),
		AcceptsFinancing: parseTrueFlag(query, "financiamento"),
		HasPhotos:        parseTrueFlag(query, "com_fotos"),

		AmenityIDs: parseAmenityIDs(query),

		Sort: domain.NormalizeSort(parseText(query, "ordenacao")),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}

	applied := make(map[string]interface{})
	for _, key := range knownFilterParams {
		if raw := strings.TrimSpace(query.Get(key)); hasValue(raw) {
			applied[key] = raw
		}
	}
	if rawIDs := query[amenityParam]; len(rawIDs) > 0 {
		applied[amenityParam] = rawIDs
	}

	return filters, page, applied
}
