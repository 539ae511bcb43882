package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

// searchQuery holds the assembled fragments of the public listing query.
// Joins against one-to-many tables can produce duplicate property rows;
// DataQuery dedupes with GROUP BY p.id and CountQuery with COUNT(DISTINCT).
type searchQuery struct {
	JoinClause  string
	SortJoin    string
	WhereClause string
	OrderBy     string
	Args        []interface{}
}

type queryBuilder struct {
	joins      strings.Builder
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID:      1,
		conditions: []string{"p.status = 'ativo'"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// addStaticCondition appends a condition that carries no bind argument.
func (qb *queryBuilder) addStaticCondition(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

func (qb *queryBuilder) addJoin(join string) {
	qb.joins.WriteString(" ")
	qb.joins.WriteString(join)
	qb.joins.WriteString(" ")
}

func (qb *queryBuilder) whereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// applyFilters turns the typed filter set into query fragments. Every
// numeric field is already validated (> 0) by the REST layer; absent
// filters simply add nothing.
//
// Price bounds and the purpose filter each join the prices table under
// their own alias, so min and max may be satisfied by different price rows
// of the same property. Amenity ids each join the link table once, which
// makes the combination an AND.
func applyFilters(filters domain.SearchFilters) *searchQuery {
	qb := newQueryBuilder()

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		qb.conditions = append(qb.conditions, fmt.Sprintf(
			"(p.title ILIKE $%d OR p.street ILIKE $%d OR p.neighborhood ILIKE $%d OR p.city ILIKE $%d OR p.description ILIKE $%d)",
			qb.argID, qb.argID, qb.argID, qb.argID, qb.argID))
		qb.args = append(qb.args, pattern)
		qb.argID++
	}

	if filters.Purpose != "" {
		qb.addJoin("JOIN property_prices pr_fin ON pr_fin.property_id = p.id")
		qb.addCondition("%s = $%d", "pr_fin.purpose", filters.Purpose)
	}

	if filters.Type != "" {
		qb.addCondition("%s = $%d", "p.type", filters.Type)
	}

	if filters.City != "" {
		qb.addCondition("LOWER(%s) = LOWER($%d)", "p.city", filters.City)
	}

	if filters.Neighborhood != "" {
		qb.addCondition("%s ILIKE $%d", "p.neighborhood", "%"+filters.Neighborhood+"%")
	}

	if filters.MinBedrooms != nil {
		qb.addCondition("%s >= $%d", "p.bedrooms", *filters.MinBedrooms)
	}
	if filters.MinBathrooms != nil {
		qb.addCondition("%s >= $%d", "p.bathrooms", *filters.MinBathrooms)
	}
	if filters.MinGarage != nil {
		qb.addCondition("%s >= $%d", "p.garage_spots", *filters.MinGarage)
	}
	if filters.MinUsableArea != nil {
		qb.addCondition("%s >= $%d", "p.usable_area", *filters.MinUsableArea)
	}

	if filters.PriceMin != nil {
		qb.addJoin("JOIN property_prices pr_min ON pr_min.property_id = p.id")
		qb.addCondition("%s >= $%d", "pr_min.value", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		qb.addJoin("JOIN property_prices pr_max ON pr_max.property_id = p.id")
		qb.addCondition("%s <= $%d", "pr_max.value", *filters.PriceMax)
	}

	if filters.Furnishing != "" {
		qb.addCondition("%s = $%d", "p.furnishing", filters.Furnishing)
	}

	if filters.PetFriendly {
		qb.addStaticCondition("p.pet_friendly = true")
	}
	if filters.AcceptsFinancing {
		qb.addStaticCondition("p.accepts_financing = true")
	}
	if filters.HasPhotos {
		qb.addJoin("JOIN property_photos ph ON ph.property_id = p.id")
	}

	for i, amenityID := range filters.AmenityIDs {
		alias := "am_" + strconv.Itoa(i)
		qb.addJoin(fmt.Sprintf("JOIN property_amenities %s ON %s.property_id = p.id", alias, alias))
		qb.addCondition("%s = $%d", alias+".amenity_id", amenityID)
	}

	sortJoin, orderBy := sortClause(filters.Sort)

	return &searchQuery{
		JoinClause:  strings.TrimSpace(qb.joins.String()),
		SortJoin:    sortJoin,
		WhereClause: qb.whereClause(),
		OrderBy:     orderBy,
		Args:        qb.args,
	}
}

// sortClause maps the sort order onto ORDER BY expressions valid under
// GROUP BY p.id. Price sorts aggregate over a dedicated join so that the
// dedup step does not disturb the chosen order.
func sortClause(sort domain.SortOrder) (sortJoin, orderBy string) {
	switch sort {
	case domain.SortLowestPrice:
		return "LEFT JOIN property_prices sp ON sp.property_id = p.id",
			"MIN(sp.value) ASC NULLS LAST"
	case domain.SortHighestPrice:
		return "LEFT JOIN property_prices sp ON sp.property_id = p.id",
			"MAX(sp.value) DESC NULLS LAST"
	case domain.SortNewest:
		return "", "p.created_at DESC"
	case domain.SortLargestArea:
		return "", "p.usable_area DESC NULLS LAST"
	default:
		return "", "p.created_at DESC, p.updated_at DESC"
	}
}

// CountQuery counts distinct matching properties.
func (q *searchQuery) CountQuery() string {
	return strings.TrimSpace(fmt.Sprintf(
		"SELECT COUNT(DISTINCT p.id) FROM properties p %s %s",
		q.JoinClause, q.WhereClause))
}

// DataQuery selects one row per matching property in the requested order.
// limitArg and offsetArg are the positions of the LIMIT/OFFSET binds.
func (q *searchQuery) DataQuery() string {
	limitArg := len(q.Args) + 1
	offsetArg := len(q.Args) + 2
	return strings.TrimSpace(fmt.Sprintf(
		"SELECT %s FROM properties p %s %s %s GROUP BY p.id ORDER BY %s LIMIT $%d OFFSET $%d",
		propertyColumns, q.JoinClause, q.SortJoin, q.WhereClause, q.OrderBy, limitArg, offsetArg))
}
