package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// propertyColumns is the shared select list for property rows. Monetary
// NUMERIC columns come back as text so that presentation can surface
// malformed stored values instead of failing a float conversion.
const propertyColumns = `p.id, p.owner_id, p.title, p.description, p.type, p.status,
	p.street, p.neighborhood, p.city, p.state, p.postal_code,
	p.latitude, p.longitude, p.geohash,
	p.usable_area::float8, p.total_area::float8,
	p.bedrooms, p.suites, p.bathrooms, p.garage_spots, p.floor, p.year_built,
	p.furnishing, p.pet_friendly, p.accepts_financing,
	p.condo_fee::text, p.tax_value::text, p.created_at, p.updated_at`

type PropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPropertyStorageAdapter(pool *pgxpool.Pool) (*PropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	return &PropertyStorageAdapter{pool: pool}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Type, &p.Status,
		&p.Street, &p.Neighborhood, &p.City, &p.State, &p.PostalCode,
		&p.Latitude, &p.Longitude, &p.Geohash,
		&p.UsableArea, &p.TotalArea,
		&p.Bedrooms, &p.Suites, &p.Bathrooms, &p.GarageSpots, &p.Floor, &p.YearBuilt,
		&p.Furnishing, &p.PetFriendly, &p.AcceptsFinancing,
		&p.CondoFee, &p.Tax, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// FindWithFilters runs the public search: count, clamp the page against
// the filtered total, then fetch one deduplicated page. Both queries run
// in one transaction so the count matches the page.
func (a *PropertyStorageAdapter) FindWithFilters(ctx context.Context, filters domain.SearchFilters, page int) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyStorageAdapter",
		"method":    "FindWithFilters",
		"page":      page,
	})

	q := applyFilters(filters)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int
	if err := tx.QueryRow(ctx, q.CountQuery(), q.Args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count properties", err, port.Fields{"query": q.CountQuery()})
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	if totalCount == 0 {
		return &domain.PaginatedProperties{
			Properties:  []domain.Property{},
			TotalCount:  0,
			CurrentPage: 1,
			TotalPages:  1,
			PerPage:     domain.PageSize,
		}, nil
	}

	page = domain.ClampPage(page, totalCount, domain.PageSize)
	offset := (page - 1) * domain.PageSize

	args := append(append([]interface{}{}, q.Args...), domain.PageSize, offset)
	rows, err := tx.Query(ctx, q.DataQuery(), args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": q.DataQuery()})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0, domain.PageSize)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := a.loadRelations(ctx, properties); err != nil {
		return nil, err
	}

	repoLogger.Info("Search finished", port.Fields{
		"total_count":   totalCount,
		"items_on_page": len(properties),
	})
	return &domain.PaginatedProperties{
		Properties:  properties,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  domain.TotalPages(totalCount, domain.PageSize),
		PerPage:     domain.PageSize,
	}, nil
}

func (a *PropertyStorageAdapter) GetFeatured(ctx context.Context, limit int) ([]domain.Property, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM properties p WHERE p.status = 'ativo' ORDER BY p.created_at DESC LIMIT $1",
		propertyColumns)
	return a.queryProperties(ctx, query, limit)
}

func (a *PropertyStorageAdapter) GetDistinctCities(ctx context.Context) ([]string, error) {
	rows, err := a.pool.Query(ctx,
		"SELECT DISTINCT city FROM properties WHERE status = 'ativo' ORDER BY city")
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func (a *PropertyStorageAdapter) GetActiveDetails(ctx context.Context, propertyID int64) (*domain.Property, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM properties p WHERE p.id = $1 AND p.status = 'ativo'", propertyColumns)
	p, err := scanProperty(a.pool.QueryRow(ctx, query, propertyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load property %d: %w", propertyID, err)
	}

	props := []domain.Property{p}
	if err := a.loadRelations(ctx, props); err != nil {
		return nil, err
	}
	return &props[0], nil
}

// GetSimilar returns active properties of the same type and city,
// preferring ones inside the same geohash cell when the reference has
// coordinates.
func (a *PropertyStorageAdapter) GetSimilar(ctx context.Context, ref *domain.Property, limit int) ([]domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p
		WHERE p.type = $1 AND p.city = $2 AND p.status = 'ativo' AND p.id <> $3
		ORDER BY CASE WHEN $4 <> '' AND p.geohash = $4 THEN 0 ELSE 1 END, p.created_at DESC
		LIMIT $5`, propertyColumns)
	return a.queryProperties(ctx, query, ref.Type, ref.City, ref.ID, ref.Geohash, limit)
}

func (a *PropertyStorageAdapter) GetByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties p WHERE p.id = $1", propertyColumns)
	p, err := scanProperty(a.pool.QueryRow(ctx, query, propertyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load property %d: %w", propertyID, err)
	}

	props := []domain.Property{p}
	if err := a.loadRelations(ctx, props); err != nil {
		return nil, err
	}
	return &props[0], nil
}

func (a *PropertyStorageAdapter) List(ctx context.Context, limit, offset int) ([]domain.Property, int, error) {
	var total int
	if err := a.pool.QueryRow(ctx, "SELECT COUNT(*) FROM properties").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM properties p ORDER BY p.created_at DESC LIMIT $1 OFFSET $2",
		propertyColumns)
	properties, err := a.queryProperties(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (a *PropertyStorageAdapter) queryProperties(ctx context.Context, query string, args ...interface{}) ([]domain.Property, error) {
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	if err := a.loadRelations(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}
