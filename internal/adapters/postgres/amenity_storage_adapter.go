package postgres

import (
	"context"
	"fmt"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AmenityStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewAmenityStorageAdapter(pool *pgxpool.Pool) (*AmenityStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	return &AmenityStorageAdapter{pool: pool}, nil
}

func (a *AmenityStorageAdapter) Create(ctx context.Context, amenity *domain.Amenity) (*domain.Amenity, error) {
	err := a.pool.QueryRow(ctx,
		"INSERT INTO amenities (name, icon) VALUES ($1, $2) RETURNING id",
		amenity.Name, amenity.Icon,
	).Scan(&amenity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert amenity: %w", err)
	}
	return amenity, nil
}

func (a *AmenityStorageAdapter) Update(ctx context.Context, amenity *domain.Amenity) (*domain.Amenity, error) {
	tag, err := a.pool.Exec(ctx,
		"UPDATE amenities SET name = $1, icon = $2 WHERE id = $3",
		amenity.Name, amenity.Icon, amenity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update amenity %d: %w", amenity.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return amenity, nil
}

func (a *AmenityStorageAdapter) Delete(ctx context.Context, amenityID int64) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM amenities WHERE id = $1", amenityID)
	if err != nil {
		return fmt.Errorf("failed to delete amenity %d: %w", amenityID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (a *AmenityStorageAdapter) List(ctx context.Context) ([]domain.Amenity, error) {
	rows, err := a.pool.Query(ctx, "SELECT id, name, icon FROM amenities ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query amenities: %w", err)
	}
	defer rows.Close()

	amenities := make([]domain.Amenity, 0)
	for rows.Next() {
		var amenity domain.Amenity
		if err := rows.Scan(&amenity.ID, &amenity.Name, &amenity.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan amenity: %w", err)
		}
		amenities = append(amenities, amenity)
	}
	return amenities, rows.Err()
}
