package postgres

import (
	"context"
	"fmt"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

// loadRelations fills prices, photos and amenities for a slice of already
// scanned properties with one query per relation.
func (a *PropertyStorageAdapter) loadRelations(ctx context.Context, properties []domain.Property) error {
	if len(properties) == 0 {
		return nil
	}

	ids := make([]int64, len(properties))
	index := make(map[int64]*domain.Property, len(properties))
	for i := range properties {
		ids[i] = properties[i].ID
		index[properties[i].ID] = &properties[i]
	}

	rows, err := a.pool.Query(ctx, `
		SELECT id, property_id, purpose, value::text, min_nights, cleaning_fee::text, guest_capacity
		FROM property_prices WHERE property_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("failed to query prices: %w", err)
	}
	for rows.Next() {
		var price domain.Price
		if err := rows.Scan(&price.ID, &price.PropertyID, &price.Purpose, &price.Value,
			&price.MinNights, &price.CleaningFee, &price.GuestCapacity); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan price: %w", err)
		}
		if p, ok := index[price.PropertyID]; ok {
			p.Prices = append(p.Prices, price)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read prices: %w", err)
	}

	rows, err = a.pool.Query(ctx, `
		SELECT id, property_id, image_path, caption, is_cover, sort_order, created_at
		FROM property_photos WHERE property_id = ANY($1) ORDER BY sort_order, created_at`, ids)
	if err != nil {
		return fmt.Errorf("failed to query photos: %w", err)
	}
	for rows.Next() {
		var photo domain.Photo
		if err := rows.Scan(&photo.ID, &photo.PropertyID, &photo.ImagePath, &photo.Caption,
			&photo.IsCover, &photo.SortOrder, &photo.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan photo: %w", err)
		}
		if p, ok := index[photo.PropertyID]; ok {
			p.Photos = append(p.Photos, photo)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read photos: %w", err)
	}

	rows, err = a.pool.Query(ctx, `
		SELECT pa.property_id, a.id, a.name, a.icon
		FROM property_amenities pa
		JOIN amenities a ON a.id = pa.amenity_id
		WHERE pa.property_id = ANY($1) ORDER BY a.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to query amenities: %w", err)
	}
	for rows.Next() {
		var propertyID int64
		var amenity domain.Amenity
		if err := rows.Scan(&propertyID, &amenity.ID, &amenity.Name, &amenity.Icon); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan amenity: %w", err)
		}
		if p, ok := index[propertyID]; ok {
			p.Amenities = append(p.Amenities, amenity)
		}
	}
	rows.Close()
	return rows.Err()
}
