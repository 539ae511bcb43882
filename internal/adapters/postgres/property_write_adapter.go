package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 5

// locationHash derives the geohash cell stored with the property, "" when
// it has no coordinates.
func locationHash(p *domain.Property) string {
	if p.Latitude == nil || p.Longitude == nil {
		return ""
	}
	return geohash.EncodeWithPrecision(*p.Latitude, *p.Longitude, geohashPrecision)
}

func (a *PropertyStorageAdapter) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyStorageAdapter",
		"method":    "Create",
	})

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO properties (
			owner_id, title, description, type, status,
			street, neighborhood, city, state, postal_code,
			latitude, longitude, geohash,
			usable_area, total_area, bedrooms, suites, bathrooms, garage_spots,
			floor, year_built, furnishing, pet_friendly, accepts_financing,
			condo_fee, tax_value
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26
		) RETURNING id, created_at, updated_at`,
		p.OwnerID, p.Title, p.Description, p.Type, p.Status,
		p.Street, p.Neighborhood, p.City, p.State, p.PostalCode,
		p.Latitude, p.Longitude, locationHash(p),
		p.UsableArea, p.TotalArea, p.Bedrooms, p.Suites, p.Bathrooms, p.GarageSpots,
		p.Floor, p.YearBuilt, p.Furnishing, p.PetFriendly, p.AcceptsFinancing,
		p.CondoFee, p.Tax,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.Error("Failed to insert property", err, nil)
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}
	p.Geohash = locationHash(p)

	if err := replaceAmenityLinks(ctx, tx, p.ID, p.Amenities); err != nil {
		return nil, err
	}

	for i := range p.Prices {
		p.Prices[i].PropertyID = p.ID
		if err := savePriceTx(ctx, tx, &p.Prices[i]); err != nil {
			return nil, err
		}
	}
	for i := range p.Photos {
		p.Photos[i].PropertyID = p.ID
		if err := savePhotoTx(ctx, tx, &p.Photos[i]); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	logger.Info("Property inserted", port.Fields{"property_id": p.ID})
	return p, nil
}

func (a *PropertyStorageAdapter) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE properties SET
			owner_id = $1, title = $2, description = $3, type = $4, status = $5,
			street = $6, neighborhood = $7, city = $8, state = $9, postal_code = $10,
			latitude = $11, longitude = $12, geohash = $13,
			usable_area = $14, total_area = $15, bedrooms = $16, suites = $17,
			bathrooms = $18, garage_spots = $19, floor = $20, year_built = $21,
			furnishing = $22, pet_friendly = $23, accepts_financing = $24,
			condo_fee = $25, tax_value = $26, updated_at = now()
		WHERE id = $27`,
		p.OwnerID, p.Title, p.Description, p.Type, p.Status,
		p.Street, p.Neighborhood, p.City, p.State, p.PostalCode,
		p.Latitude, p.Longitude, locationHash(p),
		p.UsableArea, p.TotalArea, p.Bedrooms, p.Suites,
		p.Bathrooms, p.GarageSpots, p.Floor, p.YearBuilt,
		p.Furnishing, p.PetFriendly, p.AcceptsFinancing,
		p.CondoFee, p.Tax, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update property %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	p.Geohash = locationHash(p)

	if err := replaceAmenityLinks(ctx, tx, p.ID, p.Amenities); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

func (a *PropertyStorageAdapter) Delete(ctx context.Context, propertyID int64) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property %d: %w", propertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (a *PropertyStorageAdapter) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.PropertyStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := a.pool.Exec(ctx,
		"UPDATE properties SET status = $1, updated_at = now() WHERE id = ANY($2)",
		status, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update property status: %w", err)
	}
	return tag.RowsAffected(), nil
}

func replaceAmenityLinks(ctx context.Context, tx pgx.Tx, propertyID int64, amenities []domain.Amenity) error {
	if _, err := tx.Exec(ctx, "DELETE FROM property_amenities WHERE property_id = $1", propertyID); err != nil {
		return fmt.Errorf("failed to clear amenity links: %w", err)
	}
	for _, amenity := range amenities {
		if _, err := tx.Exec(ctx,
			"INSERT INTO property_amenities (property_id, amenity_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			propertyID, amenity.ID); err != nil {
			return fmt.Errorf("failed to link amenity %d: %w", amenity.ID, err)
		}
	}
	return nil
}

// savePriceTx upserts on (property_id, purpose), keeping the at-most-one
// price row per purpose invariant in the database.
func savePriceTx(ctx context.Context, tx pgx.Tx, price *domain.Price) error {
	return tx.QueryRow(ctx, `
		INSERT INTO property_prices (property_id, purpose, value, min_nights, cleaning_fee, guest_capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (property_id, purpose) DO UPDATE SET
			value = EXCLUDED.value,
			min_nights = EXCLUDED.min_nights,
			cleaning_fee = EXCLUDED.cleaning_fee,
			guest_capacity = EXCLUDED.guest_capacity
		RETURNING id`,
		price.PropertyID, price.Purpose, price.Value,
		price.MinNights, price.CleaningFee, price.GuestCapacity,
	).Scan(&price.ID)
}

func (a *PropertyStorageAdapter) SavePrice(ctx context.Context, price *domain.Price) (*domain.Price, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := savePriceTx(ctx, tx, price); err != nil {
		return nil, fmt.Errorf("failed to save price: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return price, nil
}

func (a *PropertyStorageAdapter) DeletePrice(ctx context.Context, priceID int64) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM property_prices WHERE id = $1", priceID)
	if err != nil {
		return fmt.Errorf("failed to delete price %d: %w", priceID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// photoExecutor is the slice of pgx.Tx that savePhotoTx needs.
type photoExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// savePhotoTx clears the cover flag on every sibling photo before writing
// a new cover, so at most one cover photo exists per property. Running
// inside the caller's transaction makes the invariant atomic.
func savePhotoTx(ctx context.Context, tx photoExecutor, photo *domain.Photo) error {
	if photo.IsCover {
		if _, err := tx.Exec(ctx,
			"UPDATE property_photos SET is_cover = false WHERE property_id = $1",
			photo.PropertyID); err != nil {
			return fmt.Errorf("failed to clear sibling cover flags: %w", err)
		}
	}

	if photo.ID == 0 {
		return tx.QueryRow(ctx, `
			INSERT INTO property_photos (property_id, image_path, caption, is_cover, sort_order)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`,
			photo.PropertyID, photo.ImagePath, photo.Caption, photo.IsCover, photo.SortOrder,
		).Scan(&photo.ID, &photo.CreatedAt)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE property_photos SET image_path = $1, caption = $2, is_cover = $3, sort_order = $4
		WHERE id = $5 AND property_id = $6`,
		photo.ImagePath, photo.Caption, photo.IsCover, photo.SortOrder,
		photo.ID, photo.PropertyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (a *PropertyStorageAdapter) SavePhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := savePhotoTx(ctx, tx, photo); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return photo, nil
}

func (a *PropertyStorageAdapter) DeletePhoto(ctx context.Context, photoID int64) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM property_photos WHERE id = $1", photoID)
	if err != nil {
		return fmt.Errorf("failed to delete photo %d: %w", photoID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
