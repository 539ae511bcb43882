package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OwnerStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewOwnerStorageAdapter(pool *pgxpool.Pool) (*OwnerStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	return &OwnerStorageAdapter{pool: pool}, nil
}

func (a *OwnerStorageAdapter) Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	err := a.pool.QueryRow(ctx, `
		INSERT INTO owners (id, full_name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		o.ID, o.FullName, o.Email, o.Phone,
	).Scan(&o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert owner: %w", err)
	}
	return o, nil
}

func (a *OwnerStorageAdapter) Update(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	tag, err := a.pool.Exec(ctx,
		"UPDATE owners SET full_name = $1, email = $2, phone = $3 WHERE id = $4",
		o.FullName, o.Email, o.Phone, o.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update owner %s: %w", o.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (a *OwnerStorageAdapter) Delete(ctx context.Context, ownerID uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM owners WHERE id = $1", ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete owner %s: %w", ownerID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (a *OwnerStorageAdapter) GetByID(ctx context.Context, ownerID uuid.UUID) (*domain.Owner, error) {
	var o domain.Owner
	err := a.pool.QueryRow(ctx, `
		SELECT o.id, o.full_name, o.email, o.phone, o.created_at,
			(SELECT COUNT(*) FROM properties p WHERE p.owner_id = o.id)
		FROM owners o WHERE o.id = $1`, ownerID,
	).Scan(&o.ID, &o.FullName, &o.Email, &o.Phone, &o.CreatedAt, &o.PropertyCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load owner %s: %w", ownerID, err)
	}
	return &o, nil
}

// List orders by full name and includes the property count shown by the
// admin list view.
func (a *OwnerStorageAdapter) List(ctx context.Context, limit, offset int) ([]domain.Owner, int, error) {
	var total int
	if err := a.pool.QueryRow(ctx, "SELECT COUNT(*) FROM owners").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count owners: %w", err)
	}

	rows, err := a.pool.Query(ctx, `
		SELECT o.id, o.full_name, o.email, o.phone, o.created_at, COUNT(p.id)
		FROM owners o
		LEFT JOIN properties p ON p.owner_id = o.id
		GROUP BY o.id
		ORDER BY o.full_name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query owners: %w", err)
	}
	defer rows.Close()

	owners := make([]domain.Owner, 0, limit)
	for rows.Next() {
		var o domain.Owner
		if err := rows.Scan(&o.ID, &o.FullName, &o.Email, &o.Phone, &o.CreatedAt, &o.PropertyCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, o)
	}
	return owners, total, rows.Err()
}
