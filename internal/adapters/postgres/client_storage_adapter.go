package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `c.id, c.full_name, c.email, c.phone, c.status, c.origin,
	c.interest_purpose, c.max_budget::text, c.notes,
	c.created_at, c.updated_at, c.last_contact_at`

type ClientStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewClientStorageAdapter(pool *pgxpool.Pool) (*ClientStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	return &ClientStorageAdapter{pool: pool}, nil
}

func scanClient(row rowScanner) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Status, &c.Origin,
		&c.InterestPurpose, &c.MaxBudget, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt, &c.LastContactAt,
	)
	return c, err
}

func (a *ClientStorageAdapter) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO clients (full_name, email, phone, status, origin, interest_purpose, max_budget, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		c.FullName, c.Email, c.Phone, c.Status, c.Origin,
		c.InterestPurpose, c.MaxBudget, c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	if err := replaceInterestLinks(ctx, tx, c.ID, c.InterestPropertyIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return c, nil
}

func (a *ClientStorageAdapter) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE clients SET
			full_name = $1, email = $2, phone = $3, status = $4, origin = $5,
			interest_purpose = $6, max_budget = $7, notes = $8,
			last_contact_at = $9, updated_at = now()
		WHERE id = $10`,
		c.FullName, c.Email, c.Phone, c.Status, c.Origin,
		c.InterestPurpose, c.MaxBudget, c.Notes, c.LastContactAt, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update client %d: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	if err := replaceInterestLinks(ctx, tx, c.ID, c.InterestPropertyIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return c, nil
}

func (a *ClientStorageAdapter) Delete(ctx context.Context, clientID int64) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM clients WHERE id = $1", clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (a *ClientStorageAdapter) GetByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM clients c WHERE c.id = $1", clientColumns)
	c, err := scanClient(a.pool.QueryRow(ctx, query, clientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load client %d: %w", clientID, err)
	}

	clients := []domain.Client{c}
	if err := a.loadInterests(ctx, clients); err != nil {
		return nil, err
	}
	return &clients[0], nil
}

// List orders by most recently updated, mirroring the admin change list.
func (a *ClientStorageAdapter) List(ctx context.Context, limit, offset int) ([]domain.Client, int, error) {
	var total int
	if err := a.pool.QueryRow(ctx, "SELECT COUNT(*) FROM clients").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM clients c ORDER BY c.updated_at DESC LIMIT $1 OFFSET $2", clientColumns)
	rows, err := a.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0, limit)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read clients: %w", err)
	}

	if err := a.loadInterests(ctx, clients); err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (a *ClientStorageAdapter) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.ClientStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := a.pool.Exec(ctx,
		"UPDATE clients SET status = $1, updated_at = now() WHERE id = ANY($2)",
		status, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update client status: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (a *ClientStorageAdapter) BulkTouchLastContact(ctx context.Context, ids []int64, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := a.pool.Exec(ctx,
		"UPDATE clients SET last_contact_at = $1, updated_at = now() WHERE id = ANY($2)",
		at, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk refresh last contact: %w", err)
	}
	return tag.RowsAffected(), nil
}

func replaceInterestLinks(ctx context.Context, tx pgx.Tx, clientID int64, propertyIDs []int64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM client_interests WHERE client_id = $1", clientID); err != nil {
		return fmt.Errorf("failed to clear interest links: %w", err)
	}
	for _, propertyID := range propertyIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO client_interests (client_id, property_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			clientID, propertyID); err != nil {
			return fmt.Errorf("failed to link interest property %d: %w", propertyID, err)
		}
	}
	return nil
}

func (a *ClientStorageAdapter) loadInterests(ctx context.Context, clients []domain.Client) error {
	if len(clients) == 0 {
		return nil
	}
	ids := make([]int64, len(clients))
	index := make(map[int64]*domain.Client, len(clients))
	for i := range clients {
		ids[i] = clients[i].ID
		index[clients[i].ID] = &clients[i]
	}

	rows, err := a.pool.Query(ctx,
		"SELECT client_id, property_id FROM client_interests WHERE client_id = ANY($1) ORDER BY property_id", ids)
	if err != nil {
		return fmt.Errorf("failed to query client interests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var clientID, propertyID int64
		if err := rows.Scan(&clientID, &propertyID); err != nil {
			return fmt.Errorf("failed to scan client interest: %w", err)
		}
		if c, ok := index[clientID]; ok {
			c.InterestPropertyIDs = append(c.InterestPropertyIDs, propertyID)
		}
	}
	return rows.Err()
}
