package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ansj1105/coin-csms-sub001/internal/domain"
	apperrors "github.com/ansj1105/coin-csms-sub001/pkg/errors"
)

// CurrencyRepository implements repository.CurrencyRepository using PostgreSQL.
type CurrencyRepository struct {
	db DB
}

// NewCurrencyRepository creates a new PostgreSQL-backed currency repository.
func NewCurrencyRepository(db DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

// Create inserts a new currency into the database.
func (r *CurrencyRepository) Create(ctx context.Context, c *domain.Currency) error {
	query := `
		INSERT INTO currencies (id, code, name, decimals, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		c.ID,
		c.Code,
		c.Name,
		c.Decimals,
		c.IsActive,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("currency", "code", c.Code)
		}
		return fmt.Errorf("insert currency: %w", err)
	}

	return nil
}

// GetByCode retrieves a currency by its code.
func (r *CurrencyRepository) GetByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT id, code, name, decimals, is_active, created_at, updated_at
		FROM currencies
		WHERE code = $1`

	var c domain.Currency
	err := r.db.QueryRow(ctx, query, code).Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Decimals,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan currency: %w", err)
	}

	return &c, nil
}

// List returns all currencies ordered by code, optionally only active ones.
func (r *CurrencyRepository) List(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	query := `
		SELECT id, code, name, decimals, is_active, created_at, updated_at
		FROM currencies`
	if activeOnly {
		query += `
		WHERE is_active = TRUE`
	}
	query += `
		ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(
			&c.ID,
			&c.Code,
			&c.Name,
			&c.Decimals,
			&c.IsActive,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan currency row: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate currencies: %w", err)
	}

	return currencies, nil
}

// Update modifies an existing currency in the database.
func (r *CurrencyRepository) Update(ctx context.Context, c *domain.Currency) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE currencies
		SET name = $1, decimals = $2, is_active = $3, updated_at = $4
		WHERE code = $5`

	ct, err := r.db.Exec(ctx, query,
		c.Name,
		c.Decimals,
		c.IsActive,
		c.UpdatedAt,
		c.Code,
	)
	if err != nil {
		return fmt.Errorf("update currency: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("currency", c.Code)
	}

	return nil
}
