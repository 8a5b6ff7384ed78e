package repository

import (
	"context"

	"github.com/ansj1105/coin-csms-sub001/internal/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user into the store.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a non-deleted user by their unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a non-deleted user by their email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user in the store.
	Update(ctx context.Context, user *domain.User) error

	// SoftDelete marks a user as deleted without removing the row.
	SoftDelete(ctx context.Context, id string) error

	// List returns a page of non-deleted users ordered by creation time,
	// along with the total count.
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
}

// CurrencyRepository defines the interface for supported-currency persistence operations.
type CurrencyRepository interface {
	// Create inserts a new currency into the store.
	Create(ctx context.Context, currency *domain.Currency) error

	// GetByCode retrieves a currency by its ISO-style code.
	GetByCode(ctx context.Context, code string) (*domain.Currency, error)

	// List returns all currencies, or only active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]domain.Currency, error)

	// Update modifies an existing currency in the store.
	Update(ctx context.Context, currency *domain.Currency) error
}
