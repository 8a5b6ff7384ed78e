package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ansj1105/coin-csms-sub001/internal/domain"
	"github.com/ansj1105/coin-csms-sub001/internal/repository"
	apperrors "github.com/ansj1105/coin-csms-sub001/pkg/errors"
)

// maxCurrencyDecimals bounds the precision a currency can declare.
const maxCurrencyDecimals = 18

// CurrencyEventPublisher publishes currency lifecycle events.
type CurrencyEventPublisher interface {
	PublishCurrencyCreated(ctx context.Context, c *domain.Currency) error
	PublishCurrencyUpdated(ctx context.Context, c *domain.Currency) error
}

// CurrencyService implements the business logic for supported currencies.
type CurrencyService struct {
	repo     repository.CurrencyRepository
	producer CurrencyEventPublisher
	logger   *slog.Logger
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(repo repository.CurrencyRepository, producer CurrencyEventPublisher, logger *slog.Logger) *CurrencyService {
	return &CurrencyService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateCurrencyInput holds the parameters for adding a supported currency.
type CreateCurrencyInput struct {
	Code     string
	Name     string
	Decimals int
}

// UpdateCurrencyInput holds the parameters for updating a currency.
type UpdateCurrencyInput struct {
	Name     *string
	Decimals *int
	IsActive *bool
}

// Create adds a new supported currency.
func (s *CurrencyService) Create(ctx context.Context, input CreateCurrencyInput) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if len(code) < 2 || len(code) > 10 {
		return nil, apperrors.InvalidInput("currency code must be 2 to 10 characters")
	}
	if input.Name == "" {
		return nil, apperrors.InvalidInput("currency name is required")
	}
	if input.Decimals < 0 || input.Decimals > maxCurrencyDecimals {
		return nil, apperrors.InvalidInput(fmt.Sprintf("decimals must be between 0 and %d", maxCurrencyDecimals))
	}

	now := time.Now().UTC()
	currency := &domain.Currency{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      input.Name,
		Decimals:  input.Decimals,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, currency); err != nil {
		return nil, fmt.Errorf("create currency: %w", err)
	}

	if err := s.producer.PublishCurrencyCreated(ctx, currency); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish currency.created event",
			slog.String("code", currency.Code),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "currency created",
		slog.String("code", currency.Code),
	)

	return currency, nil
}

// Get retrieves a currency by code.
func (s *CurrencyService) Get(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return currency, nil
}

// List returns supported currencies, optionally only active ones.
func (s *CurrencyService) List(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	currencies, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	return currencies, nil
}

// Update modifies a currency's mutable fields.
func (s *CurrencyService) Update(ctx context.Context, code string, input UpdateCurrencyInput) (*domain.Currency, error) {
	currency, err := s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("get currency for update: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("currency name must not be empty")
		}
		currency.Name = *input.Name
	}

	if input.Decimals != nil {
		if *input.Decimals < 0 || *input.Decimals > maxCurrencyDecimals {
			return nil, apperrors.InvalidInput(fmt.Sprintf("decimals must be between 0 and %d", maxCurrencyDecimals))
		}
		currency.Decimals = *input.Decimals
	}

	if input.IsActive != nil {
		currency.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, currency); err != nil {
		return nil, fmt.Errorf("update currency: %w", err)
	}

	if err := s.producer.PublishCurrencyUpdated(ctx, currency); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish currency.updated event",
			slog.String("code", currency.Code),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "currency updated",
		slog.String("code", currency.Code),
	)

	return currency, nil
}
