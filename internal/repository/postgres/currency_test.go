package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansj1105/coin-csms-sub001/internal/domain"
	apperrors "github.com/ansj1105/coin-csms-sub001/pkg/errors"
)

func newCurrencyTestFixture(t *testing.T) (*CurrencyRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewCurrencyRepository(mock)
	return repo, mock
}

func sampleCurrency() *domain.Currency {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Currency{
		ID:        "c-0001",
		Code:      "BTC",
		Name:      "Bitcoin",
		Decimals:  8,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func currencyColumns() []string {
	return []string{"id", "code", "name", "decimals", "is_active", "created_at", "updated_at"}
}

func currencyRow(c *domain.Currency) *pgxmock.Rows {
	return pgxmock.NewRows(currencyColumns()).AddRow(
		c.ID, c.Code, c.Name, c.Decimals, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
}

func TestCurrencyRepository_Create_Success(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	c := sampleCurrency()

	mock.ExpectExec("INSERT INTO currencies").
		WithArgs(c.ID, c.Code, c.Name, c.Decimals, c.IsActive, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepository_Create_DuplicateCode(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	c := sampleCurrency()

	mock.ExpectExec("INSERT INTO currencies").
		WithArgs(c.ID, c.Code, c.Name, c.Decimals, c.IsActive, c.CreatedAt, c.UpdatedAt).
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists), "expected ErrAlreadyExists, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepository_GetByCode_Success(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	c := sampleCurrency()

	mock.ExpectQuery("SELECT .+ FROM currencies WHERE code =").
		WithArgs(c.Code).
		WillReturnRows(currencyRow(c))

	got, err := repo.GetByCode(context.Background(), c.Code)
	require.NoError(t, err)
	assert.Equal(t, c.Code, got.Code)
	assert.Equal(t, c.Decimals, got.Decimals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepository_GetByCode_NotFound(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM currencies WHERE code =").
		WithArgs("XXX").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByCode(context.Background(), "XXX")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepository_List_ActiveOnly(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	c := sampleCurrency()

	mock.ExpectQuery("SELECT .+ FROM currencies WHERE is_active = TRUE ORDER BY code").
		WillReturnRows(currencyRow(c))

	currencies, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, currencies, 1)
	assert.Equal(t, "BTC", currencies[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepository_List_All(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	c := sampleCurrency()
	inactive := sampleCurrency()
	inactive.ID = "c-0002"
	inactive.Code = "DOGE"
	inactive.IsActive = false

	mock.ExpectQuery("SELECT .+ FROM currencies ORDER BY code").
		WillReturnRows(currencyRow(c).AddRow(
			inactive.ID, inactive.Code, inactive.Name, inactive.Decimals,
			inactive.IsActive, inactive.CreatedAt, inactive.UpdatedAt,
		))

	currencies, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, currencies, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepository_Update_Success(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	c := sampleCurrency()

	mock.ExpectExec("UPDATE currencies").
		WithArgs(c.Name, c.Decimals, c.IsActive, pgxmock.AnyArg(), c.Code).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyRepository_Update_NotFound(t *testing.T) {
	repo, mock := newCurrencyTestFixture(t)
	defer mock.Close()

	c := sampleCurrency()

	mock.ExpectExec("UPDATE currencies").
		WithArgs(c.Name, c.Decimals, c.IsActive, pgxmock.AnyArg(), c.Code).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
