package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type currencyForm struct {
	Code     string `validate:"required,len=3,uppercase"`
	Decimals int    `validate:"gte=0,lte=18"`
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(loginForm{Email: "alice@example.com", Password: "Longpassword1"}))
	assert.NoError(t, Validate(currencyForm{Code: "USD", Decimals: 2}))
}

func TestValidate_Fields(t *testing.T) {
	err := Validate(loginForm{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Equal(t, "must be a valid email address", fields["Email"])
	assert.Equal(t, "must be at least 8 characters", fields["Password"])
}

func TestValidate_CurrencyCode(t *testing.T) {
	err := Validate(currencyForm{Code: "usd", Decimals: 30})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Code")
	assert.Contains(t, fields, "Decimals")
}

func TestValidationError_Error(t *testing.T) {
	err := Validate(loginForm{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "is required")
}
