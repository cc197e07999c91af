package postgres

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/infrastructure/postgres/generated"
)

func TestNumericToDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   pgtype.Numeric
		want string
	}{
		{name: "invalid", in: pgtype.Numeric{}, want: "0"},
		{name: "integer", in: pgtype.Numeric{Int: big.NewInt(1555), Valid: true}, want: "1555"},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(15), Exp: 2, Valid: true}, want: "1500"},
		{name: "trailing zero scale", in: pgtype.Numeric{Int: big.NewInt(150000), Exp: -2, Valid: true}, want: "1500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numericToDecimal(tt.in).String())
		})
	}
}

func TestMoneyNumericRoundTrip(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	money, err := numericToMoney(moneyToNumeric(domain.NewMoney(huge)))
	require.NoError(t, err)
	assert.Equal(t, huge.String(), money.String())
}

func TestNumericToMoneyRejectsFractions(t *testing.T) {
	_, err := numericToMoney(decimalToNumeric(decimal.RequireFromString("1.5")))
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestMapToAccountRejectsFractionalActivity(t *testing.T) {
	rows := []generated.Activity{{
		ID:        1,
		Timestamp: timeToPgTimestamptz(time.Now()),
		Amount:    decimalToNumeric(decimal.RequireFromString("0.5")),
	}}

	_, err := mapToAccount(1, rows, decimalToNumeric(decimal.Zero), decimalToNumeric(decimal.Zero))
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestMapToInsertActivityParams(t *testing.T) {
	ts := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	params := mapToInsertActivityParams(domain.NewActivity(1, 1, 2, ts, domain.Of(77)))

	assert.Equal(t, int64(1), params.OwnerAccountID)
	assert.Equal(t, int64(1), params.SourceAccountID)
	assert.Equal(t, int64(2), params.TargetAccountID)
	assert.True(t, params.Timestamp.Valid)
	assert.True(t, params.Timestamp.Time.Equal(ts))
	assert.Equal(t, "77", numericToDecimal(params.Amount).String())
}
