package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in the single implicit currency unit.
// Amounts are whole numbers of arbitrary size. The zero value is zero.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{amount: decimal.Zero}

// Of returns money holding value.
func Of(value int64) Money {
	return Money{amount: decimal.NewFromInt(value)}
}

// NewMoney returns money holding a copy of value.
func NewMoney(value *big.Int) Money {
	return Money{amount: decimal.NewFromBigInt(new(big.Int).Set(value), 0)}
}

// ParseMoney parses a base-10 integer amount such as "-42" or "1000000000000000000000".
func ParseMoney(s string) (Money, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}

	return Money{amount: decimal.NewFromBigInt(v, 0)}, nil
}

// MoneyFromDecimal converts a stored NUMERIC value back to money.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if !d.IsInteger() {
		return Money{}, fmt.Errorf("%w: %s", ErrMalformedAmount, d.String())
	}

	return Money{amount: decimal.NewFromBigInt(d.BigInt(), 0)}, nil
}

// Add returns a + b.
func Add(a, b Money) Money {
	return Money{amount: a.amount.Add(b.amount)}
}

// Subtract returns a - b.
func Subtract(a, b Money) Money {
	return Money{amount: a.amount.Sub(b.amount)}
}

// Plus returns m + other.
func (m Money) Plus(other Money) Money {
	return Add(m, other)
}

// Minus returns m - other.
func (m Money) Minus(other Money) Money {
	return Subtract(m, other)
}

// Negate returns -m.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg()}
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsPositiveOrZero() bool {
	return !m.amount.IsNegative()
}

func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) IsGreaterThanOrEqualTo(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// Equal reports whether both amounts are the same number.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Amount returns the amount as a new big.Int.
func (m Money) Amount() *big.Int {
	return m.amount.BigInt()
}

// Decimal returns the amount as a decimal with exponent 0.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.String()
}

// MarshalText implements encoding.TextMarshaler.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := ParseMoney(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
