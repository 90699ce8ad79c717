package entities

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidMoney is returned for amounts with more than two fraction digits or unparsable text.
var ErrInvalidMoney = errors.New("invalid money amount")

// Money is an amount in minor units (cents). All price arithmetic happens on
// this integer; decimal text exists only at the JSON/YAML/storage edges.
type Money int64

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// MoneyFromUnits builds a Money from whole currency units.
func MoneyFromUnits(units int64) Money {
	return Money(units * 100)
}

// MoneyFromDecimal converts a decimal amount, rejecting sub-cent precision
// and amounts that do not fit in int64 cents.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Mul(hundred)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than two fraction digits", ErrInvalidMoney, d.String())
	}
	if cents.Abs().GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidMoney, d.String())
	}
	return Money(cents.IntPart()), nil
}

// ParseMoney parses decimal text such as "1200", "1200.5" or "1200.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	return MoneyFromDecimal(d)
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Decimal() decimal.Decimal { return decimal.New(int64(m), -2) }

func (m Money) String() string { return m.Decimal().StringFixed(2) }

// MarshalJSON writes the amount as a JSON number with two fraction digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMoney, string(b))
	}
	v, err := MoneyFromDecimal(d)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
