package scout

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the only currency the dashboard reports in: upstream amounts are all
// normalized to US dollars.
const Currency = money.USD

// Money represents a dollar amount.
type Money struct {
	value decimal.Decimal // as major unit value
}

// USD is a convenient factory for dollar amounts.
func USD[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the amount with cents, e.g. "$12,500.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Dollars returns the amount rounded to the dollar, e.g. "$12,500".
func (m Money) Dollars() string {
	cur := m.currency()
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.value.Round(0).IntPart())
}

// PerHour formats the amount as an hourly rate, e.g. "$180/hr".
func (m Money) PerHour() string { return m.Dollars() + "/hr" }

// Short converts a large dollar amount to $M or $k.
// Zero and negative amounts are reported as undisclosed.
func (m Money) Short() string {
	f := m.value.InexactFloat64()
	switch {
	case f >= 1e6:
		return fmt.Sprintf("$%.1fM", f/1e6)
	case f > 0:
		return fmt.Sprintf("$%.0fk", f/1e3)
	default:
		return "an undisclosed amount"
	}
}

// Thousands formats the amount in truncated thousands, e.g. "$42k" for 42,900.
func (m Money) Thousands() string {
	return fmt.Sprintf("$%sk", m.value.Div(decimal.NewFromInt(1000)).Truncate(0).String())
}

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Float() float64                  { return m.value.InexactFloat64() }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(f decimal.Decimal) Money     { return Money{value: m.value.Mul(f)} }
func (m Money) Div(f decimal.Decimal) Money     { return Money{value: m.value.Div(f)} }
func (m Money) Round(places int32) Money        { return Money{value: m.value.Round(places)} }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// MarshalJSON encodes the amount as a plain JSON number of dollars.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON decodes a JSON number (or numeric string) of dollars.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	m.value = d
	return nil
}

// Sum adds all amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
