package minimarket

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary value, kept exact as a decimal and persisted
// as a plain JSON number. The display currency is not stored with the value;
// it is supplied at render time.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal string like "2.50" into a Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) MulInt(n int) Money              { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) Div(n int) Money                 { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }

// String returns the bare decimal representation, without a currency symbol.
func (m Money) String() string { return m.value.String() }

// Display formats the value in the given ISO currency, e.g. "$2.50" for USD.
func (m Money) Display(currency string) string {
	// to get a never nil currency we go through the Money constructor
	cur := *money.New(0, currency).Currency()
	return cur.Formatter().Format(m.value.Shift(int32(cur.Fraction)).IntPart())
}

// Share formats m as a percentage of total with one decimal, e.g. "61.4%".
// A zero total yields "0.0%".
func (m Money) Share(total Money) string {
	if total.IsZero() {
		return "0.0%"
	}
	pct := m.value.Div(total.value).Mul(decimal.NewFromInt(100))
	return pct.StringFixed(1) + "%"
}

// round2 rounds to two decimal places, the precision persisted for totals.
func (m Money) round2() Money { return Money{value: m.value.Round(2)} }

func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
