package statements

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
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
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported decimal source %T", value))
	}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// for its currency (e.g. "$1,234.50").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Amount() decimal.Decimal      { return m.value }
func (m Money) Equal(n Money) bool {
	// the "" currency is weak, it compares equal to any currency.
	return m.value.Equal(n.value) && (m.cur == n.cur || m.cur == "" || n.cur == "")
}
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                   { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(n decimal.Decimal) Money  { return Money{value: m.value.Mul(n), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns the value as a float64. It is meant for display layers;
// calculations stay on the exact decimal value.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Percent is a ratio between two monetary values. It is undefined when the
// base of the comparison is zero, so that a division by zero never occurs.
type Percent struct {
	ratio   float64
	defined bool
}

// PercentOf returns the ratio of delta over base. The result is undefined
// when base is zero.
func PercentOf(delta, base Money) Percent {
	if base.IsZero() {
		return Percent{}
	}
	return Percent{ratio: delta.value.Div(base.value).InexactFloat64(), defined: true}
}

// Defined reports whether the ratio exists (the base was not zero).
func (p Percent) Defined() bool { return p.defined }

// Ratio returns the raw ratio (0.05 for 5%). Zero when undefined.
func (p Percent) Ratio() float64 { return p.ratio }

// Exceeds reports whether the absolute ratio is strictly greater than the
// given threshold.
func (p Percent) Exceeds(threshold float64) bool {
	return p.defined && math.Abs(p.ratio) > threshold
}

// String formats the ratio as a percentage, or "n/a" when undefined.
func (p Percent) String() string {
	if !p.defined {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", p.ratio*100)
}

// SignedString is like String with an explicit sign.
func (p Percent) SignedString() string {
	if !p.defined {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f%%", p.ratio*100)
}
