package statements

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.50, "USD")
	b := M(50.25, "USD")

	if got := a.Add(b); !got.Equal(M(150.75, "USD")) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(M(50.25, "USD")) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); !got.Equal(M(-100.50, "USD")) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Mul(decimal.NewFromFloat(0.25)); !got.Equal(M(25.125, "USD")) {
		t.Errorf("Mul = %v", got)
	}
	// The zero Money is a usable additive identity whatever the currency.
	var zero Money
	if got := zero.Add(a); !got.Equal(a) || got.Currency() != "USD" {
		t.Errorf("zero.Add = %v (%s)", got, got.Currency())
	}
}

func TestMoneyString(t *testing.T) {
	if got, want := M(1234.5, "USD").String(), "$1,234.50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := M(-50, "USD").SignedString(), "-$50.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := M(50, "USD").SignedString(), "+$50.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := M(0, "USD").SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}

func TestPercentOf(t *testing.T) {
	p := PercentOf(M(10_000, "USD"), M(50_000, "USD"))
	if !p.Defined() {
		t.Fatal("PercentOf with nonzero base should be defined")
	}
	if got := p.Ratio(); got != 0.2 {
		t.Errorf("Ratio() = %v, want 0.2", got)
	}
	if got, want := p.String(), "20.0%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !p.Exceeds(0.1) {
		t.Error("20% should exceed a 10% threshold")
	}
	if p.Exceeds(0.2) {
		t.Error("Exceeds is strict, 20% does not exceed 20%")
	}
}

func TestPercentOfZeroBase(t *testing.T) {
	p := PercentOf(M(10_000, "USD"), M(0, "USD"))
	if p.Defined() {
		t.Fatal("PercentOf with zero base must be undefined, not a division by zero")
	}
	if got, want := p.String(), "n/a"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.Exceeds(0.1) {
		t.Error("an undefined percent exceeds no threshold")
	}
}

func TestPercentNegative(t *testing.T) {
	p := PercentOf(M(-15_000, "USD"), M(50_000, "USD"))
	if got, want := p.SignedString(), "-30.0%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if !p.Exceeds(0.1) {
		t.Error("Exceeds compares the absolute ratio")
	}
}
