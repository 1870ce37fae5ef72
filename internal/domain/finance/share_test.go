package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestShare_Basic(t *testing.T) {
	s, err := Share(d("60000"), d("100000"))
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if !s.Equal(d("60")) {
		t.Fatalf("share = %s, want 60", s)
	}
}

func TestShare_RoundsToTwoPlaces(t *testing.T) {
	s, err := Share(d("1"), d("3"))
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if !s.Equal(d("33.33")) {
		t.Fatalf("share = %s, want 33.33", s)
	}
}

func TestShare_ZeroDenominator(t *testing.T) {
	if _, err := Share(d("100"), decimal.Zero); err == nil {
		t.Fatal("want error for zero denominator")
	}
	if _, err := Share(d("100"), d("-5")); err == nil {
		t.Fatal("want error for negative denominator")
	}
}

// Shares of a fully subscribed project sum to 100 within rounding epsilon and
// never exceed it by more than the epsilon.
func TestShare_NormalizationProperty(t *testing.T) {
	cases := [][]string{
		{"60000", "40000"},
		{"33333.33", "33333.33", "33333.34"},
		{"1", "1", "1"},
		{"70000", "20000", "7000", "3000"},
	}
	epsilon := d("0.01")
	for _, amounts := range cases {
		denom := decimal.Zero
		for _, a := range amounts {
			denom = denom.Add(d(a))
		}
		sum := decimal.Zero
		for _, a := range amounts {
			s, err := Share(d(a), denom)
			if err != nil {
				t.Fatalf("Share(%s,%s): %v", a, denom, err)
			}
			sum = sum.Add(s)
		}
		if sum.Sub(d("100")).Abs().GreaterThan(epsilon) {
			t.Errorf("amounts %v: shares sum to %s", amounts, sum)
		}
		if sum.GreaterThan(d("100").Add(epsilon)) {
			t.Errorf("amounts %v: shares exceed 100: %s", amounts, sum)
		}
	}
}

func TestSharePercent(t *testing.T) {
	got, err := SharePercent(40000, 100000)
	if err != nil {
		t.Fatalf("SharePercent: %v", err)
	}
	if got != 40 {
		t.Fatalf("share = %v, want 40", got)
	}
	if _, err := SharePercent(10, 0); err == nil {
		t.Fatal("want error for zero denominator")
	}
}

func TestMonthlyInstallment(t *testing.T) {
	// 100,000 pool, 60% share, 12 installments → 5000 per month
	got := MonthlyInstallment(d("100000"), d("60"), 12)
	if !got.Equal(d("5000")) {
		t.Fatalf("installment = %s, want 5000", got)
	}
	if !MonthlyInstallment(d("100000"), d("60"), 0).IsZero() {
		t.Fatal("zero installments must yield zero due")
	}
}
