// Package finance holds the pure money math of the console: proportional
// shares, sale profit splits and month-key bookkeeping. All arithmetic goes
// through shopspring/decimal; float64 only appears at the entity boundary.
package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrZeroDenominator = errors.New("share denominator must be positive")
	ErrNoParticipants  = errors.New("no active participants to distribute to")
)

var hundred = decimal.NewFromInt(100)

// Share computes a participant's percentage of the project:
// 100 * amount / denominator, rounded to 2 decimal places.
// The denominator is always the project's total committed capital
// (projectAmount), never the display-only funding target.
func Share(amount, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrZeroDenominator
	}
	return hundred.Mul(amount).Div(denominator).Round(2), nil
}

// SharePercent is the float64 convenience used when recomputing entity fields.
func SharePercent(amount, denominator float64) (float64, error) {
	s, err := Share(decimal.NewFromFloat(amount), decimal.NewFromFloat(denominator))
	if err != nil {
		return 0, err
	}
	f, _ := s.Float64()
	return f, nil
}

// MonthlyInstallment derives the per-month due for a participant from the
// project's distributable profit pool: pool * share% / installments, 2dp.
func MonthlyInstallment(profitPool, sharePercent decimal.Decimal, installments int) decimal.Decimal {
	if installments <= 0 {
		return decimal.Zero
	}
	return profitPool.Mul(sharePercent).Div(hundred).
		Div(decimal.NewFromInt(int64(installments))).Round(2)
}
