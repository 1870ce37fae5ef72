package finance

import "github.com/shopspring/decimal"

// SaleBreakdown is the one-time profit split fixed by a sale or market-value
// declaration. AdminFee + NetProfit always equals GrossProfit exactly.
type SaleBreakdown struct {
	SaleAmount  decimal.Decimal
	GrossProfit decimal.Decimal
	AdminFee    decimal.Decimal
	NetProfit   decimal.Decimal
}

// ComputeSaleBreakdown derives gross profit against the capital base, the
// platform's admin fee and the distributable net. A loss carries no fee.
func ComputeSaleBreakdown(saleAmount, projectAmount, adminCostPercent decimal.Decimal) SaleBreakdown {
	gross := saleAmount.Sub(projectAmount)
	fee := decimal.Zero
	if gross.IsPositive() {
		fee = gross.Mul(adminCostPercent).Div(hundred).Round(2)
	}
	return SaleBreakdown{
		SaleAmount:  saleAmount,
		GrossProfit: gross,
		AdminFee:    fee,
		NetProfit:   gross.Sub(fee),
	}
}

// Stake is one active participant's claim on the net profit pool.
type Stake struct {
	ParticipantID string
	InvestorName  string
	SharePercent  decimal.Decimal
}

// Payout is the settled amount for one stake.
type Payout struct {
	ParticipantID string
	InvestorName  string
	SharePercent  decimal.Decimal
	Amount        decimal.Decimal
}

// DistributePayouts splits net across the stakes by share percentage, each
// payout rounded to 2 decimal places. Any rounding residual is folded into
// the largest stake so the payouts sum to net exactly.
func DistributePayouts(net decimal.Decimal, stakes []Stake) ([]Payout, error) {
	if len(stakes) == 0 {
		return nil, ErrNoParticipants
	}

	payouts := make([]Payout, len(stakes))
	sum := decimal.Zero
	largest := 0
	for i, s := range stakes {
		amt := net.Mul(s.SharePercent).Div(hundred).Round(2)
		payouts[i] = Payout{
			ParticipantID: s.ParticipantID,
			InvestorName:  s.InvestorName,
			SharePercent:  s.SharePercent,
			Amount:        amt,
		}
		sum = sum.Add(amt)
		if s.SharePercent.GreaterThan(stakes[largest].SharePercent) {
			largest = i
		}
	}

	if residual := net.Sub(sum); !residual.IsZero() {
		payouts[largest].Amount = payouts[largest].Amount.Add(residual)
	}
	return payouts, nil
}
