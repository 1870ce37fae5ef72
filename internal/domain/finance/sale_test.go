package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeSaleBreakdown_GainChargesFee(t *testing.T) {
	b := ComputeSaleBreakdown(d("150000"), d("100000"), d("10"))

	if !b.GrossProfit.Equal(d("50000")) {
		t.Fatalf("gross = %s, want 50000", b.GrossProfit)
	}
	if !b.AdminFee.Equal(d("5000")) {
		t.Fatalf("fee = %s, want 5000", b.AdminFee)
	}
	if !b.NetProfit.Equal(d("45000")) {
		t.Fatalf("net = %s, want 45000", b.NetProfit)
	}
	// conservation: fee + net == gross exactly, no rounding loss
	if !b.AdminFee.Add(b.NetProfit).Equal(b.GrossProfit) {
		t.Fatalf("fee+net = %s, gross = %s", b.AdminFee.Add(b.NetProfit), b.GrossProfit)
	}
}

func TestComputeSaleBreakdown_LossHasNoFee(t *testing.T) {
	b := ComputeSaleBreakdown(d("80000"), d("100000"), d("10"))

	if !b.GrossProfit.Equal(d("-20000")) {
		t.Fatalf("gross = %s, want -20000", b.GrossProfit)
	}
	if !b.AdminFee.IsZero() {
		t.Fatalf("fee on a loss = %s, want 0", b.AdminFee)
	}
	if !b.NetProfit.Equal(b.GrossProfit) {
		t.Fatalf("net = %s, want %s", b.NetProfit, b.GrossProfit)
	}
}

func TestComputeSaleBreakdown_BreakEven(t *testing.T) {
	b := ComputeSaleBreakdown(d("100000"), d("100000"), d("10"))
	if !b.GrossProfit.IsZero() || !b.AdminFee.IsZero() || !b.NetProfit.IsZero() {
		t.Fatalf("break-even should zero everything: %+v", b)
	}
}

func TestDistributePayouts_TwoInvestorScenario(t *testing.T) {
	// 60/40 split of 45,000 → 27,000 / 18,000
	payouts, err := DistributePayouts(d("45000"), []Stake{
		{ParticipantID: "a", SharePercent: d("60")},
		{ParticipantID: "b", SharePercent: d("40")},
	})
	if err != nil {
		t.Fatalf("DistributePayouts: %v", err)
	}
	if !payouts[0].Amount.Equal(d("27000")) {
		t.Fatalf("payout A = %s, want 27000", payouts[0].Amount)
	}
	if !payouts[1].Amount.Equal(d("18000")) {
		t.Fatalf("payout B = %s, want 18000", payouts[1].Amount)
	}
}

func TestDistributePayouts_ResidualGoesToLargestStake(t *testing.T) {
	// three equal thirds of 100.00 → 33.33 each, residual 0.01 folded into
	// the largest (first of equal stakes)
	payouts, err := DistributePayouts(d("100"), []Stake{
		{ParticipantID: "a", SharePercent: d("33.33")},
		{ParticipantID: "b", SharePercent: d("33.33")},
		{ParticipantID: "c", SharePercent: d("33.34")},
	})
	if err != nil {
		t.Fatalf("DistributePayouts: %v", err)
	}

	sum := decimal.Zero
	for _, p := range payouts {
		sum = sum.Add(p.Amount)
	}
	if !sum.Equal(d("100")) {
		t.Fatalf("sum of payouts = %s, want exactly 100", sum)
	}
	// the 33.34 stake is the largest and absorbs the rounding drift
	if payouts[2].Amount.LessThan(payouts[0].Amount) {
		t.Fatalf("largest stake got smallest payout: %+v", payouts)
	}
}

func TestDistributePayouts_SumAlwaysExact(t *testing.T) {
	cases := []struct {
		net    string
		shares []string
	}{
		{"45000", []string{"60", "40"}},
		{"999.99", []string{"33.33", "33.33", "33.34"}},
		{"0.01", []string{"50", "50"}},
		{"12345.67", []string{"12.5", "37.5", "25", "25"}},
	}
	for _, tc := range cases {
		stakes := make([]Stake, len(tc.shares))
		for i, s := range tc.shares {
			stakes[i] = Stake{ParticipantID: string(rune('a' + i)), SharePercent: d(s)}
		}
		payouts, err := DistributePayouts(d(tc.net), stakes)
		if err != nil {
			t.Fatalf("net=%s: %v", tc.net, err)
		}
		sum := decimal.Zero
		for _, p := range payouts {
			sum = sum.Add(p.Amount)
		}
		if !sum.Equal(d(tc.net)) {
			t.Errorf("net=%s shares=%v: sum=%s", tc.net, tc.shares, sum)
		}
	}
}

func TestDistributePayouts_NoStakes(t *testing.T) {
	if _, err := DistributePayouts(d("100"), nil); err == nil {
		t.Fatal("want error for empty stakes")
	}
}
