package project

import "time"

type CreateInput struct {
	Title             string  `json:"title"`
	Details           string  `json:"details"`
	CurrencyType      string  `json:"currencyType"`
	ProjectAmount     float64 `json:"projectAmount"`
	AmountRequired    float64 `json:"amountRequired"`
	AdminCostPercent  float64 `json:"adminCost"`
	ProjectDuration   int     `json:"projectDuration"`
	InstallmentNumber int     `json:"installmentNumber"`
}

// UpdateInput carries the partial-edit fields of PATCH /investments. Nil means
// "leave unchanged".
type UpdateInput struct {
	Title            *string  `json:"title"`
	Details          *string  `json:"details"`
	AdminCostPercent *float64 `json:"adminCost"`
	AmountRequired   *float64 `json:"amountRequired"`
	Status           *string  `json:"status"`
}

type ProjectDTO struct {
	ProjectID         string    `json:"project_id"`
	Title             string    `json:"title"`
	Details           string    `json:"details"`
	CurrencyType      string    `json:"currency_type"`
	ProjectAmount     float64   `json:"project_amount"`
	AmountRequired    float64   `json:"amount_required"`
	SaleAmount        *float64  `json:"sale_amount,omitempty"`
	AdminCostPercent  float64   `json:"admin_cost"`
	ProjectDuration   int       `json:"project_duration"`
	InstallmentNumber int       `json:"installment_number"`
	TotalAmountPaid   float64   `json:"total_amount_paid"`
	IsCapitalRaise    bool      `json:"is_capital_raise"`
	Status            string    `json:"status"`
	DisplayAmount     string    `json:"display_amount"`
	CreatedAt         time.Time `json:"created_at"`
}

type ListMeta struct {
	TotalPage int64 `json:"totalPage"`
}

type ListResult struct {
	Result []ProjectDTO `json:"result"`
	Meta   ListMeta     `json:"meta"`
}

// PayoutDTO is one investor's cut of a sale distribution.
type PayoutDTO struct {
	ParticipantID string  `json:"participant_id"`
	InvestorName  string  `json:"investor_name"`
	SharePercent  float64 `json:"share_percent"`
	Amount        float64 `json:"amount"`
}

// SaleResultDTO reports the split fixed by DeclareSale.
type SaleResultDTO struct {
	DistributionID string      `json:"distribution_id"`
	SaleAmount     float64     `json:"sale_amount"`
	GrossProfit    float64     `json:"gross_profit"`
	AdminFee       float64     `json:"admin_fee"`
	NetProfit      float64     `json:"net_profit"`
	Payouts        []PayoutDTO `json:"payouts"`
	DeclaredAt     time.Time   `json:"declared_at"`
}
