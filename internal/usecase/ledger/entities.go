package ledger

import "time"

type RecordPaymentInput struct {
	PaidAmount float64 `json:"paidAmount"`
	Note       string  `json:"note"`
}

// RecordInstallmentInput is the legacy installment path: the period row for
// the current month is resolved (or created) from the participant.
type RecordInstallmentInput struct {
	ProjectID     string  `json:"investmentId"`
	ParticipantID string  `json:"participantId"`
	Amount        float64 `json:"amount"`
	Note          string  `json:"note"`
}

type AccrualDTO struct {
	TransactionID    string    `json:"transaction_id"`
	ParticipantID    string    `json:"participant_id"`
	InvestorID       string    `json:"investor_id"`
	InvestorName     string    `json:"investor_name"`
	Month            string    `json:"month"`
	Profit           float64   `json:"profit"`
	MonthlyTotalDue  float64   `json:"monthly_total_due"`
	MonthlyTotalPaid float64   `json:"monthly_total_paid"`
	Status           string    `json:"status"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HistoryEntry is one flattened payment or audit event, the shape the
// transaction-history view consumes.
type HistoryEntry struct {
	TransactionType string    `json:"transaction_type"`
	Message         string    `json:"message,omitempty"`
	Note            string    `json:"note,omitempty"`
	Amount          float64   `json:"amount,omitempty"`
	InvestorName    string    `json:"investor_name,omitempty"`
	DistributionID  string    `json:"distribution_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type HistoryFilter struct {
	InvestorID string
	From       time.Time
	To         time.Time
	Limit      int
}

type MonthStatement struct {
	Month            string  `json:"month"`
	Profit           float64 `json:"profit"`
	MonthlyTotalDue  float64 `json:"monthly_total_due"`
	MonthlyTotalPaid float64 `json:"monthly_total_paid"`
	Status           string  `json:"status"`
	Payments         int     `json:"payments"`
}

type DistributionPayout struct {
	InvestorName string  `json:"investor_name"`
	Amount       float64 `json:"amount"`
}

type DistributionDTO struct {
	DistributionID string               `json:"distribution_id,omitempty"`
	NetProfit      float64              `json:"net_profit"`
	DeclaredAt     time.Time            `json:"declared_at"`
	Payouts        []DistributionPayout `json:"payouts"`
}
