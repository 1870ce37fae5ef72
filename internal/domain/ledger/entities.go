package ledger

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TransactionType tags every monetary event the console records. Closed set;
// unknown tags are rejected at the usecase boundary.
type TransactionType string

const (
	TypeInvestment           TransactionType = "investment"
	TypeInvestmentUpdated    TransactionType = "investmentUpdated"
	TypeSaleDeclared         TransactionType = "saleDeclared"
	TypeGrossProfit          TransactionType = "grossProfit"
	TypeAdminCostDeclared    TransactionType = "adminCostDeclared"
	TypeNetProfit            TransactionType = "netProfit"
	TypeProfitDistributed    TransactionType = "profitDistributed"
	TypeCommissionCalculated TransactionType = "commissionCalculated"
	TypeProfitPayment        TransactionType = "profitPayment"
	TypeCloseProject         TransactionType = "closeProject"
)

type PeriodStatus string

const (
	StatusDue     PeriodStatus = "due"
	StatusPartial PeriodStatus = "partial"
	StatusPaid    PeriodStatus = "paid"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrValidation  = errors.New("transaction validation failed")
	ErrAlreadyPaid = errors.New("accrual period already paid")
)

// PaymentEntry is one installment payment against a monthly accrual.
// Append-only; MonthlyTotalPaid is the running sum of PaidAmount.
type PaymentEntry struct {
	PaidAmount      float64         `json:"paidAmount"`
	Note            string          `json:"note,omitempty"`
	TransactionType TransactionType `json:"transactionType"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AuditEntry is a non-payment event: raises, sale declarations, profit
// distribution, commission changes, closure. DistributionID groups the burst
// of events emitted by one sale declaration.
type AuditEntry struct {
	TransactionType TransactionType `json:"transactionType"`
	Message         string          `json:"message"`
	Amount          float64         `json:"amount,omitempty"`
	InvestorName    string          `json:"investorName,omitempty"`
	DistributionID  string          `json:"distributionId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Transaction is the per (project, participant, month) accrual row. Month uses
// the canonical "YYYY-MM" key.
type Transaction struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	TransactionID    string         `gorm:"size:32;uniqueIndex:ux_transactions_tid_active" json:"transaction_id"`
	ProjectID        uint64         `gorm:"index:idx_transactions_project" json:"-"`
	ParticipantID    string         `gorm:"size:32;index" json:"participant_id"`
	InvestorID       string         `gorm:"size:32;index" json:"investor_id"`
	InvestorName     string         `gorm:"size:255" json:"investor_name"`
	Month            string         `gorm:"size:7;index:idx_transactions_month" json:"month"`
	Profit           float64        `gorm:"type:decimal(18,2)" json:"profit"`
	MonthlyTotalDue  float64        `gorm:"type:decimal(18,2)" json:"monthly_total_due"`
	MonthlyTotalPaid float64        `gorm:"type:decimal(18,2)" json:"monthly_total_paid"`
	Status           PeriodStatus   `gorm:"type:enum('due','partial','paid');default:'due'" json:"status"`
	PaymentLog       []PaymentEntry `gorm:"serializer:json;type:json" json:"payment_log"`
	Logs             []AuditEntry   `gorm:"serializer:json;type:json" json:"logs"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }

// DeriveStatus applies the period state rule: paid once the running total
// covers the due amount, partial for anything strictly in between.
func DeriveStatus(totalDue, totalPaid float64) PeriodStatus {
	switch {
	case totalDue > 0 && totalPaid >= totalDue:
		return StatusPaid
	case totalPaid > 0 && totalPaid < totalDue:
		return StatusPartial
	default:
		return StatusDue
	}
}
