package participant

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive Status = "active"
	StatusBlock  Status = "block"
)

var (
	ErrNotFound        = errors.New("participant not found")
	ErrValidation      = errors.New("participant validation failed")
	ErrDuplicate       = errors.New("investor already holds an active position on this project")
	ErrCeilingExceeded = errors.New("participant capital would exceed project amount")
	ErrClosed          = errors.New("participant position is closed")
)

// Participant is one investor's position on one project: contributed capital,
// proportional share and the due/paid bookkeeping the installment flow mutates.
type Participant struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ParticipantID string `gorm:"size:32;uniqueIndex:ux_participants_pid_active" json:"participant_id"`
	ProjectID     uint64 `gorm:"index;uniqueIndex:ux_participants_project_investor" json:"-"`
	InvestorID    string `gorm:"size:32;uniqueIndex:ux_participants_project_investor" json:"investor_id"`
	// Denormalized for history views; the console renders it everywhere.
	InvestorName          string         `gorm:"size:255" json:"investor_name"`
	Amount                float64        `gorm:"type:decimal(18,2)" json:"amount"`
	ProjectShare          float64        `gorm:"type:decimal(5,2)" json:"project_share"`
	AgentCommissionRate   float64        `gorm:"type:decimal(5,2)" json:"agent_commission_rate"`
	TotalDue              float64        `gorm:"type:decimal(18,2)" json:"total_due"`
	TotalPaid             float64        `gorm:"type:decimal(18,2)" json:"total_paid"`
	InstallmentNumber     int            `json:"installment_number"`
	InstallmentPaidAmount float64        `gorm:"type:decimal(18,2)" json:"installment_paid_amount"`
	Status                Status         `gorm:"type:enum('active','block');default:'active'" json:"status"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Participant) TableName() string { return "participants" }

func (p *Participant) Active() bool { return p.Status == StatusActive }
