package project

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
	ErrNotFound        = errors.New("project not found")
	ErrValidation      = errors.New("project validation failed")
	ErrAlreadySold     = errors.New("sale already declared for project")
	ErrNotSold         = errors.New("no sale declared for project")
	ErrProjectBlocked  = errors.New("project is blocked")
	ErrInvalidRaise    = errors.New("raised amount must exceed current project amount")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

type Project struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	ProjectID string `gorm:"size:32;uniqueIndex:ux_projects_project_id_active" json:"project_id"`
	Title     string `gorm:"size:255" json:"title"`
	Details   string `gorm:"type:text" json:"details"`
	// ISO 4217 code used for all monetary display of this project.
	CurrencyType string `gorm:"size:3" json:"currency_type"`
	// Total committed capital. Authoritative denominator for participant
	// shares; updated by capital raises.
	ProjectAmount float64 `gorm:"type:decimal(18,2)" json:"project_amount"`
	// Funding target shown in the admin console. Display-only.
	AmountRequired    float64        `gorm:"type:decimal(18,2)" json:"amount_required"`
	SaleAmount        *float64       `gorm:"type:decimal(18,2)" json:"sale_amount,omitempty"`
	SaleDeclaredAt    *time.Time     `json:"sale_declared_at,omitempty"`
	AdminCostPercent  float64        `gorm:"column:admin_cost;type:decimal(5,2)" json:"admin_cost"`
	ProjectDuration   int            `json:"project_duration"`
	InstallmentNumber int            `json:"installment_number"`
	TotalAmountPaid   float64        `gorm:"type:decimal(18,2)" json:"total_amount_paid"`
	IsCapitalRaise    bool           `json:"is_capital_raise"`
	Status            Status         `gorm:"type:enum('active','block');default:'active'" json:"status"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }

// Sold reports whether a terminal sale has been declared.
func (p *Project) Sold() bool { return p.SaleDeclaredAt != nil }
