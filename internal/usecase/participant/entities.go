package participant

import "time"

type AddInput struct {
	ProjectID           string  `json:"investmentId"`
	InvestorID          string  `json:"investorId"`
	InvestorName        string  `json:"investorName"`
	Amount              float64 `json:"amount"`
	AgentCommissionRate float64 `json:"agentCommissionRate"`
}

type ParticipantDTO struct {
	ParticipantID         string    `json:"participant_id"`
	InvestorID            string    `json:"investor_id"`
	InvestorName          string    `json:"investor_name"`
	Amount                float64   `json:"amount"`
	ProjectShare          float64   `json:"project_share"`
	AgentCommissionRate   float64   `json:"agent_commission_rate"`
	TotalDue              float64   `json:"total_due"`
	TotalPaid             float64   `json:"total_paid"`
	InstallmentNumber     int       `json:"installment_number"`
	InstallmentPaidAmount float64   `json:"installment_paid_amount"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

// CloseResultDTO reports the balance transferred when a position is closed.
type CloseResultDTO struct {
	ParticipantDTO
	TransferredAmount float64 `json:"transferred_amount"`
}
