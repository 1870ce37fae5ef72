package participant

import "context"

type Repository interface {
	Create(ctx context.Context, p *Participant) error
	GetByParticipantID(ctx context.Context, participantID string) (*Participant, error)
	GetByParticipantIDForUpdate(ctx context.Context, participantID string) (*Participant, error)
	// GetActiveByProjectAndInvestor is the duplicate-position guard.
	GetActiveByProjectAndInvestor(ctx context.Context, projectID uint64, investorID string) (*Participant, error)
	ListByProject(ctx context.Context, projectID uint64) ([]Participant, error)
	ListActiveByProject(ctx context.Context, projectID uint64) ([]Participant, error)
	ListByInvestor(ctx context.Context, investorID string) ([]Participant, error)
	Save(ctx context.Context, p *Participant) error
}
