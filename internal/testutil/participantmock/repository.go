package participantmock

import (
	"context"

	domain "investhub-backend/internal/domain/participant"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                        func(ctx context.Context, p *domain.Participant) error
	GetByParticipantIDFn            func(ctx context.Context, participantID string) (*domain.Participant, error)
	GetByParticipantIDForUpdateFn   func(ctx context.Context, participantID string) (*domain.Participant, error)
	GetActiveByProjectAndInvestorFn func(ctx context.Context, projectID uint64, investorID string) (*domain.Participant, error)
	ListByProjectFn                 func(ctx context.Context, projectID uint64) ([]domain.Participant, error)
	ListActiveByProjectFn           func(ctx context.Context, projectID uint64) ([]domain.Participant, error)
	ListByInvestorFn                func(ctx context.Context, investorID string) ([]domain.Participant, error)
	SaveFn                          func(ctx context.Context, p *domain.Participant) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Participant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByParticipantID(ctx context.Context, participantID string) (*domain.Participant, error) {
	if m.GetByParticipantIDFn != nil {
		return m.GetByParticipantIDFn(ctx, participantID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByParticipantIDForUpdate(ctx context.Context, participantID string) (*domain.Participant, error) {
	if m.GetByParticipantIDForUpdateFn != nil {
		return m.GetByParticipantIDForUpdateFn(ctx, participantID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByProjectAndInvestor(ctx context.Context, projectID uint64, investorID string) (*domain.Participant, error) {
	if m.GetActiveByProjectAndInvestorFn != nil {
		return m.GetActiveByProjectAndInvestorFn(ctx, projectID, investorID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByProject(ctx context.Context, projectID uint64) ([]domain.Participant, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActiveByProject(ctx context.Context, projectID uint64) ([]domain.Participant, error) {
	if m.ListActiveByProjectFn != nil {
		return m.ListActiveByProjectFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByInvestor(ctx context.Context, investorID string) ([]domain.Participant, error) {
	if m.ListByInvestorFn != nil {
		return m.ListByInvestorFn(ctx, investorID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Participant) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
