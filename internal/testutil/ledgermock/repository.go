package ledgermock

import (
	"context"

	domain "investhub-backend/internal/domain/ledger"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                        func(ctx context.Context, t *domain.Transaction) error
	GetByTransactionIDFn            func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	GetByTransactionIDForUpdateFn   func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	GetPeriodFn                     func(ctx context.Context, projectID uint64, participantID, month string) (*domain.Transaction, error)
	ListFn                          func(ctx context.Context, q domain.Query) ([]domain.Transaction, error)
	SaveFn                          func(ctx context.Context, t *domain.Transaction) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.GetByTransactionIDForUpdateFn != nil {
		return m.GetByTransactionIDForUpdateFn(ctx, transactionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPeriod(ctx context.Context, projectID uint64, participantID, month string) (*domain.Transaction, error) {
	if m.GetPeriodFn != nil {
		return m.GetPeriodFn(ctx, projectID, participantID, month)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, q domain.Query) ([]domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, t *domain.Transaction) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}
