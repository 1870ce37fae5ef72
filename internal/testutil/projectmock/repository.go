package projectmock

import (
	"context"

	domain "investhub-backend/internal/domain/project"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones return
// context.Canceled so misuse is loud.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.Project) error
	GetByProjectIDFn          func(ctx context.Context, projectID string) (*domain.Project, error)
	GetByProjectIDForUpdateFn func(ctx context.Context, projectID string) (*domain.Project, error)
	GetByIDForUpdateFn        func(ctx context.Context, id uint64) (*domain.Project, error)
	ListFn                    func(ctx context.Context, page, limit int) ([]domain.Project, int64, error)
	SaveFn                    func(ctx context.Context, p *domain.Project) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDFn != nil {
		return m.GetByProjectIDFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDForUpdateFn != nil {
		return m.GetByProjectIDForUpdateFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Project, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, page, limit int) ([]domain.Project, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit)
	}
	return nil, 0, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Project) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
