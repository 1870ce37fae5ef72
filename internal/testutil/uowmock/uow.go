package uowmock

import (
	"context"
	"errors"

	"investhub-backend/internal/domain/project"
	"investhub-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinProjectTxFn func(ctx context.Context, projectID string, fn func(r uow.Repos, p *project.Project) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires both tx variants straight through to the given repos,
// resolving the project with its normal (unlocked) getter. Covers the common
// "no real transaction" test setup.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinProjectTxFn: func(ctx context.Context, projectID string, fn func(r uow.Repos, p *project.Project) error) error {
			p, err := r.Projects.GetByProjectIDForUpdate(ctx, projectID)
			if err != nil {
				return err
			}
			return fn(r, p)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinProjectTx(ctx context.Context, projectID string, fn func(r uow.Repos, p *project.Project) error) error {
	if m.WithinProjectTxFn != nil {
		return m.WithinProjectTxFn(ctx, projectID, fn)
	}
	return errUnimplemented
}
