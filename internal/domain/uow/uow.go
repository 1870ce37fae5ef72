package uow

import (
	"context"

	"investhub-backend/internal/domain/ledger"
	"investhub-backend/internal/domain/participant"
	"investhub-backend/internal/domain/project"
)

type Repos struct {
	Projects     project.Repository
	Participants participant.Repository
	Ledger       ledger.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the project row first, then pass it in. Share
	// recomputation and sale distribution are read-modify-write across the
	// whole participant set of a project, so every such flow goes through here.
	WithinProjectTx(ctx context.Context, projectID string, fn func(r Repos, p *project.Project) error) error
}
