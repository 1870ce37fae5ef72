package project

import "context"

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByProjectID(ctx context.Context, projectID string) (*Project, error)
	// GetByProjectIDForUpdate locks the project row for the duration of the
	// surrounding transaction. Mutating flows must use this variant.
	GetByProjectIDForUpdate(ctx context.Context, projectID string) (*Project, error)
	// GetByIDForUpdate locks by numeric PK; used when a flow starts from a
	// participant or transaction row that only carries the FK.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Project, error)
	List(ctx context.Context, page, limit int) ([]Project, int64, error)
	Save(ctx context.Context, p *Project) error
}
