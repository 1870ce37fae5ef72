package mysql

import (
	"context"

	"investhub-backend/internal/domain/project"
	"investhub-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Projects:     &ProjectRepository{db: tx},
		Participants: &ParticipantRepository{db: tx},
		Ledger:       &LedgerRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinProjectTx(ctx context.Context, projectID string, fn func(r uow.Repos, p *project.Project) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the project row up-front to prevent races
		p, err := r.Projects.GetByProjectIDForUpdate(ctx, projectID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
