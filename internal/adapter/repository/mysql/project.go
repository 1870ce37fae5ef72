package mysql

import (
	"context"

	projectDomain "investhub-backend/internal/domain/project"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) Save(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("project_id = ?", projectID).
		First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) List(ctx context.Context, page, limit int) ([]projectDomain.Project, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&projectDomain.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []projectDomain.Project
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out)
	return out, total, res.Error
}
