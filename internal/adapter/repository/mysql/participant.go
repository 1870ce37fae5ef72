package mysql

import (
	"context"

	participantDomain "investhub-backend/internal/domain/participant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepository struct{ db *gorm.DB }

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Create(ctx context.Context, p *participantDomain.Participant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ParticipantRepository) Save(ctx context.Context, p *participantDomain.Participant) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ParticipantRepository) GetByParticipantID(ctx context.Context, participantID string) (*participantDomain.Participant, error) {
	var out participantDomain.Participant
	res := r.db.WithContext(ctx).Where("participant_id = ?", participantID).First(&out)
	return &out, res.Error
}

func (r *ParticipantRepository) GetByParticipantIDForUpdate(ctx context.Context, participantID string) (*participantDomain.Participant, error) {
	var out participantDomain.Participant
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("participant_id = ?", participantID).
		First(&out)
	return &out, res.Error
}

func (r *ParticipantRepository) GetActiveByProjectAndInvestor(ctx context.Context, projectID uint64, investorID string) (*participantDomain.Participant, error) {
	var out participantDomain.Participant
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND investor_id = ? AND status = ?", projectID, investorID, participantDomain.StatusActive).
		First(&out)
	return &out, res.Error
}

func (r *ParticipantRepository) ListByProject(ctx context.Context, projectID uint64) ([]participantDomain.Participant, error) {
	var out []participantDomain.Participant
	res := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ParticipantRepository) ListActiveByProject(ctx context.Context, projectID uint64) ([]participantDomain.Participant, error) {
	var out []participantDomain.Participant
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND status = ?", projectID, participantDomain.StatusActive).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ParticipantRepository) ListByInvestor(ctx context.Context, investorID string) ([]participantDomain.Participant, error) {
	var out []participantDomain.Participant
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
