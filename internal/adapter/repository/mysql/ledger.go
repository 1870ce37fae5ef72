package mysql

import (
	"context"
	"fmt"

	ledgerDomain "investhub-backend/internal/domain/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Create(ctx context.Context, t *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LedgerRepository) Save(ctx context.Context, t *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *LedgerRepository) GetByTransactionID(ctx context.Context, transactionID string) (*ledgerDomain.Transaction, error) {
	var out ledgerDomain.Transaction
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*ledgerDomain.Transaction, error) {
	var out ledgerDomain.Transaction
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("transaction_id = ?", transactionID).
		First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) GetPeriod(ctx context.Context, projectID uint64, participantID, month string) (*ledgerDomain.Transaction, error) {
	var out ledgerDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND participant_id = ? AND month = ?", projectID, participantID, month).
		First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) List(ctx context.Context, q ledgerDomain.Query) ([]ledgerDomain.Transaction, error) {
	tx := r.db.WithContext(ctx).Model(&ledgerDomain.Transaction{})
	if q.ProjectID != 0 {
		tx = tx.Where("project_id = ?", q.ProjectID)
	}
	if q.InvestorID != "" {
		tx = tx.Where("investor_id = ?", q.InvestorID)
	}
	if q.Year != 0 {
		tx = tx.Where("month LIKE ?", fmt.Sprintf("%04d-%%", q.Year))
	}
	tx = tx.Order("month ASC, id ASC")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	var out []ledgerDomain.Transaction
	res := tx.Find(&out)
	return out, res.Error
}
