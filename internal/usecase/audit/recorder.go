// Package audit appends monetary events to the ledger. Validation belongs to
// the emitting usecase; this layer only finds or creates the accrual row for
// the target month and appends.
package audit

import (
	"context"
	"errors"
	"time"

	"investhub-backend/internal/domain/finance"
	"investhub-backend/internal/domain/ledger"
	"investhub-backend/pkg/id"

	"gorm.io/gorm"
)

// Target identifies the row an event lands on. ParticipantID and InvestorID
// are empty for project-level events (sale declared, gross/net profit,
// admin fee, capital raises).
type Target struct {
	ProjectID     uint64
	ParticipantID string
	InvestorID    string
	InvestorName  string
}

// Append records one audit entry on the accrual row for the entry's month
// (derived from CreatedAt), creating the row if the month has no activity yet.
func Append(ctx context.Context, repo ledger.Repository, tgt Target, e ledger.AuditEntry) error {
	return record(ctx, repo, tgt, e, 0)
}

// AppendAllocation is Append for profit-bearing events: besides the log entry,
// the entry's amount is credited to the row's monthly Profit column, which is
// what the account-history statement renders per month.
func AppendAllocation(ctx context.Context, repo ledger.Repository, tgt Target, e ledger.AuditEntry) error {
	return record(ctx, repo, tgt, e, e.Amount)
}

func record(ctx context.Context, repo ledger.Repository, tgt Target, e ledger.AuditEntry, profit float64) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	month := finance.MonthKey(e.CreatedAt)

	row, err := repo.GetPeriod(ctx, tgt.ProjectID, tgt.ParticipantID, month)
	switch {
	case err == nil:
		row.Logs = append(row.Logs, e)
		row.Profit += profit
		return repo.Save(ctx, row)
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = &ledger.Transaction{
			TransactionID: id.NewID32(),
			ProjectID:     tgt.ProjectID,
			ParticipantID: tgt.ParticipantID,
			InvestorID:    tgt.InvestorID,
			InvestorName:  tgt.InvestorName,
			Month:         month,
			Profit:        profit,
			Status:        ledger.StatusDue,
			Logs:          []ledger.AuditEntry{e},
		}
		return repo.Create(ctx, row)
	default:
		return err
	}
}
