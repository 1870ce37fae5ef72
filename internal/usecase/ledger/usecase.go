package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investhub-backend/internal/domain/finance"
	domain "investhub-backend/internal/domain/ledger"
	participantDomain "investhub-backend/internal/domain/participant"
	projectDomain "investhub-backend/internal/domain/project"
	"investhub-backend/internal/domain/uow"
	"investhub-backend/pkg/id"
)

// legacyWindow groups a sale's distribution events for rows written before
// distribution ids existed.
const legacyWindow = time.Minute

type Usecase struct {
	repo     domain.Repository
	projects projectDomain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(r domain.Repository, projects projectDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, projects: projects, uow: tx}
}

func toDTO(t *domain.Transaction) *AccrualDTO {
	return &AccrualDTO{
		TransactionID:    t.TransactionID,
		ParticipantID:    t.ParticipantID,
		InvestorID:       t.InvestorID,
		InvestorName:     t.InvestorName,
		Month:            t.Month,
		Profit:           t.Profit,
		MonthlyTotalDue:  t.MonthlyTotalDue,
		MonthlyTotalPaid: t.MonthlyTotalPaid,
		Status:           string(t.Status),
		UpdatedAt:        t.UpdatedAt,
	}
}

// RecordPayment settles part or all of one accrual period. Appends to the
// payment log, bumps the running paid total, recomputes the period status and
// moves the participant's due balance to paid — all inside one transaction
// with project → participant → period lock order.
func (u *Usecase) RecordPayment(ctx context.Context, transactionID string, in RecordPaymentInput) (*AccrualDTO, error) {
	if in.PaidAmount <= 0 {
		return nil, fmt.Errorf("%w: paid amount must be positive", domain.ErrValidation)
	}

	seed, err := u.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	var dto *AccrualDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByIDForUpdate(ctx, seed.ProjectID)
		if err != nil {
			return err
		}
		if p.Status != projectDomain.StatusActive {
			return projectDomain.ErrProjectBlocked
		}

		var pp *participantDomain.Participant
		if seed.ParticipantID != "" {
			pp, err = r.Participants.GetByParticipantIDForUpdate(ctx, seed.ParticipantID)
			if err != nil {
				return err
			}
			if !pp.Active() {
				return participantDomain.ErrClosed
			}
		}

		t, err := r.Ledger.GetByTransactionIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if t.Status == domain.StatusPaid {
			return domain.ErrAlreadyPaid
		}

		return applyPayment(ctx, r, p, pp, t, in.PaidAmount, in.Note, &dto)
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// RecordInstallment is the alternate payment path the console also uses:
// addressed by participant, lands on the current month's period. A missing
// period row is created with the derived monthly installment as its due.
func (u *Usecase) RecordInstallment(ctx context.Context, in RecordInstallmentInput) (*AccrualDTO, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if in.ParticipantID == "" {
		return nil, fmt.Errorf("%w: participant is required", domain.ErrValidation)
	}

	var dto *AccrualDTO
	err := u.uow.WithinProjectTx(ctx, in.ProjectID, func(r uow.Repos, p *projectDomain.Project) error {
		if p.Status != projectDomain.StatusActive {
			return projectDomain.ErrProjectBlocked
		}
		pp, err := r.Participants.GetByParticipantIDForUpdate(ctx, in.ParticipantID)
		if err != nil {
			return err
		}
		if !pp.Active() {
			return participantDomain.ErrClosed
		}

		month := finance.MonthKey(time.Now().UTC())
		t, err := r.Ledger.GetPeriod(ctx, p.ID, pp.ParticipantID, month)
		switch {
		case err == nil:
			if t.Status == domain.StatusPaid {
				return domain.ErrAlreadyPaid
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			due := finance.MonthlyInstallment(
				decimal.NewFromFloat(p.ProjectAmount),
				decimal.NewFromFloat(pp.ProjectShare),
				p.InstallmentNumber,
			)
			dueF, _ := due.Float64()
			t = &domain.Transaction{
				TransactionID:   id.NewID32(),
				ProjectID:       p.ID,
				ParticipantID:   pp.ParticipantID,
				InvestorID:      pp.InvestorID,
				InvestorName:    pp.InvestorName,
				Month:           month,
				Profit:          dueF,
				MonthlyTotalDue: dueF,
				Status:          domain.StatusDue,
			}
			if err := r.Ledger.Create(ctx, t); err != nil {
				return err
			}
		default:
			return err
		}

		return applyPayment(ctx, r, p, pp, t, in.Amount, in.Note, &dto)
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

func applyPayment(ctx context.Context, r uow.Repos, p *projectDomain.Project, pp *participantDomain.Participant, t *domain.Transaction, amount float64, note string, out **AccrualDTO) error {
	// Audit-carrier rows have no due amount; a payment against one can never
	// settle, so it is rejected instead of accumulating forever.
	if t.MonthlyTotalDue <= 0 {
		return fmt.Errorf("%w: period has no amount due", domain.ErrValidation)
	}

	now := time.Now().UTC()
	t.PaymentLog = append(t.PaymentLog, domain.PaymentEntry{
		PaidAmount:      amount,
		Note:            note,
		TransactionType: domain.TypeProfitPayment,
		CreatedAt:       now,
	})
	t.MonthlyTotalPaid += amount
	t.Status = domain.DeriveStatus(t.MonthlyTotalDue, t.MonthlyTotalPaid)
	if err := r.Ledger.Save(ctx, t); err != nil {
		return err
	}

	if pp != nil {
		pp.TotalPaid += amount
		pp.TotalDue -= amount
		if pp.TotalDue < 0 {
			pp.TotalDue = 0
		}
		pp.InstallmentPaidAmount += amount
		if err := r.Participants.Save(ctx, pp); err != nil {
			return err
		}
	}

	p.TotalAmountPaid += amount
	if err := r.Projects.Save(ctx, p); err != nil {
		return err
	}

	*out = toDTO(t)
	return nil
}

// List returns raw accrual rows for the transaction views.
func (u *Usecase) List(ctx context.Context, projectID, investorID string, year, limit int) ([]AccrualDTO, error) {
	q := domain.Query{InvestorID: investorID, Year: year, Limit: limit}
	if projectID != "" {
		p, err := u.projects.GetByProjectID(ctx, projectID)
		if err != nil {
			return nil, translateNotFound(err)
		}
		q.ProjectID = p.ID
	}
	rows, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]AccrualDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// History flattens payment and audit logs into a single stream, newest first.
func (u *Usecase) History(ctx context.Context, projectID string, f HistoryFilter) ([]HistoryEntry, error) {
	p, err := u.projects.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	rows, err := u.repo.List(ctx, domain.Query{ProjectID: p.ID, InvestorID: f.InvestorID})
	if err != nil {
		return nil, err
	}

	var out []HistoryEntry
	keep := func(at time.Time) bool {
		if !f.From.IsZero() && at.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && at.After(f.To) {
			return false
		}
		return true
	}
	for i := range rows {
		row := &rows[i]
		for _, pe := range row.PaymentLog {
			if !keep(pe.CreatedAt) {
				continue
			}
			out = append(out, HistoryEntry{
				TransactionType: string(domain.TypeProfitPayment),
				Note:            pe.Note,
				Amount:          pe.PaidAmount,
				InvestorName:    row.InvestorName,
				CreatedAt:       pe.CreatedAt,
			})
		}
		for _, ae := range row.Logs {
			if !keep(ae.CreatedAt) {
				continue
			}
			name := ae.InvestorName
			if name == "" {
				name = row.InvestorName
			}
			out = append(out, HistoryEntry{
				TransactionType: string(ae.TransactionType),
				Message:         ae.Message,
				Amount:          ae.Amount,
				InvestorName:    name,
				DistributionID:  ae.DistributionID,
				CreatedAt:       ae.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// MonthlyStatement groups a year's accruals chronologically. Months with no
// activity are omitted, not rendered as zero rows.
func (u *Usecase) MonthlyStatement(ctx context.Context, projectID, investorID string, year int) ([]MonthStatement, error) {
	p, err := u.projects.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	rows, err := u.repo.List(ctx, domain.Query{ProjectID: p.ID, InvestorID: investorID, Year: year})
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*MonthStatement{}
	for i := range rows {
		row := &rows[i]
		// rows that only carry audit logs are not statement material
		if row.Profit == 0 && row.MonthlyTotalDue == 0 && len(row.PaymentLog) == 0 {
			continue
		}
		st, ok := byMonth[row.Month]
		if !ok {
			st = &MonthStatement{Month: row.Month}
			byMonth[row.Month] = st
		}
		st.Profit += row.Profit
		st.MonthlyTotalDue += row.MonthlyTotalDue
		st.MonthlyTotalPaid += row.MonthlyTotalPaid
		st.Payments += len(row.PaymentLog)
		st.Status = string(domain.DeriveStatus(st.MonthlyTotalDue, st.MonthlyTotalPaid))
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	finance.SortMonthKeys(keys)

	out := make([]MonthStatement, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byMonth[k])
	}
	return out, nil
}

// LatestDistribution reconstructs the most recent sale distribution: the
// newest netProfit event plus the profitDistributed events sharing its
// distribution id. Rows predating batch ids fall back to a one-minute
// proximity window around the netProfit timestamp.
func (u *Usecase) LatestDistribution(ctx context.Context, projectID string) (*DistributionDTO, error) {
	entries, err := u.History(ctx, projectID, HistoryFilter{})
	if err != nil {
		return nil, err
	}

	var net *HistoryEntry
	for i := range entries {
		if entries[i].TransactionType == string(domain.TypeNetProfit) {
			net = &entries[i] // entries are newest-first
			break
		}
	}
	if net == nil {
		return nil, domain.ErrNotFound
	}

	dto := &DistributionDTO{
		DistributionID: net.DistributionID,
		NetProfit:      net.Amount,
		DeclaredAt:     net.CreatedAt,
	}
	for i := range entries {
		e := &entries[i]
		if e.TransactionType != string(domain.TypeProfitDistributed) {
			continue
		}
		matched := false
		if net.DistributionID != "" {
			matched = e.DistributionID == net.DistributionID
		} else {
			diff := e.CreatedAt.Sub(net.CreatedAt)
			if diff < 0 {
				diff = -diff
			}
			matched = diff <= legacyWindow
		}
		if matched {
			dto.Payouts = append(dto.Payouts, DistributionPayout{
				InvestorName: e.InvestorName,
				Amount:       e.Amount,
			})
		}
	}
	return dto, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
