package project

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investhub-backend/internal/domain/finance"
	"investhub-backend/internal/domain/ledger"
	domain "investhub-backend/internal/domain/project"
	"investhub-backend/internal/domain/uow"
	"investhub-backend/internal/usecase/audit"
	"investhub-backend/pkg/id"
	"investhub-backend/pkg/money"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func toDTO(p *domain.Project) *ProjectDTO {
	return &ProjectDTO{
		ProjectID:         p.ProjectID,
		Title:             p.Title,
		Details:           p.Details,
		CurrencyType:      p.CurrencyType,
		ProjectAmount:     p.ProjectAmount,
		AmountRequired:    p.AmountRequired,
		SaleAmount:        p.SaleAmount,
		AdminCostPercent:  p.AdminCostPercent,
		ProjectDuration:   p.ProjectDuration,
		InstallmentNumber: p.InstallmentNumber,
		TotalAmountPaid:   p.TotalAmountPaid,
		IsCapitalRaise:    p.IsCapitalRaise,
		Status:            string(p.Status),
		DisplayAmount:     money.Format(p.CurrencyType, p.ProjectAmount),
		CreatedAt:         p.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ProjectDTO, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !money.ValidCode(in.CurrencyType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, in.CurrencyType)
	}
	if in.ProjectAmount < 0 || in.AmountRequired < 0 {
		return nil, fmt.Errorf("%w: amounts must not be negative", domain.ErrValidation)
	}
	if in.AdminCostPercent < 0 || in.AdminCostPercent > 100 {
		return nil, fmt.Errorf("%w: admin cost must be within [0,100]", domain.ErrValidation)
	}
	if in.InstallmentNumber < 0 || in.ProjectDuration < 0 {
		return nil, fmt.Errorf("%w: duration and installments must not be negative", domain.ErrValidation)
	}

	p := &domain.Project{
		ProjectID:         id.NewID32(),
		Title:             in.Title,
		Details:           in.Details,
		CurrencyType:      strings.ToUpper(in.CurrencyType),
		ProjectAmount:     in.ProjectAmount,
		AmountRequired:    in.AmountRequired,
		AdminCostPercent:  in.AdminCostPercent,
		ProjectDuration:   in.ProjectDuration,
		InstallmentNumber: in.InstallmentNumber,
		Status:            domain.StatusActive,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, projectID string) (*ProjectDTO, error) {
	p, err := u.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context, page, limit int) (*ListResult, error) {
	if limit < 1 {
		limit = 20
	}
	items, total, err := u.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	out := make([]ProjectDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return &ListResult{
		Result: out,
		Meta:   ListMeta{TotalPage: (total + int64(limit) - 1) / int64(limit)},
	}, nil
}

// Update applies partial admin edits. Projects are never deleted; disabling is
// a status flip to block.
func (u *Usecase) Update(ctx context.Context, projectID string, in UpdateInput) (*ProjectDTO, error) {
	var dto *ProjectDTO
	err := u.uow.WithinProjectTx(ctx, projectID, func(r uow.Repos, p *domain.Project) error {
		if in.Title != nil {
			if strings.TrimSpace(*in.Title) == "" {
				return fmt.Errorf("%w: title is required", domain.ErrValidation)
			}
			p.Title = *in.Title
		}
		if in.Details != nil {
			p.Details = *in.Details
		}
		if in.AdminCostPercent != nil {
			if *in.AdminCostPercent < 0 || *in.AdminCostPercent > 100 {
				return fmt.Errorf("%w: admin cost must be within [0,100]", domain.ErrValidation)
			}
			p.AdminCostPercent = *in.AdminCostPercent
		}
		if in.AmountRequired != nil {
			if *in.AmountRequired < 0 {
				return fmt.Errorf("%w: amount required must not be negative", domain.ErrValidation)
			}
			p.AmountRequired = *in.AmountRequired
		}
		if in.Status != nil {
			switch domain.Status(*in.Status) {
			case domain.StatusActive, domain.StatusBlock:
				p.Status = domain.Status(*in.Status)
			default:
				return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
			}
		}
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return audit.Append(ctx, r.Ledger, audit.Target{ProjectID: p.ID}, ledger.AuditEntry{
			TransactionType: ledger.TypeInvestmentUpdated,
			Message:         fmt.Sprintf("Project %s updated", p.Title),
		})
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// RaiseCapital sets the new total committed capital and recomputes every
// active participant's share against it. The fan-out runs inside the project
// lock so a concurrent sale cannot observe a half-updated participant set.
func (u *Usecase) RaiseCapital(ctx context.Context, projectID string, newTotal float64) (*ProjectDTO, error) {
	var dto *ProjectDTO
	err := u.uow.WithinProjectTx(ctx, projectID, func(r uow.Repos, p *domain.Project) error {
		if p.Status != domain.StatusActive {
			return domain.ErrProjectBlocked
		}
		if p.Sold() {
			return domain.ErrAlreadySold
		}
		if newTotal <= p.ProjectAmount {
			return fmt.Errorf("%w: %.2f <= %.2f", domain.ErrInvalidRaise, newTotal, p.ProjectAmount)
		}

		previous := p.ProjectAmount
		p.ProjectAmount = newTotal
		p.IsCapitalRaise = true
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}

		active, err := r.Participants.ListActiveByProject(ctx, p.ID)
		if err != nil {
			return err
		}
		for i := range active {
			share, err := finance.SharePercent(active[i].Amount, p.ProjectAmount)
			if err != nil {
				return err
			}
			active[i].ProjectShare = share
			if err := r.Participants.Save(ctx, &active[i]); err != nil {
				return err
			}
		}

		dto = toDTO(p)
		return audit.Append(ctx, r.Ledger, audit.Target{ProjectID: p.ID}, ledger.AuditEntry{
			TransactionType: ledger.TypeInvestmentUpdated,
			Message:         fmt.Sprintf("Capital raised from %.2f to %.2f", previous, newTotal),
			Amount:          newTotal - previous,
		})
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// DeclareSale fixes the project's realized value and distributes the net
// profit across active participants. Single-fire: a second declaration fails;
// revaluation is a separate operation that never redistributes.
func (u *Usecase) DeclareSale(ctx context.Context, projectID string, saleAmount float64) (*SaleResultDTO, error) {
	if saleAmount <= 0 {
		return nil, fmt.Errorf("%w: sale amount must be positive", domain.ErrValidation)
	}

	var result *SaleResultDTO
	err := u.uow.WithinProjectTx(ctx, projectID, func(r uow.Repos, p *domain.Project) error {
		if p.Status != domain.StatusActive {
			return domain.ErrProjectBlocked
		}
		if p.Sold() {
			return domain.ErrAlreadySold
		}

		breakdown := finance.ComputeSaleBreakdown(
			decimal.NewFromFloat(saleAmount),
			decimal.NewFromFloat(p.ProjectAmount),
			decimal.NewFromFloat(p.AdminCostPercent),
		)

		active, err := r.Participants.ListActiveByProject(ctx, p.ID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		sale := saleAmount
		p.SaleAmount = &sale
		p.SaleDeclaredAt = &now
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}

		distributionID := uuid.NewString()
		projectEvents := []ledger.AuditEntry{
			{TransactionType: ledger.TypeSaleDeclared, Message: fmt.Sprintf("Sale declared for %s", p.Title), Amount: saleAmount},
			{TransactionType: ledger.TypeGrossProfit, Message: "Gross profit on sale", Amount: toFloat(breakdown.GrossProfit)},
			{TransactionType: ledger.TypeAdminCostDeclared, Message: fmt.Sprintf("Admin cost %.2f%%", p.AdminCostPercent), Amount: toFloat(breakdown.AdminFee)},
			{TransactionType: ledger.TypeNetProfit, Message: "Net profit allocated", Amount: toFloat(breakdown.NetProfit)},
		}
		for _, e := range projectEvents {
			e.DistributionID = distributionID
			e.CreatedAt = now
			if err := audit.Append(ctx, r.Ledger, audit.Target{ProjectID: p.ID}, e); err != nil {
				return err
			}
		}

		result = &SaleResultDTO{
			DistributionID: distributionID,
			SaleAmount:     saleAmount,
			GrossProfit:    toFloat(breakdown.GrossProfit),
			AdminFee:       toFloat(breakdown.AdminFee),
			NetProfit:      toFloat(breakdown.NetProfit),
			DeclaredAt:     now,
		}

		// A loss distributes nothing; participants simply keep their books.
		if !breakdown.NetProfit.IsPositive() {
			return nil
		}

		stakes := make([]finance.Stake, 0, len(active))
		for i := range active {
			stakes = append(stakes, finance.Stake{
				ParticipantID: active[i].ParticipantID,
				InvestorName:  active[i].InvestorName,
				SharePercent:  decimal.NewFromFloat(active[i].ProjectShare),
			})
		}
		payouts, err := finance.DistributePayouts(breakdown.NetProfit, stakes)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		for i, payout := range payouts {
			pp := &active[i]
			amount := toFloat(payout.Amount)
			pp.TotalDue += amount
			if err := r.Participants.Save(ctx, pp); err != nil {
				return err
			}
			err := audit.AppendAllocation(ctx, r.Ledger,
				audit.Target{ProjectID: p.ID, ParticipantID: pp.ParticipantID, InvestorID: pp.InvestorID, InvestorName: pp.InvestorName},
				ledger.AuditEntry{
					TransactionType: ledger.TypeProfitDistributed,
					Message:         fmt.Sprintf("Net profit for %s", pp.InvestorName),
					Amount:          amount,
					InvestorName:    pp.InvestorName,
					DistributionID:  distributionID,
					CreatedAt:       now,
				})
			if err != nil {
				return err
			}
			result.Payouts = append(result.Payouts, PayoutDTO{
				ParticipantID: pp.ParticipantID,
				InvestorName:  pp.InvestorName,
				SharePercent:  pp.ProjectShare,
				Amount:        amount,
			})
		}
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return result, nil
}

// Revalue overwrites the declared sale amount without touching any
// distribution. Only valid once a sale exists.
func (u *Usecase) Revalue(ctx context.Context, projectID string, saleAmount float64) (*ProjectDTO, error) {
	if saleAmount <= 0 {
		return nil, fmt.Errorf("%w: sale amount must be positive", domain.ErrValidation)
	}
	var dto *ProjectDTO
	err := u.uow.WithinProjectTx(ctx, projectID, func(r uow.Repos, p *domain.Project) error {
		if !p.Sold() {
			return domain.ErrNotSold
		}
		previous := *p.SaleAmount
		sale := saleAmount
		p.SaleAmount = &sale
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return audit.Append(ctx, r.Ledger, audit.Target{ProjectID: p.ID}, ledger.AuditEntry{
			TransactionType: ledger.TypeInvestmentUpdated,
			Message:         fmt.Sprintf("Market value restated from %.2f to %.2f", previous, saleAmount),
			Amount:          saleAmount,
		})
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
