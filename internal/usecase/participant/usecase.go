package participant

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"investhub-backend/internal/domain/finance"
	"investhub-backend/internal/domain/ledger"
	domain "investhub-backend/internal/domain/participant"
	projectDomain "investhub-backend/internal/domain/project"
	"investhub-backend/internal/domain/uow"
	"investhub-backend/internal/usecase/audit"
	"investhub-backend/pkg/id"
)

type Usecase struct {
	repo     domain.Repository
	projects projectDomain.Repository
	uow      uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for tx flows.
func NewUsecase(r domain.Repository, projects projectDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, projects: projects, uow: tx}
}

func toDTO(p *domain.Participant) *ParticipantDTO {
	return &ParticipantDTO{
		ParticipantID:         p.ParticipantID,
		InvestorID:            p.InvestorID,
		InvestorName:          p.InvestorName,
		Amount:                p.Amount,
		ProjectShare:          p.ProjectShare,
		AgentCommissionRate:   p.AgentCommissionRate,
		TotalDue:              p.TotalDue,
		TotalPaid:             p.TotalPaid,
		InstallmentNumber:     p.InstallmentNumber,
		InstallmentPaidAmount: p.InstallmentPaidAmount,
		Status:                string(p.Status),
		CreatedAt:             p.CreatedAt,
	}
}

func activeCapital(participants []domain.Participant) float64 {
	var sum float64
	for i := range participants {
		sum += participants[i].Amount
	}
	return sum
}

// Add creates an investor's position on a project. Guards: positive amount,
// commission within [0,100], one active position per investor, and the funding
// ceiling — active capital never exceeds the project's committed total.
func (u *Usecase) Add(ctx context.Context, in AddInput) (*ParticipantDTO, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if in.AgentCommissionRate < 0 || in.AgentCommissionRate > 100 {
		return nil, fmt.Errorf("%w: commission rate must be within [0,100]", domain.ErrValidation)
	}
	if in.InvestorID == "" {
		return nil, fmt.Errorf("%w: investor is required", domain.ErrValidation)
	}

	var dto *ParticipantDTO
	err := u.uow.WithinProjectTx(ctx, in.ProjectID, func(r uow.Repos, p *projectDomain.Project) error {
		if p.Status != projectDomain.StatusActive {
			return projectDomain.ErrProjectBlocked
		}
		if p.Sold() {
			return projectDomain.ErrAlreadySold
		}

		_, err := r.Participants.GetActiveByProjectAndInvestor(ctx, p.ID, in.InvestorID)
		switch {
		case err == nil:
			return domain.ErrDuplicate
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		active, err := r.Participants.ListActiveByProject(ctx, p.ID)
		if err != nil {
			return err
		}
		if activeCapital(active)+in.Amount > p.ProjectAmount {
			return domain.ErrCeilingExceeded
		}

		share, err := finance.SharePercent(in.Amount, p.ProjectAmount)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		pp := &domain.Participant{
			ParticipantID:       id.NewID32(),
			ProjectID:           p.ID,
			InvestorID:          in.InvestorID,
			InvestorName:        in.InvestorName,
			Amount:              in.Amount,
			ProjectShare:        share,
			AgentCommissionRate: in.AgentCommissionRate,
			InstallmentNumber:   p.InstallmentNumber,
			Status:              domain.StatusActive,
		}
		if err := r.Participants.Create(ctx, pp); err != nil {
			return err
		}

		tgt := audit.Target{ProjectID: p.ID, ParticipantID: pp.ParticipantID, InvestorID: pp.InvestorID, InvestorName: pp.InvestorName}
		if err := audit.Append(ctx, r.Ledger, tgt, ledger.AuditEntry{
			TransactionType: ledger.TypeInvestment,
			Message:         fmt.Sprintf("%s invested in %s", pp.InvestorName, p.Title),
			Amount:          in.Amount,
			InvestorName:    pp.InvestorName,
		}); err != nil {
			return err
		}
		if err := audit.Append(ctx, r.Ledger, tgt, ledger.AuditEntry{
			TransactionType: ledger.TypeCommissionCalculated,
			Message:         fmt.Sprintf("Agent commission set to %.2f%%", in.AgentCommissionRate),
			InvestorName:    pp.InvestorName,
		}); err != nil {
			return err
		}

		dto = toDTO(pp)
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// RaiseCapital increases one position's contributed amount. Share is relative,
// so every active participant of the project is recomputed inside the lock.
func (u *Usecase) RaiseCapital(ctx context.Context, participantID string, additional float64) (*ParticipantDTO, error) {
	if additional <= 0 {
		return nil, fmt.Errorf("%w: additional amount must be positive", domain.ErrValidation)
	}

	var dto *ParticipantDTO
	err := u.withinPositionTx(ctx, participantID, func(r uow.Repos, p *projectDomain.Project, pp *domain.Participant) error {
		if p.Status != projectDomain.StatusActive {
			return projectDomain.ErrProjectBlocked
		}
		if p.Sold() {
			return projectDomain.ErrAlreadySold
		}
		if !pp.Active() {
			return domain.ErrClosed
		}

		active, err := r.Participants.ListActiveByProject(ctx, p.ID)
		if err != nil {
			return err
		}
		if activeCapital(active)+additional > p.ProjectAmount {
			return domain.ErrCeilingExceeded
		}

		for i := range active {
			a := &active[i]
			if a.ParticipantID == pp.ParticipantID {
				a.Amount += additional
			}
			share, err := finance.SharePercent(a.Amount, p.ProjectAmount)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrValidation, err)
			}
			a.ProjectShare = share
			if err := r.Participants.Save(ctx, a); err != nil {
				return err
			}
			if a.ParticipantID == pp.ParticipantID {
				dto = toDTO(a)
			}
		}
		if dto == nil {
			return domain.ErrNotFound
		}

		return audit.Append(ctx, r.Ledger,
			audit.Target{ProjectID: p.ID, ParticipantID: pp.ParticipantID, InvestorID: pp.InvestorID, InvestorName: pp.InvestorName},
			ledger.AuditEntry{
				TransactionType: ledger.TypeInvestment,
				Message:         fmt.Sprintf("Capital raised by %s", pp.InvestorName),
				Amount:          additional,
				InvestorName:    pp.InvestorName,
			})
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// UpdateCommission is a plain field update, independent of share.
func (u *Usecase) UpdateCommission(ctx context.Context, participantID string, rate float64) (*ParticipantDTO, error) {
	if rate < 0 || rate > 100 {
		return nil, fmt.Errorf("%w: commission rate must be within [0,100]", domain.ErrValidation)
	}

	var dto *ParticipantDTO
	err := u.withinPositionTx(ctx, participantID, func(r uow.Repos, p *projectDomain.Project, pp *domain.Participant) error {
		pp.AgentCommissionRate = rate
		if err := r.Participants.Save(ctx, pp); err != nil {
			return err
		}
		dto = toDTO(pp)
		return audit.Append(ctx, r.Ledger,
			audit.Target{ProjectID: p.ID, ParticipantID: pp.ParticipantID, InvestorID: pp.InvestorID, InvestorName: pp.InvestorName},
			ledger.AuditEntry{
				TransactionType: ledger.TypeCommissionCalculated,
				Message:         fmt.Sprintf("Agent commission updated to %.2f%%", rate),
				InvestorName:    pp.InvestorName,
			})
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// ClosePosition settles a participant out: the outstanding due moves to paid,
// the contributed amount zeroes and the position blocks. One-way; there is no
// reopen.
func (u *Usecase) ClosePosition(ctx context.Context, participantID string) (*CloseResultDTO, error) {
	var dto *CloseResultDTO
	err := u.withinPositionTx(ctx, participantID, func(r uow.Repos, p *projectDomain.Project, pp *domain.Participant) error {
		if p.Status != projectDomain.StatusActive {
			return projectDomain.ErrProjectBlocked
		}
		if !pp.Active() {
			return fmt.Errorf("%w: position already closed", domain.ErrValidation)
		}

		transferred := pp.TotalDue
		pp.TotalPaid += transferred
		pp.TotalDue = 0
		pp.Amount = 0
		pp.ProjectShare = 0
		pp.Status = domain.StatusBlock
		if err := r.Participants.Save(ctx, pp); err != nil {
			return err
		}

		dto = &CloseResultDTO{ParticipantDTO: *toDTO(pp), TransferredAmount: transferred}
		return audit.Append(ctx, r.Ledger,
			audit.Target{ProjectID: p.ID, ParticipantID: pp.ParticipantID, InvestorID: pp.InvestorID, InvestorName: pp.InvestorName},
			ledger.AuditEntry{
				TransactionType: ledger.TypeCloseProject,
				Message:         fmt.Sprintf("Project closed for %s", pp.InvestorName),
				Amount:          transferred,
				InvestorName:    pp.InvestorName,
			})
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, participantID string) (*ParticipantDTO, error) {
	pp, err := u.repo.GetByParticipantID(ctx, participantID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return toDTO(pp), nil
}

func (u *Usecase) ListByProject(ctx context.Context, projectID string) ([]ParticipantDTO, error) {
	p, err := u.projects.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projectDomain.ErrNotFound
		}
		return nil, err
	}
	items, err := u.repo.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ParticipantDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return out, nil
}

func (u *Usecase) ListByInvestor(ctx context.Context, investorID string) ([]ParticipantDTO, error) {
	items, err := u.repo.ListByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}
	out := make([]ParticipantDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return out, nil
}

// withinPositionTx locks project then participant, always in that order, so
// position flows cannot deadlock against project-level flows.
func (u *Usecase) withinPositionTx(ctx context.Context, participantID string, fn func(r uow.Repos, p *projectDomain.Project, pp *domain.Participant) error) error {
	seed, err := u.repo.GetByParticipantID(ctx, participantID)
	if err != nil {
		return err
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByIDForUpdate(ctx, seed.ProjectID)
		if err != nil {
			return err
		}
		pp, err := r.Participants.GetByParticipantIDForUpdate(ctx, participantID)
		if err != nil {
			return err
		}
		return fn(r, p, pp)
	})
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
