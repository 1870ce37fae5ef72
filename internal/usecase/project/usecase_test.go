package project

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	ledgerDomain "investhub-backend/internal/domain/ledger"
	participantDomain "investhub-backend/internal/domain/participant"
	domain "investhub-backend/internal/domain/project"
	"investhub-backend/internal/domain/uow"
	"investhub-backend/internal/testutil/ledgermock"
	"investhub-backend/internal/testutil/participantmock"
	"investhub-backend/internal/testutil/projectmock"
	"investhub-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

// memLedger gives the ledger mock enough state for audit appends to land on
// real rows.
type memLedger struct {
	rows map[string]*ledgerDomain.Transaction
}

func newMemLedger() *memLedger {
	return &memLedger{rows: map[string]*ledgerDomain.Transaction{}}
}

func (m *memLedger) key(projectID uint64, participantID, month string) string {
	return fmt.Sprintf("%d|%s|%s", projectID, participantID, month)
}

func (m *memLedger) mock() *ledgermock.Repo {
	return &ledgermock.Repo{
		GetPeriodFn: func(ctx context.Context, projectID uint64, participantID, month string) (*ledgerDomain.Transaction, error) {
			if row, ok := m.rows[m.key(projectID, participantID, month)]; ok {
				return row, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, t *ledgerDomain.Transaction) error {
			m.rows[m.key(t.ProjectID, t.ParticipantID, t.Month)] = t
			return nil
		},
		SaveFn: func(ctx context.Context, t *ledgerDomain.Transaction) error {
			m.rows[m.key(t.ProjectID, t.ParticipantID, t.Month)] = t
			return nil
		},
	}
}

func (m *memLedger) projectLogs(projectID uint64) []ledgerDomain.AuditEntry {
	for _, row := range m.rows {
		if row.ProjectID == projectID && row.ParticipantID == "" {
			return row.Logs
		}
	}
	return nil
}

func (m *memLedger) participantRow(participantID string) *ledgerDomain.Transaction {
	for _, row := range m.rows {
		if row.ParticipantID == participantID {
			return row
		}
	}
	return nil
}

func activePair() []participantDomain.Participant {
	return []participantDomain.Participant{
		{ParticipantID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", InvestorID: "inv-a", InvestorName: "Alice", Amount: 60000, ProjectShare: 60, Status: participantDomain.StatusActive},
		{ParticipantID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", InvestorID: "inv-b", InvestorName: "Basil", Amount: 40000, ProjectShare: 40, Status: participantDomain.StatusActive},
	}
}

func saleFixture(p *domain.Project, parts []participantDomain.Participant, lgr *memLedger) (*Usecase, *participantmock.Repo) {
	participants := &participantmock.Repo{
		ListActiveByProjectFn: func(ctx context.Context, projectID uint64) ([]participantDomain.Participant, error) {
			return parts, nil
		},
	}
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(ctx context.Context, projectID string) (*domain.Project, error) {
			if projectID != p.ProjectID {
				return nil, gorm.ErrRecordNotFound
			}
			return p, nil
		},
	}
	repos := uow.Repos{Projects: projects, Participants: participants, Ledger: lgr.mock()}
	return NewUsecase(projects, uowmock.Passthrough(repos)), participants
}

func TestDeclareSale_TwoInvestorScenario(t *testing.T) {
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		Title: "Dockside Build", CurrencyType: "GBP",
		ProjectAmount: 100000, AdminCostPercent: 10,
		Status: domain.StatusActive,
	}
	parts := activePair()
	lgr := newMemLedger()
	uc, _ := saleFixture(p, parts, lgr)

	res, err := uc.DeclareSale(context.Background(), p.ProjectID, 150000)
	if err != nil {
		t.Fatalf("DeclareSale: %v", err)
	}

	if res.GrossProfit != 50000 || res.AdminFee != 5000 || res.NetProfit != 45000 {
		t.Fatalf("breakdown = %+v", res)
	}
	if len(res.Payouts) != 2 {
		t.Fatalf("payouts = %d, want 2", len(res.Payouts))
	}
	if res.Payouts[0].Amount != 27000 || res.Payouts[1].Amount != 18000 {
		t.Fatalf("payouts = %+v", res.Payouts)
	}
	if res.Payouts[0].Amount+res.Payouts[1].Amount != res.NetProfit {
		t.Fatalf("payout sum %v != net %v", res.Payouts[0].Amount+res.Payouts[1].Amount, res.NetProfit)
	}
	if res.DistributionID == "" {
		t.Fatal("missing distribution id")
	}

	// participants' dues were credited inside the same flow
	if parts[0].TotalDue != 27000 || parts[1].TotalDue != 18000 {
		t.Fatalf("dues = %v / %v", parts[0].TotalDue, parts[1].TotalDue)
	}

	// each payout is also allocated as the investor's monthly profit
	for i, want := range []float64{27000, 18000} {
		row := lgr.participantRow(parts[i].ParticipantID)
		if row == nil {
			t.Fatalf("no month row for %s", parts[i].InvestorName)
		}
		if row.Profit != want {
			t.Fatalf("%s month profit = %v, want %v", parts[i].InvestorName, row.Profit, want)
		}
	}

	// project-level events in declaration order, all in one batch
	logs := lgr.projectLogs(p.ID)
	wantOrder := []ledgerDomain.TransactionType{
		ledgerDomain.TypeSaleDeclared,
		ledgerDomain.TypeGrossProfit,
		ledgerDomain.TypeAdminCostDeclared,
		ledgerDomain.TypeNetProfit,
	}
	if len(logs) != len(wantOrder) {
		t.Fatalf("project logs = %d, want %d", len(logs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if logs[i].TransactionType != want {
			t.Fatalf("log[%d] = %s, want %s", i, logs[i].TransactionType, want)
		}
		if logs[i].DistributionID != res.DistributionID {
			t.Fatalf("log[%d] outside batch: %q", i, logs[i].DistributionID)
		}
	}

	if p.SaleAmount == nil || *p.SaleAmount != 150000 || !p.Sold() {
		t.Fatalf("project not marked sold: %+v", p)
	}
}

func TestDeclareSale_SecondDeclarationRejected(t *testing.T) {
	now := time.Now().UTC()
	sale := 150000.0
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		ProjectAmount: 100000, AdminCostPercent: 10,
		SaleAmount: &sale, SaleDeclaredAt: &now,
		Status: domain.StatusActive,
	}
	uc, _ := saleFixture(p, activePair(), newMemLedger())

	_, err := uc.DeclareSale(context.Background(), p.ProjectID, 150000)
	if !errors.Is(err, domain.ErrAlreadySold) {
		t.Fatalf("err = %v, want ErrAlreadySold", err)
	}
}

func TestDeclareSale_RejectsNonPositiveAndBlocked(t *testing.T) {
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		ProjectAmount: 100000, Status: domain.StatusBlock,
	}
	uc, _ := saleFixture(p, activePair(), newMemLedger())
	ctx := context.Background()

	if _, err := uc.DeclareSale(ctx, p.ProjectID, 0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("zero amount: err = %v", err)
	}
	if _, err := uc.DeclareSale(ctx, p.ProjectID, 150000); !errors.Is(err, domain.ErrProjectBlocked) {
		t.Fatalf("blocked project: err = %v", err)
	}
}

func TestDeclareSale_LossDistributesNothing(t *testing.T) {
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		ProjectAmount: 100000, AdminCostPercent: 10,
		Status: domain.StatusActive,
	}
	parts := activePair()
	uc, _ := saleFixture(p, parts, newMemLedger())

	res, err := uc.DeclareSale(context.Background(), p.ProjectID, 80000)
	if err != nil {
		t.Fatalf("DeclareSale: %v", err)
	}
	if res.GrossProfit != -20000 || res.AdminFee != 0 || res.NetProfit != -20000 {
		t.Fatalf("breakdown = %+v", res)
	}
	if len(res.Payouts) != 0 {
		t.Fatalf("loss must not pay out: %+v", res.Payouts)
	}
	if parts[0].TotalDue != 0 || parts[1].TotalDue != 0 {
		t.Fatalf("loss must not credit dues: %+v", parts)
	}
}

func TestRevalue_RequiresExistingSale(t *testing.T) {
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		ProjectAmount: 100000, Status: domain.StatusActive,
	}
	uc, _ := saleFixture(p, activePair(), newMemLedger())

	if _, err := uc.Revalue(context.Background(), p.ProjectID, 120000); !errors.Is(err, domain.ErrNotSold) {
		t.Fatalf("err = %v, want ErrNotSold", err)
	}
}

func TestRevalue_OverwritesWithoutDistribution(t *testing.T) {
	now := time.Now().UTC()
	sale := 150000.0
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		ProjectAmount: 100000, SaleAmount: &sale, SaleDeclaredAt: &now,
		Status: domain.StatusActive,
	}
	parts := activePair()
	lgr := newMemLedger()
	uc, _ := saleFixture(p, parts, lgr)

	dto, err := uc.Revalue(context.Background(), p.ProjectID, 175000)
	if err != nil {
		t.Fatalf("Revalue: %v", err)
	}
	if dto.SaleAmount == nil || *dto.SaleAmount != 175000 {
		t.Fatalf("sale amount = %v", dto.SaleAmount)
	}
	if parts[0].TotalDue != 0 {
		t.Fatal("revaluation must not redistribute")
	}
	logs := lgr.projectLogs(p.ID)
	if len(logs) != 1 || logs[0].TransactionType != ledgerDomain.TypeInvestmentUpdated {
		t.Fatalf("logs = %+v", logs)
	}
}

func TestRaiseCapital_RecomputesAllShares(t *testing.T) {
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		ProjectAmount: 100000, Status: domain.StatusActive,
	}
	parts := activePair()
	lgr := newMemLedger()
	uc, _ := saleFixture(p, parts, lgr)

	dto, err := uc.RaiseCapital(context.Background(), p.ProjectID, 200000)
	if err != nil {
		t.Fatalf("RaiseCapital: %v", err)
	}
	if dto.ProjectAmount != 200000 || !dto.IsCapitalRaise {
		t.Fatalf("dto = %+v", dto)
	}
	// shares halved against the doubled denominator
	if parts[0].ProjectShare != 30 || parts[1].ProjectShare != 20 {
		t.Fatalf("shares = %v / %v", parts[0].ProjectShare, parts[1].ProjectShare)
	}
}

func TestRaiseCapital_MustExceedCurrent(t *testing.T) {
	p := &domain.Project{
		ID: 7, ProjectID: "cccccccccccccccccccccccccccccccc",
		ProjectAmount: 100000, Status: domain.StatusActive,
	}
	uc, _ := saleFixture(p, activePair(), newMemLedger())

	if _, err := uc.RaiseCapital(context.Background(), p.ProjectID, 90000); !errors.Is(err, domain.ErrInvalidRaise) {
		t.Fatalf("err = %v, want ErrInvalidRaise", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := NewUsecase(&projectmock.Repo{}, uowmock.New())
	ctx := context.Background()

	cases := []CreateInput{
		{Title: "", CurrencyType: "GBP"},
		{Title: "X", CurrencyType: "ZZZ"},
		{Title: "X", CurrencyType: "GBP", ProjectAmount: -1},
		{Title: "X", CurrencyType: "GBP", AdminCostPercent: 101},
	}
	for i, in := range cases {
		if _, err := uc.Create(ctx, in); err == nil {
			t.Errorf("case %d: want error", i)
		}
	}
}

func TestCreate_Success(t *testing.T) {
	var created *domain.Project
	repo := &projectmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Project) error {
			created = p
			return nil
		},
	}
	uc := NewUsecase(repo, uowmock.New())

	dto, err := uc.Create(context.Background(), CreateInput{
		Title: "Dockside Build", CurrencyType: "gbp",
		ProjectAmount: 100000, AdminCostPercent: 10,
		ProjectDuration: 5, InstallmentNumber: 12,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(dto.ProjectID) != 32 {
		t.Fatalf("project id = %q", dto.ProjectID)
	}
	if created.CurrencyType != "GBP" {
		t.Fatalf("currency not normalized: %q", created.CurrencyType)
	}
	if dto.Status != string(domain.StatusActive) {
		t.Fatalf("status = %s", dto.Status)
	}
}
