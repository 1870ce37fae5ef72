package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ledgerDomain "investhub-backend/internal/domain/ledger"
	participantDomain "investhub-backend/internal/domain/participant"
	projectDomain "investhub-backend/internal/domain/project"
	"investhub-backend/internal/domain/uow"
	"investhub-backend/internal/testutil/ledgermock"
	"investhub-backend/internal/testutil/participantmock"
	"investhub-backend/internal/testutil/projectmock"
	"investhub-backend/internal/testutil/uowmock"
	uc "investhub-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func ledgerUsecase(p *projectDomain.Project, pos *participantDomain.Participant, period *ledgerDomain.Transaction, rows []ledgerDomain.Transaction) *uc.Usecase {
	projects := &projectmock.Repo{
		GetByProjectIDFn: func(ctx context.Context, projectID string) (*projectDomain.Project, error) {
			if p == nil || projectID != p.ProjectID {
				return nil, gorm.ErrRecordNotFound
			}
			return p, nil
		},
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*projectDomain.Project, error) {
			if p == nil || id != p.ID {
				return nil, gorm.ErrRecordNotFound
			}
			return p, nil
		},
	}
	participants := &participantmock.Repo{
		GetByParticipantIDForUpdateFn: func(ctx context.Context, participantID string) (*participantDomain.Participant, error) {
			if pos == nil || participantID != pos.ParticipantID {
				return nil, gorm.ErrRecordNotFound
			}
			return pos, nil
		},
	}
	lgr := &ledgermock.Repo{
		GetByTransactionIDFn: func(ctx context.Context, transactionID string) (*ledgerDomain.Transaction, error) {
			if period == nil || transactionID != period.TransactionID {
				return nil, gorm.ErrRecordNotFound
			}
			return period, nil
		},
		GetByTransactionIDForUpdateFn: func(ctx context.Context, transactionID string) (*ledgerDomain.Transaction, error) {
			if period == nil || transactionID != period.TransactionID {
				return nil, gorm.ErrRecordNotFound
			}
			return period, nil
		},
		ListFn: func(ctx context.Context, q ledgerDomain.Query) ([]ledgerDomain.Transaction, error) {
			return rows, nil
		},
	}
	repos := uow.Repos{Projects: projects, Participants: participants, Ledger: lgr}
	return uc.NewUsecase(lgr, projects, uowmock.Passthrough(repos))
}

func TestRecordPayment_SettlesPeriod(t *testing.T) {
	e := newEchoWithValidator()
	p := &projectDomain.Project{ID: 7, ProjectID: strings.Repeat("c", 32), Status: projectDomain.StatusActive}
	pos := &participantDomain.Participant{
		ParticipantID: strings.Repeat("a", 32), ProjectID: 7,
		TotalDue: 27000, Status: participantDomain.StatusActive,
	}
	period := &ledgerDomain.Transaction{
		TransactionID: strings.Repeat("d", 32), ProjectID: 7,
		ParticipantID: pos.ParticipantID, Month: "2026-08",
		MonthlyTotalDue: 500, Status: ledgerDomain.StatusDue,
	}
	h := NewLedgerHandler(ledgerUsecase(p, pos, period, nil))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/transactions/"+period.TransactionID, mustJSON(map[string]any{
		"paidAmount": 500,
		"note":       "settled in full",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("transaction_id")
	c.SetParamValues(period.TransactionID)

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var dto uc.AccrualDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != "paid" || dto.MonthlyTotalPaid != 500 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestRecordPayment_AlreadyPaid(t *testing.T) {
	e := newEchoWithValidator()
	p := &projectDomain.Project{ID: 7, ProjectID: strings.Repeat("c", 32), Status: projectDomain.StatusActive}
	pos := &participantDomain.Participant{
		ParticipantID: strings.Repeat("a", 32), ProjectID: 7, Status: participantDomain.StatusActive,
	}
	period := &ledgerDomain.Transaction{
		TransactionID: strings.Repeat("d", 32), ProjectID: 7,
		ParticipantID: pos.ParticipantID, Month: "2026-08",
		MonthlyTotalDue: 500, MonthlyTotalPaid: 500, Status: ledgerDomain.StatusPaid,
	}
	h := NewLedgerHandler(ledgerUsecase(p, pos, period, nil))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/transactions/"+period.TransactionID, mustJSON(map[string]any{"paidAmount": 1}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("transaction_id")
	c.SetParamValues(period.TransactionID)

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestRecordPayment_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLedgerHandler(ledgerUsecase(nil, nil, nil, nil))

	req := httptest.NewRequest(stdhttp.MethodPatch, "/transactions/xxx", mustJSON(map[string]any{"paidAmount": -5}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("transaction_id")
	c.SetParamValues("xxx")

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "PaidAmount", "greater than 0") {
		t.Fatalf("missing gt detail: %+v", er.Details)
	}
}

func TestMonthlyStatement_RequiresInvestmentID(t *testing.T) {
	e := echo.New()
	h := NewLedgerHandler(ledgerUsecase(nil, nil, nil, nil))

	req := httptest.NewRequest(stdhttp.MethodGet, "/transactions/monthly", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.MonthlyStatement(c); err != nil {
		t.Fatalf("MonthlyStatement error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLatestDistribution_NoSale(t *testing.T) {
	e := echo.New()
	p := &projectDomain.Project{ID: 7, ProjectID: strings.Repeat("c", 32)}
	h := NewLedgerHandler(ledgerUsecase(p, nil, nil, nil))

	req := httptest.NewRequest(stdhttp.MethodGet, "/investments/"+p.ProjectID+"/distribution", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("project_id")
	c.SetParamValues(p.ProjectID)

	if err := h.LatestDistribution(c); err != nil {
		t.Fatalf("LatestDistribution error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListTransactions_AllLimit(t *testing.T) {
	e := echo.New()
	rows := []ledgerDomain.Transaction{
		{TransactionID: strings.Repeat("d", 32), ProjectID: 7, Month: "2026-08", MonthlyTotalDue: 500},
	}
	h := NewLedgerHandler(ledgerUsecase(nil, nil, nil, rows))

	req := httptest.NewRequest(stdhttp.MethodGet, "/transactions?limit=all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListTransactions(c); err != nil {
		t.Fatalf("ListTransactions error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Result []uc.AccrualDTO `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(body.Result) != 1 || body.Result[0].Month != "2026-08" {
		t.Fatalf("unexpected result: %+v", body.Result)
	}
}
