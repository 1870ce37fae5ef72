package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"investhub-backend/internal/usecase/ledger"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type recordPaymentReq struct {
	PaidAmount float64 `json:"paidAmount" validate:"gt=0,dec2"`
	Note       string  `json:"note"`
}

type recordInstallmentReq struct {
	ParticipantID string  `json:"participantId" validate:"required,hex32"`
	Amount        float64 `json:"amount"        validate:"gt=0,dec2"`
	Note          string  `json:"note"`
}

func (h *LedgerHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), c.Param("transaction_id"), ledger.RecordPaymentInput{
		PaidAmount: req.PaidAmount,
		Note:       req.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// RecordInstallment is the legacy installment route kept for older console
// revisions; it lands on the same usecase as RecordPayment.
func (h *LedgerHandler) RecordInstallment(c echo.Context) error {
	var req recordInstallmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordInstallment(c.Request().Context(), ledger.RecordInstallmentInput{
		ProjectID:     c.Param("project_id"),
		ParticipantID: req.ParticipantID,
		Amount:        req.Amount,
		Note:          req.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" && raw != "all" {
		limit, _ = strconv.Atoi(raw)
	}
	items, err := h.uc.List(c.Request().Context(), c.QueryParam("investmentId"), c.QueryParam("investorId"), year, limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"result": items})
}

func (h *LedgerHandler) History(c echo.Context) error {
	f := ledger.HistoryFilter{InvestorID: c.QueryParam("investorId")}
	if raw := c.QueryParam("from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			f.From = t
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			// inclusive end of day
			f.To = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	if raw := c.QueryParam("limit"); raw != "" && raw != "all" {
		f.Limit, _ = strconv.Atoi(raw)
	}
	entries, err := h.uc.History(c.Request().Context(), c.Param("project_id"), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"result": entries})
}

func (h *LedgerHandler) LatestDistribution(c echo.Context) error {
	dto, err := h.uc.LatestDistribution(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) MonthlyStatement(c echo.Context) error {
	investmentID := c.QueryParam("investmentId")
	if investmentID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "investmentId query param required"})
	}
	year, _ := strconv.Atoi(c.QueryParam("year"))
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	rows, err := h.uc.MonthlyStatement(c.Request().Context(), investmentID, c.QueryParam("investorId"), year)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"result": rows})
}
