package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"investhub-backend/internal/usecase/participant"
)

type ParticipantHandler struct{ uc *participant.Usecase }

func NewParticipantHandler(uc *participant.Usecase) *ParticipantHandler {
	return &ParticipantHandler{uc: uc}
}

type addParticipantReq struct {
	InvestmentID        string  `json:"investmentId"        validate:"required,hex32"`
	InvestorID          string  `json:"investorId"          validate:"required"`
	InvestorName        string  `json:"investorName"`
	Amount              float64 `json:"amount"              validate:"gt=0,dec2"`
	AgentCommissionRate float64 `json:"agentCommissionRate" validate:"pct"`
}

// patchParticipantReq serves three console actions on one route: raising a
// position's capital (amount), editing commission (agentCommissionRate) and
// closing the position (status "block").
type patchParticipantReq struct {
	Amount              *float64 `json:"amount"`
	AgentCommissionRate *float64 `json:"agentCommissionRate"`
	Status              *string  `json:"status"`
}

func (h *ParticipantHandler) AddParticipant(c echo.Context) error {
	var req addParticipantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Add(c.Request().Context(), participant.AddInput{
		ProjectID:           req.InvestmentID,
		InvestorID:          req.InvestorID,
		InvestorName:        req.InvestorName,
		Amount:              req.Amount,
		AgentCommissionRate: req.AgentCommissionRate,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ParticipantHandler) ListParticipants(c echo.Context) error {
	ctx := c.Request().Context()
	if investmentID := c.QueryParam("investmentId"); investmentID != "" {
		items, err := h.uc.ListByProject(ctx, investmentID)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"result": items})
	}
	if investorID := c.QueryParam("investorId"); investorID != "" {
		items, err := h.uc.ListByInvestor(ctx, investorID)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"result": items})
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "investmentId or investorId query param required"})
}

func (h *ParticipantHandler) PatchParticipant(c echo.Context) error {
	participantID := c.Param("participant_id")
	var req patchParticipantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	ctx := c.Request().Context()

	switch {
	case req.Status != nil && *req.Status == "block":
		res, err := h.uc.ClosePosition(ctx, participantID)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, res)

	case req.Amount != nil:
		dto, err := h.uc.RaiseCapital(ctx, participantID, *req.Amount)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto)

	case req.AgentCommissionRate != nil:
		dto, err := h.uc.UpdateCommission(ctx, participantID, *req.AgentCommissionRate)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto)

	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no recognized fields in body"})
	}
}
