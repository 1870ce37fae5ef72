package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"investhub-backend/internal/usecase/project"
)

type ProjectHandler struct{ uc *project.Usecase }

func NewProjectHandler(uc *project.Usecase) *ProjectHandler { return &ProjectHandler{uc: uc} }

type createProjectReq struct {
	Title             string  `json:"title"             validate:"required"`
	Details           string  `json:"details"`
	CurrencyType      string  `json:"currencyType"      validate:"required,iso4217"`
	ProjectAmount     float64 `json:"projectAmount"     validate:"gte=0,dec2"`
	AmountRequired    float64 `json:"amountRequired"    validate:"gte=0,dec2"`
	AdminCost         float64 `json:"adminCost"         validate:"pct"`
	ProjectDuration   int     `json:"projectDuration"   validate:"gte=0"`
	InstallmentNumber int     `json:"installmentNumber" validate:"gte=0"`
}

// patchProjectReq covers every shape the console sends to PATCH /investments:
// plain edits, capital raises (projectAmount + isCapitalRaise) and sale /
// revaluation declarations (saleAmount).
type patchProjectReq struct {
	Title          *string  `json:"title"`
	Details        *string  `json:"details"`
	AdminCost      *float64 `json:"adminCost"`
	AmountRequired *float64 `json:"amountRequired"`
	Status         *string  `json:"status"`
	ProjectAmount  *float64 `json:"projectAmount"`
	IsCapitalRaise bool     `json:"isCapitalRaise"`
	SaleAmount     *float64 `json:"saleAmount"`
	Revaluation    bool     `json:"revaluation"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req createProjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), project.CreateInput{
		Title:             req.Title,
		Details:           req.Details,
		CurrencyType:      req.CurrencyType,
		ProjectAmount:     req.ProjectAmount,
		AmountRequired:    req.AmountRequired,
		AdminCostPercent:  req.AdminCost,
		ProjectDuration:   req.ProjectDuration,
		InstallmentNumber: req.InstallmentNumber,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	res, err := h.uc.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ProjectHandler) PatchProject(c echo.Context) error {
	projectID := c.Param("project_id")
	var req patchProjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	ctx := c.Request().Context()

	switch {
	case req.SaleAmount != nil && req.Revaluation:
		dto, err := h.uc.Revalue(ctx, projectID, *req.SaleAmount)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto)

	case req.SaleAmount != nil:
		res, err := h.uc.DeclareSale(ctx, projectID, *req.SaleAmount)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, res)

	case req.ProjectAmount != nil && req.IsCapitalRaise:
		dto, err := h.uc.RaiseCapital(ctx, projectID, *req.ProjectAmount)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto)

	default:
		dto, err := h.uc.Update(ctx, projectID, project.UpdateInput{
			Title:            req.Title,
			Details:          req.Details,
			AdminCostPercent: req.AdminCost,
			AmountRequired:   req.AmountRequired,
			Status:           req.Status,
		})
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dto)
	}
}
