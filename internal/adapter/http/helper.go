package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	ledgerDomain "investhub-backend/internal/domain/ledger"
	participantDomain "investhub-backend/internal/domain/participant"
	projectDomain "investhub-backend/internal/domain/project"
)

// ---- helpers ----

// writeDomainError maps usecase errors onto HTTP statuses. Money-moving
// operations must never fail silently, so unknown errors still surface as 500.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, projectDomain.ErrNotFound),
		errors.Is(err, participantDomain.ErrNotFound),
		errors.Is(err, ledgerDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, projectDomain.ErrAlreadySold),
		errors.Is(err, participantDomain.ErrDuplicate):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, projectDomain.ErrValidation),
		errors.Is(err, projectDomain.ErrInvalidRaise),
		errors.Is(err, projectDomain.ErrInvalidCurrency),
		errors.Is(err, projectDomain.ErrProjectBlocked),
		errors.Is(err, projectDomain.ErrNotSold),
		errors.Is(err, participantDomain.ErrValidation),
		errors.Is(err, participantDomain.ErrCeilingExceeded),
		errors.Is(err, participantDomain.ErrClosed),
		errors.Is(err, ledgerDomain.ErrValidation),
		errors.Is(err, ledgerDomain.ErrAlreadyPaid):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
