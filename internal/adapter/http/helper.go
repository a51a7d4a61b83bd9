package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lendbook-backend/internal/domain/apperr"
	"lendbook-backend/internal/domain/identity"
)

// actorFrom extracts the pre-authenticated caller from the Ax-* headers.
// Authentication itself happens upstream (gateway); an empty actor is still
// returned so usecases can decide whether anonymous access is allowed.
func actorFrom(c echo.Context) identity.Actor {
	h := c.Request().Header
	return identity.New(h.Get("Ax-Actor-Id"), h.Get("Ax-Actor-Email"))
}

// appliedResponse reports whether a state transition actually happened.
// false means the call was a no-op (already resolved), not a failure.
type appliedResponse struct {
	Applied bool `json:"applied"`
}

// writeDomainErr maps sentinel failure kinds to status codes.
func writeDomainErr(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidState), errors.Is(err, apperr.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, apperr.ErrValidation):
		code = http.StatusBadRequest
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
