package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendbook-backend/internal/usecase/contact"
)

type ContactHandler struct{ uc *contact.Usecase }

func NewContactHandler(uc *contact.Usecase) *ContactHandler { return &ContactHandler{uc: uc} }

type createContactReq struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (h *ContactHandler) ListContacts(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req createContactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	row, err := h.uc.Create(c.Request().Context(), actorFrom(c), contact.CreateContactInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

func (h *ContactHandler) UpdateContact(c echo.Context) error {
	var req contact.UpdateContactInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.Update(c.Request().Context(), actorFrom(c), c.Param("email"), req); err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, appliedResponse{Applied: true})
}

func (h *ContactHandler) DeleteContact(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), actorFrom(c), c.Param("email")); err != nil {
		return writeDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
