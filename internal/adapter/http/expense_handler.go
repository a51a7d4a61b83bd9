package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendbook-backend/internal/usecase/expense"
)

type ExpenseHandler struct{ uc *expense.Usecase }

func NewExpenseHandler(uc *expense.Usecase) *ExpenseHandler { return &ExpenseHandler{uc: uc} }

type expenseReq struct {
	Description   string  `json:"description"    validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0,dec2"`
	Category      string  `json:"category"       validate:"required"`
	ExpenseDate   string  `json:"expense_date"   validate:"required,datetime=2006-01-02"`
	IsRecurring   bool    `json:"is_recurring"`
	RecurrenceDay *int    `json:"recurrence_day" validate:"omitempty,gte=1,lte=31"`
}

func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	row, err := h.uc.Create(c.Request().Context(), actorFrom(c), expense.ExpenseInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, row)
}

func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	row, err := h.uc.Update(c.Request().Context(), actorFrom(c), c.Param("expense_id"), expense.ExpenseInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), actorFrom(c), c.Param("expense_id")); err != nil {
		return writeDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
