package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendbook-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerEmail string  `json:"borrower_email" validate:"omitempty,email"`
	BorrowerName  string  `json:"borrower_name"`
	Amount        float64 `json:"amount"          validate:"required,gt=0,dec2"`
	Description   string  `json:"description"     validate:"required"`
	IsPersonal    bool    `json:"is_personal"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), actorFrom(c), loan.CreateLoanInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dto, err := h.uc.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), actorFrom(c), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), actorFrom(c), c.Param("loan_id")); err != nil {
		return writeDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) AcceptLoan(c echo.Context) error {
	applied, err := h.uc.Accept(c.Request().Context(), actorFrom(c), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, appliedResponse{Applied: applied})
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	applied, err := h.uc.Reject(c.Request().Context(), actorFrom(c), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, appliedResponse{Applied: applied})
}

type returnLoanReq struct {
	Evidence string `json:"evidence" validate:"omitempty,url"`
}

// ReturnLoan settles a loan manually. With an evidence URL in the body it
// records the proof and forces the returned status; without one it is the
// plain accepted → returned transition.
func (h *LoanHandler) ReturnLoan(c echo.Context) error {
	var req returnLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	ctx := c.Request().Context()
	loanID := c.Param("loan_id")

	if req.Evidence != "" {
		if err := h.uc.AddEvidence(ctx, actorFrom(c), loanID, req.Evidence); err != nil {
			return writeDomainErr(c, err)
		}
		return c.JSON(http.StatusOK, appliedResponse{Applied: true})
	}
	applied, err := h.uc.MarkReturned(ctx, actorFrom(c), loanID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, appliedResponse{Applied: applied})
}

func (h *LoanHandler) ResolveInvitation(c echo.Context) error {
	dto, err := h.uc.ResolveInvitation(c.Request().Context(), c.Param("token"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
