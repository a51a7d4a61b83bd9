package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendbook-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type submitPaymentReq struct {
	Amount      float64 `json:"amount"       validate:"required,gt=0,dec2"`
	PaymentType string  `json:"payment_type" validate:"required,oneof=partial full"`
	EvidenceURL string  `json:"evidence_url" validate:"required,url"`
	Notes       string  `json:"notes"`
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	dto, err := h.uc.ListForLoan(c.Request().Context(), actorFrom(c), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	var req submitPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), actorFrom(c), c.Param("loan_id"), payment.SubmitPaymentInput(req))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	applied, err := h.uc.Confirm(c.Request().Context(), actorFrom(c), c.Param("loan_id"), c.Param("payment_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, appliedResponse{Applied: applied})
}

type rejectPaymentReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *PaymentHandler) RejectPayment(c echo.Context) error {
	var req rejectPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	applied, err := h.uc.Reject(c.Request().Context(), actorFrom(c), c.Param("loan_id"), c.Param("payment_id"), req.Reason)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, appliedResponse{Applied: applied})
}
