package handlers

import (
	"errors"
	"net/http"

	request "veltech_portal/internal/adapter/http/dto/request"
	response "veltech_portal/internal/adapter/http/dto/response"
	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase"
	"veltech_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles proof-of-payment submission and the accounting
// accept/reject resolutions.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// SubmitPayment records a client's proof of payment as PENDING.
func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	var payload request.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitPaymentInput{
		ProjectID:     payload.ProjectID,
		RequesterID:   payload.RequesterID,
		ProofImageRef: payload.ProofImageRef,
		ReferenceNo:   payload.ReferenceNo,
		Amount:        payload.Amount,
		Category:      entities.PaymentCategory(payload.ResolveCategory()),
		MilestoneNo:   payload.MilestoneNo,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ListPayments lists a project's payments (?project_id=...).
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByProjectID(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// AcceptPayment resolves a pending payment and applies it to the project
// balance, payment status, and (for milestone payments) the milestone.
func (h *PaymentHandler) AcceptPayment(c *gin.Context) {
	// Body is optional here; it only carries the acting principal.
	var payload request.ResolvePaymentRequest
	_ = c.ShouldBindJSON(&payload)

	result, err := h.usecase.Accept(c.Request.Context(), c.Param("payment_id"), payload.ActorID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAcceptPaymentResult(result))
}

// RejectPayment resolves a pending payment without applying it.
func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	var payload request.ResolvePaymentRequest
	_ = c.ShouldBindJSON(&payload)

	payment, err := h.usecase.Reject(c.Request.Context(), c.Param("payment_id"), payload.ActorID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidRequesterID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentCategory),
		errors.Is(err, usecase.ErrIncompleteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Illegal status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_CONFLICT", "Entity changed concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvariantViolation):
		return pkg.NewDomainErrorSimple("INVARIANT_VIOLATION", "Operation violates a workflow invariant", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
