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
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for the quotation side of the
// workflow: intake, reads, status changes, pricing, and approval.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation registers a client quotation request in FOR_REVIEW.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.CreateQuotation(c.Request.Context(), usecase.CreateQuotationInput{
		RequesterID:         payload.RequesterID,
		BuildingType:        payload.BuildingType,
		EstablishmentWidth:  payload.EstablishmentWidth,
		EstablishmentHeight: payload.EstablishmentHeight,
		Features:            payload.Features,
		FloorPlanRef:        payload.FloorPlanRef,
	})
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

func (h *QuotationHandler) GetQuotationByID(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

// ListQuotations lists a requester's quotations (?requester_id=...).
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	quotations, err := h.usecase.ListByRequesterID(c.Request.Context(), c.Query("requester_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

// UpdateQuotationStatus applies one transition over the quotation state
// machine. APPROVED is rejected here; the approve endpoint owns it.
func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	var payload request.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.UpdateStatus(
		c.Request.Context(),
		c.Param("quotation_id"),
		entities.QuotationStatus(payload.ResolveStatus()),
		payload.ActorID,
	)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

// PriceQuotation records the cost breakdown and quotation document, moving
// the quotation into FOR_APPROVAL.
func (h *QuotationHandler) PriceQuotation(c *gin.Context) {
	var payload request.PriceQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.PriceQuotation(c.Request.Context(), usecase.PriceQuotationInput{
		QuotationID:      c.Param("quotation_id"),
		MaterialsCost:    payload.MaterialsCost,
		LaborCost:        payload.LaborCost,
		RequirementsCost: payload.RequirementsCost,
		QuotationDocRef:  payload.QuotationDocRef,
		ActorID:          payload.ActorID,
	})
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

// ApproveQuotation moves a CLIENT_APPROVAL quotation to APPROVED and returns
// the project created from it.
func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	// Body is optional here; it only carries the acting principal.
	var payload request.ApproveQuotationRequest
	_ = c.ShouldBindJSON(&payload)

	project, err := h.usecase.Approve(c.Request.Context(), c.Param("quotation_id"), payload.ActorID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidRequesterID),
		errors.Is(err, usecase.ErrInvalidQuotationStatus),
		errors.Is(err, usecase.ErrInvalidCostComponent),
		errors.Is(err, usecase.ErrIncompleteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectAlreadyExists):
		return pkg.NewDomainErrorSimple("PROJECT_ALREADY_EXISTS", "Project already exists for this quotation", http.StatusConflict)
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
