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
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for projects and their milestone
// schedules.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// ListProjects lists a requester's projects (?requester_id=...).
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListByRequesterID(c.Request.Context(), c.Query("requester_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	var payload request.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateStatus(
		c.Request.Context(),
		c.Param("project_id"),
		entities.ProjectStatus(payload.ResolveStatus()),
		payload.ActorID,
	)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// SetContractRefs attaches contract and/or signed-contract document
// references to the project.
func (h *ProjectHandler) SetContractRefs(c *gin.Context) {
	var payload request.SetContractRefsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.SetContractRefs(c.Request.Context(), c.Param("project_id"), payload.ContractRef, payload.SignedContractRef)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// SetMilestones creates the progress-billing schedule for the project.
func (h *ProjectHandler) SetMilestones(c *gin.Context) {
	var payload request.MilestoneScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	inputs := make([]usecase.MilestoneInput, 0, len(payload.Milestones))
	for _, ms := range payload.Milestones {
		inputs = append(inputs, usecase.MilestoneInput{
			MilestoneNo:  ms.MilestoneNo,
			Price:        ms.Price,
			Description:  ms.Description,
			StartDate:    ms.StartDate,
			EstimatedEnd: ms.EstimatedEnd,
		})
	}

	milestones, err := h.usecase.SetMilestones(c.Request.Context(), c.Param("project_id"), inputs)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMilestones(milestones))
}

func (h *ProjectHandler) ListMilestones(c *gin.Context) {
	milestones, err := h.usecase.ListMilestones(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestones(milestones))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidRequesterID),
		errors.Is(err, usecase.ErrInvalidProjectStatus),
		errors.Is(err, usecase.ErrInvalidMilestoneSchedule),
		errors.Is(err, usecase.ErrIncompleteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
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
