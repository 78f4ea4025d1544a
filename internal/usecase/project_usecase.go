package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProjectID         = errors.New("invalid project id")
	ErrInvalidProjectStatus     = errors.New("invalid project status")
	ErrInvalidMilestoneSchedule = errors.New("invalid milestone schedule")
)

// MilestoneInput is one slice of a project's progress-billing schedule.

type MilestoneInput struct {
	MilestoneNo  int
	Price        decimal.Decimal
	Description  string
	StartDate    time.Time
	EstimatedEnd time.Time
}

// IProjectUseCase exposes project reads, project status transitions, contract
// document updates, and milestone schedule setup.

type IProjectUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByRequesterID(ctx context.Context, requesterID string) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, target entities.ProjectStatus, actorID string) (entities.Project, error)
	SetContractRefs(ctx context.Context, id, contractRef, signedContractRef string) (entities.Project, error)
	SetMilestones(ctx context.Context, projectID string, inputs []MilestoneInput) ([]entities.ProjectMilestone, error)
	ListMilestones(ctx context.Context, projectID string) ([]entities.ProjectMilestone, error)
}

type ProjectUseCase struct {
	repo          interfaces.IProjectRepository
	milestoneRepo interfaces.IMilestoneRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, milestoneRepo interfaces.IMilestoneRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, milestoneRepo: milestoneRepo}
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListByRequesterID(ctx context.Context, requesterID string) ([]entities.Project, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return nil, ErrInvalidRequesterID
	}
	return u.repo.ListByRequesterID(ctx, requesterID)
}

// UpdateStatus applies one legal transition over the project graph. ON_HOLD
// and TERMINATED are reachable from every non-terminal state through the
// same edge table.
func (u *ProjectUseCase) UpdateStatus(ctx context.Context, id string, target entities.ProjectStatus, actorID string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !target.IsValid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if !current.Status.CanTransitionTo(target) {
		return entities.Project{}, ErrIllegalTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, current.Status, target)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, u.classifyWriteFailure(ctx, id)
	}
	log.Printf("[project][usecase] status updated id=%s from=%s to=%s actor=%s", id, current.Status, target, actorID)
	return updated, nil
}

func (u *ProjectUseCase) SetContractRefs(ctx context.Context, id, contractRef, signedContractRef string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	contractRef = strings.TrimSpace(contractRef)
	signedContractRef = strings.TrimSpace(signedContractRef)
	if contractRef == "" && signedContractRef == "" {
		return entities.Project{}, ErrIncompleteInput
	}

	updated, err := u.repo.SetContractRefs(ctx, id, contractRef, signedContractRef)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

// SetMilestones creates the progress-billing schedule for a project in
// SET_MILESTONE. Numbers must be contiguous, continuing right after any
// already-created milestones (starting at 1 for a fresh project).
func (u *ProjectUseCase) SetMilestones(ctx context.Context, projectID string, inputs []MilestoneInput) ([]entities.ProjectMilestone, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	if len(inputs) == 0 {
		return nil, ErrInvalidMilestoneSchedule
	}

	project, err := u.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status != entities.ProjectStatusSetMilestone {
		return nil, ErrInvariantViolation
	}

	existing, err := u.milestoneRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	next := len(existing) + 1
	now := time.Now().UTC()
	milestones := make([]entities.ProjectMilestone, 0, len(inputs))
	for i, in := range inputs {
		if in.MilestoneNo != next+i {
			return nil, ErrInvalidMilestoneSchedule
		}
		if in.Price.Sign() <= 0 || strings.TrimSpace(in.Description) == "" {
			return nil, ErrInvalidMilestoneSchedule
		}
		if !in.EstimatedEnd.IsZero() && in.EstimatedEnd.Before(in.StartDate) {
			return nil, ErrInvalidMilestoneSchedule
		}
		milestones = append(milestones, entities.ProjectMilestone{
			ProjectID:     projectID,
			MilestoneNo:   in.MilestoneNo,
			Price:         in.Price,
			Description:   strings.TrimSpace(in.Description),
			StartDate:     in.StartDate,
			EstimatedEnd:  in.EstimatedEnd,
			Status:        entities.MilestoneStatusPending,
			BillingStatus: entities.MilestoneBillingStatusUnbilled,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	created, err := u.milestoneRepo.CreateBatch(ctx, milestones)
	if err != nil {
		return nil, err
	}
	// A canceled batch means a concurrent caller took one of the numbers.
	if len(created) == 0 {
		return nil, ErrConcurrentConflict
	}
	log.Printf("[project][usecase] milestones created project_id=%s count=%d", projectID, len(created))
	return created, nil
}

func (u *ProjectUseCase) ListMilestones(ctx context.Context, projectID string) ([]entities.ProjectMilestone, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.milestoneRepo.ListByProjectID(ctx, projectID)
}

func (u *ProjectUseCase) classifyWriteFailure(ctx context.Context, id string) error {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProjectNotFound
	}
	return ErrConcurrentConflict
}
