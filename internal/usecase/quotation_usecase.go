package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuotationID     = errors.New("invalid quotation id")
	ErrInvalidRequesterID     = errors.New("invalid requester id")
	ErrInvalidQuotationStatus = errors.New("invalid quotation status")
	ErrInvalidCostComponent   = errors.New("invalid cost component")
	ErrProjectAlreadyExists   = errors.New("project already exists for this quotation")
)

// CreateQuotationInput is the client intake payload for a new quotation
// request.

type CreateQuotationInput struct {
	RequesterID         string
	BuildingType        string
	EstablishmentWidth  float64
	EstablishmentHeight float64
	Features            []string
	FloorPlanRef        string
}

// PriceQuotationInput carries the cost breakdown and the generated quotation
// document set while moving a DRAFTING quotation into FOR_APPROVAL.

type PriceQuotationInput struct {
	QuotationID      string
	MaterialsCost    decimal.Decimal
	LaborCost        decimal.Decimal
	RequirementsCost decimal.Decimal
	QuotationDocRef  string
	ActorID          string
}

// IQuotationUseCase exposes the quotation side of the workflow: intake,
// admin-driven status changes with cascading notifications, pricing, and the
// approve-into-project operation.

type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, input CreateQuotationInput) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByRequesterID(ctx context.Context, requesterID string) ([]entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, target entities.QuotationStatus, actorID string) (entities.Quotation, error)
	PriceQuotation(ctx context.Context, input PriceQuotationInput) (entities.Quotation, error)
	Approve(ctx context.Context, id, actorID string) (entities.Project, error)
}

type QuotationUseCase struct {
	repo        interfaces.IQuotationRepository
	projectRepo interfaces.IProjectRepository
	tx          interfaces.IWorkflowTransactionRepository
	emitter     interfaces.INotificationEmitter
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	projectRepo interfaces.IProjectRepository,
	tx interfaces.IWorkflowTransactionRepository,
	emitter interfaces.INotificationEmitter,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, projectRepo: projectRepo, tx: tx, emitter: emitter}
}

func (u *QuotationUseCase) CreateQuotation(ctx context.Context, input CreateQuotationInput) (entities.Quotation, error) {
	input.RequesterID = strings.TrimSpace(input.RequesterID)
	if input.RequesterID == "" {
		return entities.Quotation{}, ErrInvalidRequesterID
	}
	if strings.TrimSpace(input.BuildingType) == "" || input.EstablishmentWidth <= 0 || input.EstablishmentHeight <= 0 {
		return entities.Quotation{}, ErrIncompleteInput
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:                  uuid.NewString(),
		RequesterID:         input.RequesterID,
		BuildingType:        strings.TrimSpace(input.BuildingType),
		EstablishmentWidth:  input.EstablishmentWidth,
		EstablishmentHeight: input.EstablishmentHeight,
		Features:            input.Features,
		FloorPlanRef:        strings.TrimSpace(input.FloorPlanRef),
		Status:              entities.QuotationStatusForReview,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListByRequesterID(ctx context.Context, requesterID string) ([]entities.Quotation, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return nil, ErrInvalidRequesterID
	}
	return u.repo.ListByRequesterID(ctx, requesterID)
}

// UpdateStatus applies one legal transition to a quotation and, after the
// write is confirmed, emits the notification template keyed by the target
// status. APPROVED is not reachable through here: approving a quotation must
// create its project, which is Approve's job.
func (u *QuotationUseCase) UpdateStatus(ctx context.Context, id string, target entities.QuotationStatus, actorID string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if !target.IsValid() {
		return entities.Quotation{}, ErrInvalidQuotationStatus
	}
	if target == entities.QuotationStatusApproved {
		return entities.Quotation{}, ErrInvariantViolation
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !current.Status.CanTransitionTo(target) {
		return entities.Quotation{}, ErrIllegalTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, current.Status, target)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, u.classifyWriteFailure(ctx, id)
	}
	log.Printf("[quotation][usecase] status updated id=%s from=%s to=%s actor=%s", id, current.Status, target, actorID)

	if n, ok := quotationStatusNotification(updated, target); ok {
		u.notify(ctx, n)
	}
	return updated, nil
}

func (u *QuotationUseCase) PriceQuotation(ctx context.Context, input PriceQuotationInput) (entities.Quotation, error) {
	input.QuotationID = strings.TrimSpace(input.QuotationID)
	if input.QuotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if input.MaterialsCost.Sign() < 0 || input.LaborCost.Sign() < 0 || input.RequirementsCost.Sign() < 0 {
		return entities.Quotation{}, ErrInvalidCostComponent
	}
	if input.MaterialsCost.Add(input.LaborCost).Add(input.RequirementsCost).Sign() <= 0 {
		return entities.Quotation{}, ErrInvalidCostComponent
	}
	if strings.TrimSpace(input.QuotationDocRef) == "" {
		return entities.Quotation{}, ErrIncompleteInput
	}

	current, err := u.GetByID(ctx, input.QuotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !current.Status.CanTransitionTo(entities.QuotationStatusForApproval) {
		return entities.Quotation{}, ErrIllegalTransition
	}

	updated, err := u.repo.SetPricing(
		ctx,
		input.QuotationID,
		input.MaterialsCost,
		input.LaborCost,
		input.RequirementsCost,
		strings.TrimSpace(input.QuotationDocRef),
		current.Status,
		entities.QuotationStatusForApproval,
	)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, u.classifyWriteFailure(ctx, input.QuotationID)
	}
	log.Printf("[quotation][usecase] priced id=%s total=%s actor=%s",
		input.QuotationID, input.MaterialsCost.Add(input.LaborCost).Add(input.RequirementsCost), input.ActorID)
	return updated, nil
}

// Approve moves a CLIENT_APPROVAL quotation to APPROVED and creates its
// project in the same store transaction. The project starts at
// WAITING_CONTRACT / WAITING_DOWNPAYMENT with the full computed cost as its
// remaining balance.
func (u *QuotationUseCase) Approve(ctx context.Context, id, actorID string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidQuotationID
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if q.Status != entities.QuotationStatusClientApproval {
		return entities.Project{}, ErrIllegalTransition
	}
	if !q.IsPriced() {
		return entities.Project{}, ErrInvariantViolation
	}

	if existing, err := u.projectRepo.GetByQuotationID(ctx, id); err != nil {
		return entities.Project{}, err
	} else if existing.ID != "" {
		return entities.Project{}, ErrProjectAlreadyExists
	}

	cost := ComputeQuotationCost(q.MaterialsCost.Decimal, q.LaborCost.Decimal, q.RequirementsCost.Decimal)
	now := time.Now().UTC()
	project := entities.Project{
		ID:               uuid.NewString(),
		RequesterID:      q.RequesterID,
		QuotationID:      q.ID,
		Status:           entities.ProjectStatusWaitingContract,
		PaymentStatus:    entities.ProjectPaymentStatusWaitingDownpayment,
		RemainingBalance: cost.Total,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.tx.ApproveQuotationAndCreateProject(ctx, q.ID, entities.QuotationStatusClientApproval, entities.QuotationStatusApproved, project)
	if err != nil {
		return entities.Project{}, err
	}
	if created.ID == "" {
		return entities.Project{}, u.classifyWriteFailure(ctx, id)
	}
	log.Printf("[quotation][usecase] approved id=%s project_id=%s balance=%s actor=%s", q.ID, created.ID, created.RemainingBalance, actorID)

	u.notify(ctx, projectDraftingNotification(created))
	return created, nil
}

// classifyWriteFailure tells a vanished entity apart from a lost
// conditional-write race after a zero-value repository result.
func (u *QuotationUseCase) classifyWriteFailure(ctx context.Context, id string) error {
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuotationNotFound
	}
	return ErrConcurrentConflict
}

func (u *QuotationUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.emitter == nil {
		return
	}
	if err := u.emitter.Emit(ctx, n); err != nil {
		log.Printf("[quotation][usecase] notification emit failed origin=%s origin_id=%s err=%v", n.OriginType, n.OriginID, err)
	}
}
