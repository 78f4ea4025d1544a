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
	ErrInvalidPaymentID       = errors.New("invalid payment id")
	ErrInvalidPaymentAmount   = errors.New("invalid payment amount")
	ErrInvalidPaymentCategory = errors.New("invalid payment category")
)

// SubmitPaymentInput is a client's proof-of-payment upload.

type SubmitPaymentInput struct {
	ProjectID     string
	RequesterID   string
	ProofImageRef string
	ReferenceNo   string
	Amount        decimal.Decimal
	Category      entities.PaymentCategory
	MilestoneNo   int
}

// AcceptPaymentResult is everything the accept-payment transaction changed:
// the resolved payment, the project with its decremented balance and new
// payment status, and the paid milestone when the payment was
// milestone-category.

type AcceptPaymentResult struct {
	Payment   entities.ProofOfPayment
	Project   entities.Project
	Milestone *entities.ProjectMilestone
}

// IPaymentUseCase is the payment side of the workflow orchestrator. Accept is
// the one operation that advances two entity state machines (payment and
// project, optionally milestone) as a single unit.

type IPaymentUseCase interface {
	Submit(ctx context.Context, input SubmitPaymentInput) (entities.ProofOfPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProofOfPayment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProofOfPayment, error)
	Accept(ctx context.Context, id, actorID string) (AcceptPaymentResult, error)
	Reject(ctx context.Context, id, actorID string) (entities.ProofOfPayment, error)
}

type PaymentUseCase struct {
	repo          interfaces.IProofOfPaymentRepository
	projectRepo   interfaces.IProjectRepository
	milestoneRepo interfaces.IMilestoneRepository
	tx            interfaces.IWorkflowTransactionRepository
	emitter       interfaces.INotificationEmitter
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IProofOfPaymentRepository,
	projectRepo interfaces.IProjectRepository,
	milestoneRepo interfaces.IMilestoneRepository,
	tx interfaces.IWorkflowTransactionRepository,
	emitter interfaces.INotificationEmitter,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, projectRepo: projectRepo, milestoneRepo: milestoneRepo, tx: tx, emitter: emitter}
}

func (u *PaymentUseCase) Submit(ctx context.Context, input SubmitPaymentInput) (entities.ProofOfPayment, error) {
	input.ProjectID = strings.TrimSpace(input.ProjectID)
	input.RequesterID = strings.TrimSpace(input.RequesterID)
	if input.ProjectID == "" {
		return entities.ProofOfPayment{}, ErrInvalidProjectID
	}
	if input.RequesterID == "" {
		return entities.ProofOfPayment{}, ErrInvalidRequesterID
	}
	if input.Amount.Sign() <= 0 {
		return entities.ProofOfPayment{}, ErrInvalidPaymentAmount
	}
	if !input.Category.IsValid() {
		return entities.ProofOfPayment{}, ErrInvalidPaymentCategory
	}
	// Milestone number is required iff the category is MILESTONE.
	if input.Category == entities.PaymentCategoryMilestone && input.MilestoneNo < 1 {
		return entities.ProofOfPayment{}, ErrIncompleteInput
	}
	if input.Category != entities.PaymentCategoryMilestone && input.MilestoneNo != 0 {
		return entities.ProofOfPayment{}, ErrIncompleteInput
	}
	if strings.TrimSpace(input.ProofImageRef) == "" || strings.TrimSpace(input.ReferenceNo) == "" {
		return entities.ProofOfPayment{}, ErrIncompleteInput
	}

	project, err := u.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return entities.ProofOfPayment{}, err
	}
	if project.ID == "" {
		return entities.ProofOfPayment{}, ErrProjectNotFound
	}

	if input.Category == entities.PaymentCategoryMilestone {
		ms, err := u.milestoneRepo.GetByProjectAndNo(ctx, input.ProjectID, input.MilestoneNo)
		if err != nil {
			return entities.ProofOfPayment{}, err
		}
		if ms.ProjectID == "" {
			return entities.ProofOfPayment{}, ErrMilestoneNotFound
		}
	}

	p := entities.ProofOfPayment{
		ID:              uuid.NewString(),
		ProjectID:       input.ProjectID,
		RequesterID:     input.RequesterID,
		ProofImageRef:   strings.TrimSpace(input.ProofImageRef),
		ReferenceNo:     strings.TrimSpace(input.ReferenceNo),
		Amount:          input.Amount,
		Category:        input.Category,
		MilestoneNo:     input.MilestoneNo,
		BalanceSnapshot: project.RemainingBalance,
		Status:          entities.ProofOfPaymentStatusPending,
		SubmittedAt:     time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.ProofOfPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProofOfPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProofOfPayment{}, err
	}
	if p.ID == "" {
		return entities.ProofOfPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProofOfPayment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// Accept resolves a pending proof of payment and applies it to the project in
// one store transaction: payment PENDING -> ACCEPTED, balance decremented
// against the balance read in this call (never a caller-supplied one), project
// payment status advanced per category, and for milestone payments the
// milestone billed as PAID with its status advanced. The category-specific
// notification goes out only after the transaction commits.
func (u *PaymentUseCase) Accept(ctx context.Context, id, actorID string) (AcceptPaymentResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AcceptPaymentResult{}, ErrInvalidPaymentID
	}

	payment, err := u.GetByID(ctx, id)
	if err != nil {
		return AcceptPaymentResult{}, err
	}
	if !payment.Status.CanTransitionTo(entities.ProofOfPaymentStatusAccepted) {
		return AcceptPaymentResult{}, ErrIllegalTransition
	}
	if payment.Category == entities.PaymentCategoryMilestone && payment.MilestoneNo < 1 {
		return AcceptPaymentResult{}, ErrIncompleteInput
	}

	project, err := u.projectRepo.GetByID(ctx, payment.ProjectID)
	if err != nil {
		return AcceptPaymentResult{}, err
	}
	if project.ID == "" {
		return AcceptPaymentResult{}, ErrProjectNotFound
	}

	outcome := applyPayment(project, payment.Amount, payment.Category)
	if outcome.toStatus != project.PaymentStatus && !project.PaymentStatus.CanTransitionTo(outcome.toStatus) {
		return AcceptPaymentResult{}, ErrIllegalTransition
	}

	app := interfaces.PaymentApplication{
		PaymentID:         payment.ID,
		ProjectID:         project.ID,
		ExpectedBalance:   project.RemainingBalance,
		NewBalance:        outcome.newBalance,
		FromPaymentStatus: project.PaymentStatus,
		ToPaymentStatus:   outcome.toStatus,
		ResolvedAt:        time.Now().UTC(),
	}

	var milestone *entities.ProjectMilestone
	if payment.Category == entities.PaymentCategoryMilestone {
		ms, err := u.milestoneRepo.GetByProjectAndNo(ctx, project.ID, payment.MilestoneNo)
		if err != nil {
			return AcceptPaymentResult{}, err
		}
		if ms.ProjectID == "" {
			return AcceptPaymentResult{}, ErrMilestoneNotFound
		}
		if !ms.BillingStatus.CanTransitionTo(entities.MilestoneBillingStatusPaid) {
			return AcceptPaymentResult{}, ErrIllegalTransition
		}

		app.Milestone = &interfaces.MilestoneApplication{
			MilestoneNo:       ms.MilestoneNo,
			FromBillingStatus: ms.BillingStatus,
			FromStatus:        ms.Status,
			ToStatus:          advanceMilestoneStatus(ms.Status, outcome.toStatus),
		}
		ms.BillingStatus = entities.MilestoneBillingStatusPaid
		ms.Status = app.Milestone.ToStatus
		milestone = &ms
	}

	applied, err := u.tx.AcceptPaymentAndApply(ctx, app)
	if err != nil {
		return AcceptPaymentResult{}, err
	}
	if !applied {
		return AcceptPaymentResult{}, u.classifyAcceptFailure(ctx, id)
	}
	log.Printf("[payment][usecase] accepted id=%s project_id=%s amount=%s new_balance=%s payment_status=%s actor=%s",
		payment.ID, project.ID, payment.Amount, outcome.newBalance, outcome.toStatus, actorID)

	payment.Status = entities.ProofOfPaymentStatusAccepted
	payment.ResolvedAt = app.ResolvedAt
	project.RemainingBalance = outcome.newBalance
	project.PaymentStatus = outcome.toStatus

	u.notify(ctx, paymentAcceptedNotification(payment))

	return AcceptPaymentResult{Payment: payment, Project: project, Milestone: milestone}, nil
}

// Reject resolves a pending proof of payment without touching the project
// balance or any milestone. Terminal payments are not re-enterable, so a
// second reject comes back as an illegal transition.
func (u *PaymentUseCase) Reject(ctx context.Context, id, actorID string) (entities.ProofOfPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProofOfPayment{}, ErrInvalidPaymentID
	}

	payment, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProofOfPayment{}, err
	}
	if !payment.Status.CanTransitionTo(entities.ProofOfPaymentStatusRejected) {
		return entities.ProofOfPayment{}, ErrIllegalTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, payment.Status, entities.ProofOfPaymentStatusRejected)
	if err != nil {
		return entities.ProofOfPayment{}, err
	}
	if updated.ID == "" {
		return entities.ProofOfPayment{}, u.classifyAcceptFailure(ctx, id)
	}
	log.Printf("[payment][usecase] rejected id=%s project_id=%s actor=%s", payment.ID, payment.ProjectID, actorID)
	return updated, nil
}

// advanceMilestoneStatus moves a milestone forward when its billing slice is
// paid: a pending milestone starts, and when the paying transaction also
// settles the whole project the milestone completes.
func advanceMilestoneStatus(current entities.MilestoneStatus, projectPayment entities.ProjectPaymentStatus) entities.MilestoneStatus {
	if projectPayment == entities.ProjectPaymentStatusFullyPaid && current.CanTransitionTo(entities.MilestoneStatusCompleted) {
		return entities.MilestoneStatusCompleted
	}
	if current == entities.MilestoneStatusPending {
		return entities.MilestoneStatusInProgress
	}
	return current
}

func (u *PaymentUseCase) classifyAcceptFailure(ctx context.Context, id string) error {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPaymentNotFound
	}
	if p.Status.IsTerminal() {
		return ErrIllegalTransition
	}
	return ErrConcurrentConflict
}

func (u *PaymentUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.emitter == nil {
		return
	}
	if err := u.emitter.Emit(ctx, n); err != nil {
		log.Printf("[payment][usecase] notification emit failed origin=%s origin_id=%s err=%v", n.OriginType, n.OriginID, err)
	}
}
