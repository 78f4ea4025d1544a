package interfaces

import (
	"context"
	"time"

	"veltech_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MilestoneApplication is the milestone half of a milestone-category payment:
// billing goes to PAID and the milestone status advances, conditioned on the
// billing status read before the transaction.

type MilestoneApplication struct {
	MilestoneNo       int
	FromBillingStatus entities.MilestoneBillingStatus
	FromStatus        entities.MilestoneStatus
	ToStatus          entities.MilestoneStatus
}

// PaymentApplication describes one accept-payment transaction: the proof of
// payment flips PENDING -> ACCEPTED, the project balance moves from
// ExpectedBalance to NewBalance, the project payment status moves
// From -> To, and (for milestone payments) the referenced milestone is paid.
// Every leg carries a condition on the value read before the transaction, so
// a concurrent writer cancels the whole transaction instead of double
// crediting.

type PaymentApplication struct {
	PaymentID         string
	ProjectID         string
	ExpectedBalance   decimal.Decimal
	NewBalance        decimal.Decimal
	FromPaymentStatus entities.ProjectPaymentStatus
	ToPaymentStatus   entities.ProjectPaymentStatus
	ResolvedAt        time.Time
	Milestone         *MilestoneApplication
}

// IWorkflowTransactionRepository is the transactional multi-write surface of
// the entity store. Both operations run as a single DynamoDB
// TransactWriteItems call: either every leg commits or none does.
//
// A cancelled transaction (any condition failed) returns zero values and a
// nil error, mirroring the single-entity conditional-write contract; the
// orchestrator re-reads to classify the failure.

type IWorkflowTransactionRepository interface {
	ApproveQuotationAndCreateProject(ctx context.Context, quotationID string, from, to entities.QuotationStatus, project entities.Project) (entities.Project, error)
	AcceptPaymentAndApply(ctx context.Context, app PaymentApplication) (bool, error)
}
