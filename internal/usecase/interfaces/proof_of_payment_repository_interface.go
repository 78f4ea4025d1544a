package interfaces

import (
	"context"

	"veltech_portal/internal/domain/entities"
)

// IProofOfPaymentRepository abstracts DynamoDB persistence for ProofOfPayment.
//
// Terminal transitions (accept) go through IWorkflowTransactionRepository so
// the payment flip and the balance mutation commit together; reject is a
// single-entity conditional write and lives here.

type IProofOfPaymentRepository interface {
	Create(ctx context.Context, p entities.ProofOfPayment) (entities.ProofOfPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProofOfPayment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProofOfPayment, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ProofOfPaymentStatus) (entities.ProofOfPayment, error)
}
