package interfaces

import (
	"context"

	"veltech_portal/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Projects are only ever created inside the approve-quotation transaction
// (IWorkflowTransactionRepository); this port covers reads and the
// single-entity status/contract writes.

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.Project, error)
	ListByRequesterID(ctx context.Context, requesterID string) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ProjectStatus) (entities.Project, error)
	SetContractRefs(ctx context.Context, id, contractRef, signedContractRef string) (entities.Project, error)
}
