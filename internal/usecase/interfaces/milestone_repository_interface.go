package interfaces

import (
	"context"

	"veltech_portal/internal/domain/entities"
)

// IMilestoneRepository abstracts DynamoDB persistence for ProjectMilestone.
//
// CreateBatch writes the whole schedule in one transaction; each item is
// guarded with attribute_not_exists so a duplicate milestone number fails the
// batch. Billing/status advances happen inside the accept-payment transaction,
// not through this port.

type IMilestoneRepository interface {
	CreateBatch(ctx context.Context, milestones []entities.ProjectMilestone) ([]entities.ProjectMilestone, error)
	GetByProjectAndNo(ctx context.Context, projectID string, milestoneNo int) (entities.ProjectMilestone, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ProjectMilestone, error)
}
