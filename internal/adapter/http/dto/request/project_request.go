package request

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UpdateProjectStatusRequest drives one transition over the project state
// machine (ON_HOLD and TERMINATED included).
type UpdateProjectStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	ActorID string `json:"actor_id"`
}

func (r UpdateProjectStatusRequest) ResolveStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}

// SetContractRefsRequest attaches the contract and/or signed-contract
// document references to a project. At least one must be present.
type SetContractRefsRequest struct {
	ContractRef       string `json:"contract_ref"`
	SignedContractRef string `json:"signed_contract_ref"`
}

// MilestoneRequest is one slice of a project's progress-billing schedule.
type MilestoneRequest struct {
	MilestoneNo  int             `json:"milestone_no" binding:"required"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	StartDate    time.Time       `json:"start_date"`
	EstimatedEnd time.Time       `json:"estimated_end"`
}

// MilestoneScheduleRequest creates a batch of contiguous milestones for a
// project.
type MilestoneScheduleRequest struct {
	Milestones []MilestoneRequest `json:"milestones" binding:"required,min=1,dive"`
}
