package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MilestoneStatus tracks execution progress of a milestone.

type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "PENDING"
	MilestoneStatusInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneStatusCompleted  MilestoneStatus = "COMPLETED"
)

var milestoneTransitions = map[MilestoneStatus][]MilestoneStatus{
	MilestoneStatusPending:    {MilestoneStatusInProgress, MilestoneStatusCompleted},
	MilestoneStatusInProgress: {MilestoneStatusCompleted},
}

func (s MilestoneStatus) CanTransitionTo(next MilestoneStatus) bool {
	for _, allowed := range milestoneTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s MilestoneStatus) IsTerminal() bool {
	return len(milestoneTransitions[s]) == 0
}

// MilestoneBillingStatus tracks the billing slice of a milestone.
// PAID is terminal for that milestone.

type MilestoneBillingStatus string

const (
	MilestoneBillingStatusUnbilled MilestoneBillingStatus = "UNBILLED"
	MilestoneBillingStatusBilled   MilestoneBillingStatus = "BILLED"
	MilestoneBillingStatusPaid     MilestoneBillingStatus = "PAID"
)

var milestoneBillingTransitions = map[MilestoneBillingStatus][]MilestoneBillingStatus{
	MilestoneBillingStatusUnbilled: {MilestoneBillingStatusBilled, MilestoneBillingStatusPaid},
	MilestoneBillingStatusBilled:   {MilestoneBillingStatusPaid},
}

func (s MilestoneBillingStatus) CanTransitionTo(next MilestoneBillingStatus) bool {
	for _, allowed := range milestoneBillingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s MilestoneBillingStatus) IsTerminal() bool {
	return len(milestoneBillingTransitions[s]) == 0
}

// ProjectMilestone is a priced, dated slice of a project's progress billing.
//
// Storage model (DynamoDB):
//   - PK: project_id
//   - SK: milestone_no (N)
//
// Milestone numbers for a project are unique and contiguous starting at 1.
// Milestone prices are independent slices; they need not sum to the project
// total.

type ProjectMilestone struct {
	ProjectID     string                 `json:"project_id"`
	MilestoneNo   int                    `json:"milestone_no"`
	Price         decimal.Decimal        `json:"price"`
	Description   string                 `json:"description"`
	StartDate     time.Time              `json:"start_date"`
	EstimatedEnd  time.Time              `json:"estimated_end"`
	Status        MilestoneStatus        `json:"status"`
	BillingStatus MilestoneBillingStatus `json:"billing_status"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
