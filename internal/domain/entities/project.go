package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus represents the contracted engagement lifecycle.
//
// ON_HOLD and TERMINATED are reachable from every non-terminal state and are
// themselves terminal.

type ProjectStatus string

const (
	ProjectStatusWaitingContract  ProjectStatus = "WAITING_CONTRACT"
	ProjectStatusWaitingSignature ProjectStatus = "WAITING_SIGNATURE"
	ProjectStatusSetMilestone     ProjectStatus = "SET_MILESTONE"
	ProjectStatusWaitingPayment   ProjectStatus = "WAITING_PAYMENT"
	ProjectStatusWaitingApproval  ProjectStatus = "WAITING_APPROVAL"
	ProjectStatusOngoing          ProjectStatus = "ONGOING"
	ProjectStatusCompleted        ProjectStatus = "COMPLETED"
	ProjectStatusOnHold           ProjectStatus = "ON_HOLD"
	ProjectStatusTerminated       ProjectStatus = "TERMINATED"
)

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusWaitingContract:  {ProjectStatusWaitingSignature, ProjectStatusOnHold, ProjectStatusTerminated},
	ProjectStatusWaitingSignature: {ProjectStatusSetMilestone, ProjectStatusOnHold, ProjectStatusTerminated},
	ProjectStatusSetMilestone:     {ProjectStatusWaitingPayment, ProjectStatusOnHold, ProjectStatusTerminated},
	ProjectStatusWaitingPayment:   {ProjectStatusWaitingApproval, ProjectStatusOnHold, ProjectStatusTerminated},
	ProjectStatusWaitingApproval:  {ProjectStatusOngoing, ProjectStatusOnHold, ProjectStatusTerminated},
	ProjectStatusOngoing:          {ProjectStatusCompleted, ProjectStatusOnHold, ProjectStatusTerminated},
}

func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ProjectStatus) IsTerminal() bool {
	return len(projectTransitions[s]) == 0
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusWaitingContract, ProjectStatusWaitingSignature, ProjectStatusSetMilestone,
		ProjectStatusWaitingPayment, ProjectStatusWaitingApproval, ProjectStatusOngoing,
		ProjectStatusCompleted, ProjectStatusOnHold, ProjectStatusTerminated:
		return true
	}
	return false
}

// ProjectPaymentStatus tracks how far a project's billing has progressed.
//
// The WAITING_DOWNPAYMENT -> WAITING_PAYMENT edge exists because accepting the
// down payment advances straight past PAID_DOWNPAYMENT; the intermediate state
// remains legal for manual bookkeeping updates.

type ProjectPaymentStatus string

const (
	ProjectPaymentStatusWaitingDownpayment ProjectPaymentStatus = "WAITING_DOWNPAYMENT"
	ProjectPaymentStatusPaidDownpayment    ProjectPaymentStatus = "PAID_DOWNPAYMENT"
	ProjectPaymentStatusWaitingPayment     ProjectPaymentStatus = "WAITING_PAYMENT"
	ProjectPaymentStatusProgressBilling    ProjectPaymentStatus = "PROGRESS_BILLING"
	ProjectPaymentStatusFullyPaid          ProjectPaymentStatus = "FULLY_PAID"
)

var projectPaymentTransitions = map[ProjectPaymentStatus][]ProjectPaymentStatus{
	ProjectPaymentStatusWaitingDownpayment: {ProjectPaymentStatusPaidDownpayment, ProjectPaymentStatusWaitingPayment},
	ProjectPaymentStatusPaidDownpayment:    {ProjectPaymentStatusWaitingPayment},
	ProjectPaymentStatusWaitingPayment:     {ProjectPaymentStatusProgressBilling, ProjectPaymentStatusFullyPaid},
	ProjectPaymentStatusProgressBilling:    {ProjectPaymentStatusWaitingPayment, ProjectPaymentStatusFullyPaid},
}

func (s ProjectPaymentStatus) CanTransitionTo(next ProjectPaymentStatus) bool {
	for _, allowed := range projectPaymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ProjectPaymentStatus) IsTerminal() bool {
	return len(projectPaymentTransitions[s]) == 0
}

// Project is the billable engagement created when a quotation is approved.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//   - GSI2 (requester_id-index): requester_id
//
// Invariants:
//   - QuotationID is immutable after creation (1:1 with an APPROVED quotation).
//   - RemainingBalance only ever decreases, and only inside the accept-payment
//     transaction.

type Project struct {
	ID                string               `json:"id"`
	RequesterID       string               `json:"requester_id"`
	QuotationID       string               `json:"quotation_id"`
	Status            ProjectStatus        `json:"status"`
	PaymentStatus     ProjectPaymentStatus `json:"payment_status"`
	ContractRef       string               `json:"contract_ref"`
	SignedContractRef string               `json:"signed_contract_ref"`
	RemainingBalance  decimal.Decimal      `json:"remaining_balance"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}
