package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProofOfPaymentStatus is the review outcome of a client payment claim.
// PENDING transitions exactly once to ACCEPTED or REJECTED; once terminal the
// record is immutable.

type ProofOfPaymentStatus string

const (
	ProofOfPaymentStatusPending  ProofOfPaymentStatus = "PENDING"
	ProofOfPaymentStatusAccepted ProofOfPaymentStatus = "ACCEPTED"
	ProofOfPaymentStatusRejected ProofOfPaymentStatus = "REJECTED"
)

var proofOfPaymentTransitions = map[ProofOfPaymentStatus][]ProofOfPaymentStatus{
	ProofOfPaymentStatusPending: {ProofOfPaymentStatusAccepted, ProofOfPaymentStatusRejected},
}

func (s ProofOfPaymentStatus) CanTransitionTo(next ProofOfPaymentStatus) bool {
	for _, allowed := range proofOfPaymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ProofOfPaymentStatus) IsTerminal() bool {
	return len(proofOfPaymentTransitions[s]) == 0
}

// PaymentCategory classifies what a proof of payment is paying for.
// MilestoneNo is required iff the category is MILESTONE.

type PaymentCategory string

const (
	PaymentCategoryDownPayment PaymentCategory = "DOWN_PAYMENT"
	PaymentCategoryMilestone   PaymentCategory = "MILESTONE"
	PaymentCategoryOther       PaymentCategory = "OTHER"
)

func (c PaymentCategory) IsValid() bool {
	switch c {
	case PaymentCategoryDownPayment, PaymentCategoryMilestone, PaymentCategoryOther:
		return true
	}
	return false
}

// ProofOfPayment is a client-submitted payment claim persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// BalanceSnapshot records the project's remaining balance at submission time;
// reconciliation always re-reads the live balance inside the accept
// transaction, the snapshot is audit context only.

type ProofOfPayment struct {
	ID              string               `json:"id"`
	ProjectID       string               `json:"project_id"`
	RequesterID     string               `json:"requester_id"`
	ProofImageRef   string               `json:"proof_image_ref"`
	ReferenceNo     string               `json:"reference_no"`
	Amount          decimal.Decimal      `json:"amount"`
	Category        PaymentCategory      `json:"category"`
	MilestoneNo     int                  `json:"milestone_no,omitempty"`
	BalanceSnapshot decimal.Decimal      `json:"balance_snapshot"`
	Status          ProofOfPaymentStatus `json:"status"`
	SubmittedAt     time.Time            `json:"submitted_at"`
	ResolvedAt      time.Time            `json:"resolved_at,omitempty"`
}
