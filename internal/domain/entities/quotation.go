package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a quotation request.
//
// Domain notes:
//   - The portal backend is the source of truth for quotation/project/payment state.
//   - Transitions are driven by client and admin actions; anything not listed in
//     quotationTransitions is illegal and must be rejected, never coerced.

type QuotationStatus string

const (
	QuotationStatusForReview         QuotationStatus = "FOR_REVIEW"
	QuotationStatusWaitingOcular     QuotationStatus = "WAITING_OCULAR"
	QuotationStatusDrafting          QuotationStatus = "DRAFTING"
	QuotationStatusForApproval       QuotationStatus = "FOR_APPROVAL"
	QuotationStatusForRevision       QuotationStatus = "FOR_REVISION"
	QuotationStatusClientApproval    QuotationStatus = "CLIENT_APPROVAL"
	QuotationStatusApproved          QuotationStatus = "APPROVED"
	QuotationStatusRejectedQuotation QuotationStatus = "REJECTED_QUOTATION"
	QuotationStatusRejectedOcular    QuotationStatus = "REJECTED_OCULAR"
	QuotationStatusCanceled          QuotationStatus = "CANCELED"
)

// quotationTransitions is the directed edge table for QuotationStatus.
// Terminal states have no outgoing edges.
var quotationTransitions = map[QuotationStatus][]QuotationStatus{
	QuotationStatusForReview:      {QuotationStatusWaitingOcular, QuotationStatusRejectedQuotation},
	QuotationStatusWaitingOcular:  {QuotationStatusDrafting, QuotationStatusRejectedOcular},
	QuotationStatusDrafting:       {QuotationStatusForApproval},
	QuotationStatusForApproval:    {QuotationStatusClientApproval, QuotationStatusForRevision},
	QuotationStatusForRevision:    {QuotationStatusDrafting},
	QuotationStatusClientApproval: {QuotationStatusApproved, QuotationStatusForRevision, QuotationStatusCanceled},
}

func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	for _, allowed := range quotationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s QuotationStatus) IsTerminal() bool {
	return len(quotationTransitions[s]) == 0
}

// IsValid reports whether s is one of the canonical quotation states.
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusForReview, QuotationStatusWaitingOcular, QuotationStatusDrafting,
		QuotationStatusForApproval, QuotationStatusForRevision, QuotationStatusClientApproval,
		QuotationStatusApproved, QuotationStatusRejectedQuotation, QuotationStatusRejectedOcular,
		QuotationStatusCanceled:
		return true
	}
	return false
}

// Quotation is a client's priced proposal request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requester_id-index): requester_id
//
// Monetary representation:
//   - Cost breakdown fields are decimals kept at full precision; they are unset
//     (Valid == false) until the quotation is priced into FOR_APPROVAL. The same
//     holds for QuotationDocRef.

type Quotation struct {
	ID                  string              `json:"id"`
	RequesterID         string              `json:"requester_id"`
	BuildingType        string              `json:"building_type"`
	EstablishmentWidth  float64             `json:"establishment_width"`
	EstablishmentHeight float64             `json:"establishment_height"`
	Features            []string            `json:"features"`
	FloorPlanRef        string              `json:"floor_plan_ref"`
	Status              QuotationStatus     `json:"status"`
	MaterialsCost       decimal.NullDecimal `json:"materials_cost"`
	LaborCost           decimal.NullDecimal `json:"labor_cost"`
	RequirementsCost    decimal.NullDecimal `json:"requirements_cost"`
	QuotationDocRef     string              `json:"quotation_doc_ref"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// IsPriced reports whether the full cost breakdown has been populated.
func (q Quotation) IsPriced() bool {
	return q.MaterialsCost.Valid && q.LaborCost.Valid && q.RequirementsCost.Valid
}
