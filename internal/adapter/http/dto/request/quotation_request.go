package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CreateQuotationRequest is the client intake payload for a new fire
// protection quotation request.
type CreateQuotationRequest struct {
	RequesterID         string   `json:"requester_id" binding:"required"`
	BuildingType        string   `json:"building_type" binding:"required"`
	EstablishmentWidth  float64  `json:"establishment_width" binding:"required"`
	EstablishmentHeight float64  `json:"establishment_height" binding:"required"`
	Features            []string `json:"features"`
	FloorPlanRef        string   `json:"floor_plan_ref"`
}

// UpdateQuotationStatusRequest drives one admin/client transition over the
// quotation state machine.
type UpdateQuotationStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	ActorID string `json:"actor_id"`
}

func (r UpdateQuotationStatusRequest) ResolveStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}

// PriceQuotationRequest carries the admin cost breakdown and the generated
// quotation document reference. Amounts accept JSON numbers or strings.
type PriceQuotationRequest struct {
	MaterialsCost    decimal.Decimal `json:"materials_cost" binding:"required"`
	LaborCost        decimal.Decimal `json:"labor_cost" binding:"required"`
	RequirementsCost decimal.Decimal `json:"requirements_cost" binding:"required"`
	QuotationDocRef  string          `json:"quotation_doc_ref" binding:"required"`
	ActorID          string          `json:"actor_id"`
}

// ApproveQuotationRequest identifies the approving actor; the quotation id
// comes from the path.
type ApproveQuotationRequest struct {
	ActorID string `json:"actor_id"`
}
