package response

import (
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase"

	"github.com/shopspring/decimal"
)

// CostBreakdownResponse renders the derived quotation totals with two-decimal
// money strings. Full precision stays inside the domain.
type CostBreakdownResponse struct {
	Subtotal string `json:"subtotal"`
	VAT      string `json:"vat"`
	Total    string `json:"total"`
}

type QuotationResponse struct {
	ID                  string                 `json:"id"`
	RequesterID         string                 `json:"requester_id"`
	BuildingType        string                 `json:"building_type"`
	EstablishmentWidth  float64                `json:"establishment_width"`
	EstablishmentHeight float64                `json:"establishment_height"`
	Features            []string               `json:"features"`
	FloorPlanRef        string                 `json:"floor_plan_ref,omitempty"`
	Status              string                 `json:"status"`
	MaterialsCost       *string                `json:"materials_cost,omitempty"`
	LaborCost           *string                `json:"labor_cost,omitempty"`
	RequirementsCost    *string                `json:"requirements_cost,omitempty"`
	Cost                *CostBreakdownResponse `json:"cost,omitempty"`
	QuotationDocRef     string                 `json:"quotation_doc_ref,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	resp := QuotationResponse{
		ID:                  q.ID,
		RequesterID:         q.RequesterID,
		BuildingType:        q.BuildingType,
		EstablishmentWidth:  q.EstablishmentWidth,
		EstablishmentHeight: q.EstablishmentHeight,
		Features:            q.Features,
		FloorPlanRef:        q.FloorPlanRef,
		Status:              string(q.Status),
		MaterialsCost:       nullMoney(q.MaterialsCost),
		LaborCost:           nullMoney(q.LaborCost),
		RequirementsCost:    nullMoney(q.RequirementsCost),
		QuotationDocRef:     q.QuotationDocRef,
		CreatedAt:           q.CreatedAt,
		UpdatedAt:           q.UpdatedAt,
	}

	if q.IsPriced() {
		cost := usecase.ComputeQuotationCost(q.MaterialsCost.Decimal, q.LaborCost.Decimal, q.RequirementsCost.Decimal)
		resp.Cost = &CostBreakdownResponse{
			Subtotal: money(cost.Subtotal),
			VAT:      money(cost.VAT),
			Total:    money(cost.Total),
		}
	}
	return resp
}

func FromQuotations(quotations []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, FromQuotation(q))
	}
	return out
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func nullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := money(d.Decimal)
	return &s
}
