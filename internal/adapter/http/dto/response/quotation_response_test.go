package response

import (
	"testing"
	"time"

	"veltech_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromQuotation_Unpriced(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quotation{
		ID:                  "q-1",
		RequesterID:         "client-1",
		BuildingType:        "WAREHOUSE",
		EstablishmentWidth:  20,
		EstablishmentHeight: 8,
		Status:              entities.QuotationStatusForReview,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res := FromQuotation(q)
	if res.ID != "q-1" || res.Status != "FOR_REVIEW" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.MaterialsCost != nil || res.LaborCost != nil || res.RequirementsCost != nil {
		t.Fatalf("unpriced costs must render as absent: %+v", res)
	}
	if res.Cost != nil {
		t.Fatalf("unpriced quotation must not carry a breakdown: %+v", res.Cost)
	}
}

func TestFromQuotation_Priced(t *testing.T) {
	q := entities.Quotation{
		ID:               "q-1",
		Status:           entities.QuotationStatusForApproval,
		MaterialsCost:    decimal.NewNullDecimal(decimal.NewFromInt(100000)),
		LaborCost:        decimal.NewNullDecimal(decimal.NewFromInt(50000)),
		RequirementsCost: decimal.NewNullDecimal(decimal.NewFromInt(20000)),
		QuotationDocRef:  "docs/quotation.pdf",
	}

	res := FromQuotation(q)
	if res.MaterialsCost == nil || *res.MaterialsCost != "100000.00" {
		t.Fatalf("unexpected materials cost: %+v", res.MaterialsCost)
	}
	if res.Cost == nil {
		t.Fatal("expected a cost breakdown")
	}
	if res.Cost.Total != "170000.00" || res.Cost.VAT != "20400.00" || res.Cost.Subtotal != "149600.00" {
		t.Fatalf("unexpected breakdown: %+v", res.Cost)
	}
}

func TestMoneyRendering(t *testing.T) {
	if got := money(decimal.RequireFromString("0.005")); got != "0.01" {
		t.Fatalf("expected rounding to 0.01, got %s", got)
	}
	if got := money(decimal.NewFromInt(85000)); got != "85000.00" {
		t.Fatalf("expected two decimals, got %s", got)
	}
	if nullMoney(decimal.NullDecimal{}) != nil {
		t.Fatal("expected nil for an unset decimal")
	}
}
