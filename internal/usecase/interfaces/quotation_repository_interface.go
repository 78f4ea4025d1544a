package interfaces

import (
	"context"

	"veltech_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Conditional-write contract (shared by all repositories here): UpdateStatus
// and SetPricing write only when the persisted status still equals `from`. A
// failed condition returns a zero-value entity and a nil error; the usecase
// re-reads to tell not-found apart from a concurrent update.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByRequesterID(ctx context.Context, requesterID string) ([]entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuotationStatus) (entities.Quotation, error)
	SetPricing(ctx context.Context, id string, materials, labor, requirements decimal.Decimal, quotationDocRef string, from, to entities.QuotationStatus) (entities.Quotation, error)
}
