package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SubmitPaymentRequest is a client's proof-of-payment upload. MilestoneNo is
// required exactly when category is MILESTONE.
type SubmitPaymentRequest struct {
	ProjectID     string          `json:"project_id" binding:"required"`
	RequesterID   string          `json:"requester_id" binding:"required"`
	ProofImageRef string          `json:"proof_image_ref" binding:"required"`
	ReferenceNo   string          `json:"reference_no" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	MilestoneNo   int             `json:"milestone_no"`
}

func (r SubmitPaymentRequest) ResolveCategory() string {
	return strings.ToUpper(strings.TrimSpace(r.Category))
}

// ResolvePaymentRequest identifies the accounting actor resolving a pending
// payment; the payment id comes from the path.
type ResolvePaymentRequest struct {
	ActorID string `json:"actor_id"`
}
