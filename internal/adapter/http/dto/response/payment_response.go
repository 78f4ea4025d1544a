package response

import (
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase"
)

type PaymentResponse struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"project_id"`
	RequesterID     string     `json:"requester_id"`
	ProofImageRef   string     `json:"proof_image_ref"`
	ReferenceNo     string     `json:"reference_no"`
	Amount          string     `json:"amount"`
	Category        string     `json:"category"`
	MilestoneNo     int        `json:"milestone_no,omitempty"`
	BalanceSnapshot string     `json:"balance_snapshot"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}

func FromPayment(p entities.ProofOfPayment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		ProjectID:       p.ProjectID,
		RequesterID:     p.RequesterID,
		ProofImageRef:   p.ProofImageRef,
		ReferenceNo:     p.ReferenceNo,
		Amount:          money(p.Amount),
		Category:        string(p.Category),
		MilestoneNo:     p.MilestoneNo,
		BalanceSnapshot: money(p.BalanceSnapshot),
		Status:          string(p.Status),
		SubmittedAt:     p.SubmittedAt,
		ResolvedAt:      optionalTime(p.ResolvedAt),
	}
}

func FromPayments(payments []entities.ProofOfPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// AcceptPaymentResponse is everything the accept transaction changed.
type AcceptPaymentResponse struct {
	Payment   PaymentResponse    `json:"payment"`
	Project   ProjectResponse    `json:"project"`
	Milestone *MilestoneResponse `json:"milestone,omitempty"`
}

func FromAcceptPaymentResult(result usecase.AcceptPaymentResult) AcceptPaymentResponse {
	resp := AcceptPaymentResponse{
		Payment: FromPayment(result.Payment),
		Project: FromProject(result.Project),
	}
	if result.Milestone != nil {
		ms := FromMilestone(*result.Milestone)
		resp.Milestone = &ms
	}
	return resp
}
