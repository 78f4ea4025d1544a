package response

import (
	"testing"
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPayment(t *testing.T) {
	submitted := time.Now().UTC()
	p := entities.ProofOfPayment{
		ID:              "pay-1",
		ProjectID:       "p-1",
		RequesterID:     "client-1",
		ProofImageRef:   "proofs/receipt.jpg",
		ReferenceNo:     "GCASH-0001",
		Amount:          decimal.RequireFromString("40000.5"),
		Category:        entities.PaymentCategoryMilestone,
		MilestoneNo:     2,
		BalanceSnapshot: decimal.NewFromInt(85000),
		Status:          entities.ProofOfPaymentStatusPending,
		SubmittedAt:     submitted,
	}

	res := FromPayment(p)
	if res.Amount != "40000.50" || res.BalanceSnapshot != "85000.00" {
		t.Fatalf("unexpected money rendering: %+v", res)
	}
	if res.Category != "MILESTONE" || res.MilestoneNo != 2 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ResolvedAt != nil {
		t.Fatalf("pending payment must not carry resolved_at: %+v", res.ResolvedAt)
	}

	p.Status = entities.ProofOfPaymentStatusAccepted
	p.ResolvedAt = submitted.Add(time.Hour)
	res = FromPayment(p)
	if res.ResolvedAt == nil || !res.ResolvedAt.Equal(p.ResolvedAt) {
		t.Fatalf("unexpected resolved_at: %+v", res.ResolvedAt)
	}
}

func TestFromAcceptPaymentResult(t *testing.T) {
	result := usecase.AcceptPaymentResult{
		Payment: entities.ProofOfPayment{ID: "pay-1", Status: entities.ProofOfPaymentStatusAccepted},
		Project: entities.Project{
			ID:               "p-1",
			RemainingBalance: decimal.Zero,
			PaymentStatus:    entities.ProjectPaymentStatusFullyPaid,
		},
	}

	res := FromAcceptPaymentResult(result)
	if res.Payment.ID != "pay-1" || res.Project.RemainingBalance != "0.00" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Milestone != nil {
		t.Fatal("expected no milestone for a non-milestone payment")
	}

	result.Milestone = &entities.ProjectMilestone{
		ProjectID:     "p-1",
		MilestoneNo:   1,
		Price:         decimal.NewFromInt(40000),
		Status:        entities.MilestoneStatusCompleted,
		BillingStatus: entities.MilestoneBillingStatusPaid,
	}
	res = FromAcceptPaymentResult(result)
	if res.Milestone == nil || res.Milestone.BillingStatus != "PAID" {
		t.Fatalf("unexpected milestone: %+v", res.Milestone)
	}
}

func TestFromMilestone_OptionalDates(t *testing.T) {
	ms := entities.ProjectMilestone{
		ProjectID:   "p-1",
		MilestoneNo: 1,
		Price:       decimal.NewFromInt(40000),
	}

	res := FromMilestone(ms)
	if res.StartDate != nil || res.EstimatedEnd != nil {
		t.Fatalf("zero dates must render as absent: %+v", res)
	}

	start := time.Now().UTC()
	ms.StartDate = start
	ms.EstimatedEnd = start.AddDate(0, 1, 0)
	res = FromMilestone(ms)
	if res.StartDate == nil || !res.StartDate.Equal(start) {
		t.Fatalf("unexpected start date: %+v", res.StartDate)
	}
	if res.EstimatedEnd == nil || !res.EstimatedEnd.Equal(ms.EstimatedEnd) {
		t.Fatalf("unexpected estimated end: %+v", res.EstimatedEnd)
	}
}
