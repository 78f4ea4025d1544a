package response

import (
	"time"

	"veltech_portal/internal/domain/entities"
)

type ProjectResponse struct {
	ID                string    `json:"id"`
	RequesterID       string    `json:"requester_id"`
	QuotationID       string    `json:"quotation_id"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"payment_status"`
	ContractRef       string    `json:"contract_ref,omitempty"`
	SignedContractRef string    `json:"signed_contract_ref,omitempty"`
	RemainingBalance  string    `json:"remaining_balance"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		RequesterID:       p.RequesterID,
		QuotationID:       p.QuotationID,
		Status:            string(p.Status),
		PaymentStatus:     string(p.PaymentStatus),
		ContractRef:       p.ContractRef,
		SignedContractRef: p.SignedContractRef,
		RemainingBalance:  money(p.RemainingBalance),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

type MilestoneResponse struct {
	ProjectID     string     `json:"project_id"`
	MilestoneNo   int        `json:"milestone_no"`
	Price         string     `json:"price"`
	Description   string     `json:"description"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EstimatedEnd  *time.Time `json:"estimated_end,omitempty"`
	Status        string     `json:"status"`
	BillingStatus string     `json:"billing_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromMilestone(ms entities.ProjectMilestone) MilestoneResponse {
	return MilestoneResponse{
		ProjectID:     ms.ProjectID,
		MilestoneNo:   ms.MilestoneNo,
		Price:         money(ms.Price),
		Description:   ms.Description,
		StartDate:     optionalTime(ms.StartDate),
		EstimatedEnd:  optionalTime(ms.EstimatedEnd),
		Status:        string(ms.Status),
		BillingStatus: string(ms.BillingStatus),
		CreatedAt:     ms.CreatedAt,
		UpdatedAt:     ms.UpdatedAt,
	}
}

func FromMilestones(milestones []entities.ProjectMilestone) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(milestones))
	for _, ms := range milestones {
		out = append(out, FromMilestone(ms))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
