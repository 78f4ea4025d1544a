package usecase

import (
	"fmt"

	"veltech_portal/internal/domain/entities"
)

// quotationStatusTemplates maps a *target* quotation status to its
// notification template. Statuses without an entry emit nothing. The template
// is selected by the status being entered, never the one being left.
var quotationStatusTemplates = map[entities.QuotationStatus]struct {
	title string
	body  string
}{
	entities.QuotationStatusWaitingOcular: {
		title: "Ocular visit scheduled",
		body:  "Your quotation request passed review. Our team will contact you to schedule the ocular inspection of your establishment.",
	},
	entities.QuotationStatusRejectedQuotation: {
		title: "Quotation request rejected",
		body:  "We are unable to proceed with your quotation request. You may submit a new request with updated details.",
	},
	entities.QuotationStatusDrafting: {
		title: "Quotation drafting started",
		body:  "The ocular inspection is complete. We are now drafting your fire protection quotation.",
	},
	entities.QuotationStatusRejectedOcular: {
		title: "Ocular inspection rejected",
		body:  "Following the ocular inspection, we are unable to proceed with your quotation request.",
	},
	entities.QuotationStatusClientApproval: {
		title: "Quotation ready for your approval",
		body:  "Your quotation has been finalized and is now waiting for your approval.",
	},
}

func quotationStatusNotification(q entities.Quotation, target entities.QuotationStatus) (entities.Notification, bool) {
	tpl, ok := quotationStatusTemplates[target]
	if !ok {
		return entities.Notification{}, false
	}
	return entities.Notification{
		Title:           tpl.title,
		Body:            tpl.body,
		OriginType:      entities.NotificationOriginQuotation,
		OriginID:        q.ID,
		RecipientUserID: q.RequesterID,
	}, true
}

func projectDraftingNotification(p entities.Project) entities.Notification {
	return entities.Notification{
		Title:           "Project drafting started",
		Body:            "Your quotation has been approved. We are now preparing the contract for your project.",
		OriginType:      entities.NotificationOriginProject,
		OriginID:        p.ID,
		RecipientUserID: p.RequesterID,
	}
}

func paymentAcceptedNotification(p entities.ProofOfPayment) entities.Notification {
	n := entities.Notification{
		OriginType:      entities.NotificationOriginProject,
		OriginID:        p.ProjectID,
		RecipientUserID: p.RequesterID,
	}
	switch p.Category {
	case entities.PaymentCategoryMilestone:
		n.Title = fmt.Sprintf("Milestone %d payment received", p.MilestoneNo)
		n.Body = fmt.Sprintf("Your payment for milestone %d has been accepted and applied to your project balance.", p.MilestoneNo)
	case entities.PaymentCategoryDownPayment:
		n.Title = "Down payment received"
		n.Body = "Your down payment has been accepted and applied to your project balance."
	default:
		n.Title = "Payment received"
		n.Body = "Your payment has been accepted and applied to your project balance."
	}
	return n
}
