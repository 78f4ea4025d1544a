package usecase

import (
	"veltech_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// vatRate is the fixed 12% VAT split applied to every quotation total. A
// versioned constant on purpose: changing it mid-flight would invalidate the
// balances of in-flight projects.
var vatRate = decimal.New(12, -2)

// CostBreakdown is the derived monetary view of a priced quotation.
// Values are kept at full precision; rounding to two decimals happens only at
// the presentation layer.

type CostBreakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeQuotationCost derives the quotation totals from the three cost
// components. Total = materials + labor + requirements; VAT = Total * 0.12;
// Subtotal = Total - VAT, so Subtotal + VAT == Total holds exactly.
func ComputeQuotationCost(materials, labor, requirements decimal.Decimal) CostBreakdown {
	total := materials.Add(labor).Add(requirements)
	vat := total.Mul(vatRate)
	return CostBreakdown{
		Subtotal: total.Sub(vat),
		VAT:      vat,
		Total:    total,
	}
}

// paymentOutcome is what applying one accepted payment does to a project:
// the decremented balance and the payment status the project lands on.

type paymentOutcome struct {
	newBalance decimal.Decimal
	toStatus   entities.ProjectPaymentStatus
}

// applyPayment computes the balance decrement and the resulting project
// payment status for an accepted payment. The balance is not clamped:
// callers submit exact decimal amounts, and a transient negative from
// overpayment still means fully paid.
//
//   - DOWN_PAYMENT: more billing is expected, so WAITING_PAYMENT regardless of
//     the resulting balance.
//   - MILESTONE: FULLY_PAID once the balance reaches zero, else
//     WAITING_PAYMENT.
//   - OTHER: balance decrement only, status unchanged.
func applyPayment(project entities.Project, amount decimal.Decimal, category entities.PaymentCategory) paymentOutcome {
	out := paymentOutcome{
		newBalance: project.RemainingBalance.Sub(amount),
		toStatus:   project.PaymentStatus,
	}

	switch category {
	case entities.PaymentCategoryDownPayment:
		out.toStatus = entities.ProjectPaymentStatusWaitingPayment
	case entities.PaymentCategoryMilestone:
		if out.newBalance.Sign() <= 0 {
			out.toStatus = entities.ProjectPaymentStatusFullyPaid
		} else {
			out.toStatus = entities.ProjectPaymentStatusWaitingPayment
		}
	}

	return out
}
