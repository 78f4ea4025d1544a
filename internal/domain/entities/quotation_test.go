package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var allQuotationStatuses = []QuotationStatus{
	QuotationStatusForReview,
	QuotationStatusWaitingOcular,
	QuotationStatusDrafting,
	QuotationStatusForApproval,
	QuotationStatusForRevision,
	QuotationStatusClientApproval,
	QuotationStatusApproved,
	QuotationStatusRejectedQuotation,
	QuotationStatusRejectedOcular,
	QuotationStatusCanceled,
}

func TestQuotationStatusCanTransitionTo(t *testing.T) {
	allowed := map[QuotationStatus][]QuotationStatus{
		QuotationStatusForReview:      {QuotationStatusWaitingOcular, QuotationStatusRejectedQuotation},
		QuotationStatusWaitingOcular:  {QuotationStatusDrafting, QuotationStatusRejectedOcular},
		QuotationStatusDrafting:       {QuotationStatusForApproval},
		QuotationStatusForApproval:    {QuotationStatusClientApproval, QuotationStatusForRevision},
		QuotationStatusForRevision:    {QuotationStatusDrafting},
		QuotationStatusClientApproval: {QuotationStatusApproved, QuotationStatusForRevision, QuotationStatusCanceled},
	}

	// Every pair not in the edge table must be rejected, including self loops.
	for _, from := range allQuotationStatuses {
		for _, to := range allQuotationStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestQuotationStatusIsTerminal(t *testing.T) {
	terminal := map[QuotationStatus]bool{
		QuotationStatusApproved:          true,
		QuotationStatusRejectedQuotation: true,
		QuotationStatusRejectedOcular:    true,
		QuotationStatusCanceled:          true,
	}
	for _, s := range allQuotationStatuses {
		assert.Equal(t, terminal[s], s.IsTerminal(), "%s", s)
	}
}

func TestQuotationStatusIsValid(t *testing.T) {
	for _, s := range allQuotationStatuses {
		assert.True(t, s.IsValid(), "%s", s)
	}
	assert.False(t, QuotationStatus("PAID").IsValid())
	assert.False(t, QuotationStatus("approved").IsValid())
	assert.False(t, QuotationStatus("").IsValid())
}

func TestQuotationIsPriced(t *testing.T) {
	q := Quotation{}
	assert.False(t, q.IsPriced())

	q.MaterialsCost = decimal.NewNullDecimal(decimal.NewFromInt(100000))
	q.LaborCost = decimal.NewNullDecimal(decimal.NewFromInt(50000))
	assert.False(t, q.IsPriced(), "partial breakdown is not priced")

	q.RequirementsCost = decimal.NewNullDecimal(decimal.NewFromInt(20000))
	assert.True(t, q.IsPriced())
}
