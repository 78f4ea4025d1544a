package usecase

import "errors"

// Workflow error taxonomy. Every failure a usecase returns wraps or is one of
// these sentinels so the presentation layer can answer with a distinguishable
// category (retry prompt vs validation message vs hard failure).
var (
	// ErrIllegalTransition: the requested status is not reachable from the
	// entity's current status. Never coerced to the nearest legal state.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrConcurrentConflict: the entity changed between the transactional read
	// and the conditional write. The operation was aborted whole; callers
	// retry with fresh data.
	ErrConcurrentConflict = errors.New("concurrent update conflict")

	// ErrIncompleteInput: a required field for the operation is missing.
	// Rejected before any transition is attempted.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrInvariantViolation: an integration-level precondition does not hold
	// (e.g. approving an unpriced quotation). Always surfaced, never swallowed.
	ErrInvariantViolation = errors.New("invariant violation")

	ErrQuotationNotFound = errors.New("quotation not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrPaymentNotFound   = errors.New("proof of payment not found")
	ErrUserNotFound      = errors.New("user not found")
)
