package usecase

import (
	"context"

	"tilemart/internal/domain/entity"
)

// CheckoutUsecase derives totals from reconciled cart lines and performs the
// client-local checkout commit. No order record is created here; order
// persistence belongs to an external collaborator.
type CheckoutUsecase interface {
	// Subtotal sums price times quantity across lines, rounded to two
	// decimal places with standard rounding.
	Subtotal(lines []entity.CartLine) float64

	// ConfirmCheckout requires an active session, reports the final total,
	// and clears the cart. Without a session it fails with AuthRequired and
	// leaves the cart untouched.
	ConfirmCheckout(ctx context.Context) (*CheckoutSummary, error)
}

// CheckoutSummary reports the outcome of a confirmed checkout.
type CheckoutSummary struct {
	Lines []entity.CartLine
	Total float64
}
