package impl

import (
	"context"
	"log/slog"
	"math"

	"tilemart/internal/domain/entity"
	domainerrors "tilemart/internal/domain/errors"
	"tilemart/internal/usecase"

	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. Checkout here is
// a client-local commit: report the total, then empty the cart. Order
// persistence is not this subsystem's concern.
type checkoutService struct {
	cart    usecase.CartUsecase
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:    cart,
		session: session,
		logger:  logger,
	}
}

// Subtotal sums price times quantity across lines, rounded to two decimals.
func (srv *checkoutService) Subtotal(lines []entity.CartLine) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.LineTotal()
	}

	return roundToCents(sum)
}

// ConfirmCheckout reports the final total and clears the cart. Without an
// active session it fails with AuthRequired and leaves the cart untouched.
func (srv *checkoutService) ConfirmCheckout(ctx context.Context) (*usecase.CheckoutSummary, error) {
	decision := srv.session.Authorize(entity.CapCheckout)
	if !decision.Allowed {
		return nil, domainerrors.ErrAuthRequired.WithDetails(decision.Reason)
	}

	lines, err := srv.cart.Reconcile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reconcile cart for checkout")
	}

	summary := &usecase.CheckoutSummary{
		Lines: lines,
		Total: srv.Subtotal(lines),
	}

	if err := srv.cart.Clear(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	srv.logger.Info("checkout confirmed",
		"items", len(summary.Lines),
		"total", summary.Total,
	)

	return summary, nil
}

// roundToCents applies standard half-away-from-zero rounding at two decimals.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
