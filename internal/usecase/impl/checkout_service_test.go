package impl

import (
	"context"
	"testing"

	"tilemart/internal/domain/entity"
	domainerrors "tilemart/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Subtotal(t *testing.T) {
	t.Parallel()

	checkout := NewCheckoutService(nil, customerSession(), discardLogger())

	tests := []struct {
		name  string
		lines []entity.CartLine
		want  float64
	}{
		{
			name:  "empty cart",
			lines: nil,
			want:  0,
		},
		{
			name: "single line",
			lines: []entity.CartLine{
				{Tile: entity.Tile{Price: 450}, Quantity: 2},
			},
			want: 900,
		},
		{
			name: "mixed quantities",
			lines: []entity.CartLine{
				{Tile: entity.Tile{Price: 150.00}, Quantity: 2},
				{Tile: entity.Tile{Price: 99.50}, Quantity: 1},
			},
			want: 399.50,
		},
		{
			name: "fractional prices round to cents",
			lines: []entity.CartLine{
				{Tile: entity.Tile{Price: 99.99}, Quantity: 3},
				{Tile: entity.Tile{Price: 49.755}, Quantity: 2},
			},
			want: 399.48,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, checkout.Subtotal(tt.lines), 1e-9)
		})
	}
}

func TestCheckoutService_ConfirmCheckout(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		getTile: func(ctx context.Context, id int64) (*entity.Tile, error) {
			return &entity.Tile{ID: id, Price: 125.5}, nil
		},
	}
	session := customerSession()
	cart := newCartForTest(t, session, catalog)
	require.NoError(t, cart.Add(context.Background(), 1))
	require.NoError(t, cart.Add(context.Background(), 2))
	cart.SetQuantity(2, 3)

	checkout := NewCheckoutService(cart, session, discardLogger())

	summary, err := checkout.ConfirmCheckout(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Lines, 2)
	assert.InDelta(t, 502.0, summary.Total, 1e-9)

	// Checkout commits by emptying the cart.
	assert.Empty(t, cart.Items())
}

func TestCheckoutService_ConfirmCheckoutRequiresSession(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		getTile: func(ctx context.Context, id int64) (*entity.Tile, error) {
			return &entity.Tile{ID: id, Price: 10}, nil
		},
	}
	customer := customerSession()
	cart := newCartForTest(t, customer, catalog)
	require.NoError(t, cart.Add(context.Background(), 5))

	anonymous := NewSessionService(discardLogger())
	checkout := NewCheckoutService(cart, anonymous, discardLogger())

	summary, err := checkout.ConfirmCheckout(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAuthRequired.ErrorCode(), appErr.ErrorCode())

	// The cart is untouched when checkout is refused.
	assert.Equal(t, []int64{5}, cart.Items())
	assert.Zero(t, catalog.calls.Load())
}

func TestCheckoutService_ConfirmCheckoutPropagatesReconcileFailure(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		getTile: func(ctx context.Context, id int64) (*entity.Tile, error) {
			return nil, assert.AnError
		},
	}
	session := customerSession()
	cart := newCartForTest(t, session, catalog)
	require.NoError(t, cart.Add(context.Background(), 5))

	checkout := NewCheckoutService(cart, session, discardLogger())

	_, err := checkout.ConfirmCheckout(context.Background())
	require.Error(t, err)

	// A failed reconciliation must not empty the cart.
	assert.Equal(t, []int64{5}, cart.Items())
}
