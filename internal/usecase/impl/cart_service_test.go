package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tilemart/internal/domain/entity"
	domainerrors "tilemart/internal/domain/errors"
	"tilemart/internal/domain/service"
	"tilemart/internal/infra/localstore"
	"tilemart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartForTest(t *testing.T, session usecase.SessionUsecase, catalog service.CatalogService) usecase.CartUsecase {
	t.Helper()

	return NewCartService(localstore.NewMemoryStore(), catalog, session, discardLogger())
}

func TestCartService_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	cart := newCartForTest(t, customerSession(), &fakeCatalog{})

	require.NoError(t, cart.Add(context.Background(), 5))
	require.NoError(t, cart.Add(context.Background(), 5))
	require.NoError(t, cart.Add(context.Background(), 9))

	assert.Equal(t, []int64{5, 9}, cart.Items())
}

func TestCartService_AddRequiresSession(t *testing.T) {
	t.Parallel()

	session := NewSessionService(discardLogger())
	cart := newCartForTest(t, session, &fakeCatalog{})

	err := cart.Add(context.Background(), 5)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAuthRequired.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, cart.Items())
}

func TestCartService_AddRejectsSellers(t *testing.T) {
	t.Parallel()

	cart := newCartForTest(t, sellerSession(3), &fakeCatalog{})

	err := cart.Add(context.Background(), 5)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, cart.Items())
}

func TestCartService_LoadSeedsQuantitiesToOne(t *testing.T) {
	t.Parallel()

	repo := localstore.NewMemoryStore()
	require.NoError(t, repo.Save(context.Background(), []int64{4, 8, 4, 15}))

	cart := NewCartService(repo, &fakeCatalog{}, customerSession(), discardLogger())
	require.NoError(t, cart.Load(context.Background()))

	assert.Equal(t, []int64{4, 8, 15}, cart.Items())
	assert.Equal(t, 1, cart.Quantity(4))
	assert.Equal(t, 1, cart.Quantity(8))
}

func TestCartService_SetQuantity(t *testing.T) {
	t.Parallel()

	cart := newCartForTest(t, customerSession(), &fakeCatalog{})
	require.NoError(t, cart.Add(context.Background(), 5))

	cart.SetQuantity(5, 7)
	assert.Equal(t, 7, cart.Quantity(5))

	// Values below one leave the stored quantity alone.
	cart.SetQuantity(5, 0)
	assert.Equal(t, 7, cart.Quantity(5))
	cart.SetQuantity(5, -3)
	assert.Equal(t, 7, cart.Quantity(5))

	// Quantities never attach to tiles outside the cart.
	cart.SetQuantity(99, 4)
	assert.Equal(t, 1, cart.Quantity(99))
}

func TestCartService_RemoveAndClear(t *testing.T) {
	t.Parallel()

	cart := newCartForTest(t, customerSession(), &fakeCatalog{})
	require.NoError(t, cart.Add(context.Background(), 1))
	require.NoError(t, cart.Add(context.Background(), 2))
	require.NoError(t, cart.Add(context.Background(), 3))

	require.NoError(t, cart.Remove(context.Background(), 2))
	assert.Equal(t, []int64{1, 3}, cart.Items())

	// Removing an absent tile is a no-op.
	require.NoError(t, cart.Remove(context.Background(), 42))
	assert.Equal(t, []int64{1, 3}, cart.Items())

	require.NoError(t, cart.Clear(context.Background()))
	assert.Empty(t, cart.Items())
}

func TestCartService_ClearSurvivesReload(t *testing.T) {
	t.Parallel()

	repo := localstore.NewMemoryStore()
	cart := NewCartService(repo, &fakeCatalog{}, customerSession(), discardLogger())

	require.NoError(t, cart.Add(context.Background(), 5))
	require.NoError(t, cart.Clear(context.Background()))

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCartService_ReconcileKeepsCartOrder(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		getTile: func(ctx context.Context, id int64) (*entity.Tile, error) {
			// Finish in reverse id order so output order cannot come from
			// completion timing.
			time.Sleep(time.Duration(40-id) * time.Millisecond)

			return &entity.Tile{ID: id, Name: fmt.Sprintf("Tile %d", id), Price: 100}, nil
		},
	}

	cart := newCartForTest(t, customerSession(), catalog)
	for _, id := range []int64{30, 10, 20} {
		require.NoError(t, cart.Add(context.Background(), id))
	}
	cart.SetQuantity(10, 4)

	lines, err := cart.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, int64(30), lines[0].TileID)
	assert.Equal(t, int64(10), lines[1].TileID)
	assert.Equal(t, int64(20), lines[2].TileID)
	assert.Equal(t, 4, lines[1].Quantity)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartService_ReconcilePrunesVanishedTiles(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		getTile: func(ctx context.Context, id int64) (*entity.Tile, error) {
			if id == 2 {
				return nil, service.ErrTileNotFound
			}

			return &entity.Tile{ID: id, Price: 50}, nil
		},
	}

	cart := newCartForTest(t, customerSession(), catalog)
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, cart.Add(context.Background(), id))
	}

	lines, err := cart.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].TileID)
	assert.Equal(t, int64(3), lines[1].TileID)

	// The vanished tile is gone from the cart itself, not just the lines.
	assert.Equal(t, []int64{1, 3}, cart.Items())
}

func TestCartService_ReconcileFailsWholeBatchOnNetworkError(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		getTile: func(ctx context.Context, id int64) (*entity.Tile, error) {
			if id == 2 {
				return nil, errors.New("connection refused")
			}

			return &entity.Tile{ID: id}, nil
		},
	}

	cart := newCartForTest(t, customerSession(), catalog)
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, cart.Add(context.Background(), id))
	}

	lines, err := cart.Reconcile(context.Background())
	require.Error(t, err)
	assert.Nil(t, lines)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNetworkFailure.ErrorCode(), appErr.ErrorCode())

	// No partial pruning on failure.
	assert.Equal(t, []int64{1, 2, 3}, cart.Items())
}

func TestCartService_ReconcileEmptyCart(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{}
	cart := newCartForTest(t, customerSession(), catalog)

	lines, err := cart.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Zero(t, catalog.calls.Load())
}
