package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"tilemart/internal/domain/entity"
	domainerrors "tilemart/internal/domain/errors"
	"tilemart/internal/domain/repository"
	"tilemart/internal/domain/service"
	"tilemart/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// cartService implements the CartUsecase interface. The identifier list is an
// ordered set mirrored into the cart repository on every mutation; quantities
// live only in memory and are reseeded to 1 on load.
type cartService struct {
	mu         sync.Mutex
	tileIDs    []int64
	quantities map[int64]int

	cartRepo repository.CartRepository
	catalog  service.CatalogService
	session  usecase.SessionUsecase
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	catalog service.CatalogService,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		quantities: make(map[int64]int),
		cartRepo:   cartRepo,
		catalog:    catalog,
		session:    session,
		logger:     logger,
	}
}

// Load reads the persisted identifier list and seeds every quantity to 1.
func (srv *cartService) Load(ctx context.Context) error {
	tileIDs, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load cart")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.tileIDs = srv.tileIDs[:0]
	srv.quantities = make(map[int64]int, len(tileIDs))
	for _, id := range tileIDs {
		// Defend against a hand-edited store: keep set semantics on load too.
		if slices.Contains(srv.tileIDs, id) {
			continue
		}
		srv.tileIDs = append(srv.tileIDs, id)
		srv.quantities[id] = 1
	}

	srv.logger.Debug("cart loaded", "items", len(srv.tileIDs))

	return nil
}

// Add appends tileID iff not already present and persists the new list.
func (srv *cartService) Add(ctx context.Context, tileID int64) error {
	if err := srv.requireCartAccess(); err != nil {
		return err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if slices.Contains(srv.tileIDs, tileID) {
		return nil
	}

	srv.tileIDs = append(srv.tileIDs, tileID)
	if _, ok := srv.quantities[tileID]; !ok {
		srv.quantities[tileID] = 1
	}

	if err := srv.cartRepo.Save(ctx, srv.tileIDs); err != nil {
		// Roll back to the pre-attempt list so memory and store stay aligned.
		srv.tileIDs = srv.tileIDs[:len(srv.tileIDs)-1]
		delete(srv.quantities, tileID)

		return errors.Wrap(err, "failed to persist cart")
	}

	srv.logger.Debug("tile added to cart", "tileID", tileID)

	return nil
}

// Remove drops tileID from the identifier list and its quantity entry.
func (srv *cartService) Remove(ctx context.Context, tileID int64) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := slices.Index(srv.tileIDs, tileID)
	if idx < 0 {
		return nil
	}

	previous := slices.Clone(srv.tileIDs)
	previousQty, hadQty := srv.quantities[tileID]
	srv.tileIDs = slices.Delete(srv.tileIDs, idx, idx+1)
	delete(srv.quantities, tileID)

	if err := srv.cartRepo.Save(ctx, srv.tileIDs); err != nil {
		srv.tileIDs = previous
		if hadQty {
			srv.quantities[tileID] = previousQty
		}

		return errors.Wrap(err, "failed to persist cart")
	}

	return nil
}

// SetQuantity overwrites the desired quantity; values below 1 are a no-op.
func (srv *cartService) SetQuantity(tileID int64, quantity int) {
	if quantity < 1 {
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	// Quantity keys must stay a subset of the identifier list.
	if !slices.Contains(srv.tileIDs, tileID) {
		return
	}

	srv.quantities[tileID] = quantity
}

// Clear empties the identifier list and the quantity map.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.clearLocked(ctx)
}

func (srv *cartService) clearLocked(ctx context.Context) error {
	srv.tileIDs = srv.tileIDs[:0]
	srv.quantities = make(map[int64]int)

	if err := srv.cartRepo.Save(ctx, srv.tileIDs); err != nil {
		return errors.Wrap(err, "failed to persist cart")
	}

	return nil
}

// Items returns the identifier list in insertion order.
func (srv *cartService) Items() []int64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.tileIDs)
}

// Quantity returns the desired quantity for tileID, defaulting to 1.
func (srv *cartService) Quantity(tileID int64) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if q, ok := srv.quantities[tileID]; ok {
		return q
	}

	return 1
}

// Reconcile fetches the current record of every carted tile concurrently,
// waits for the whole batch, and returns the lines in identifier-list order.
// Tiles the catalog no longer has are pruned from the cart (self-healing);
// any other fetch failure fails the batch and leaves the cart untouched.
func (srv *cartService) Reconcile(ctx context.Context) ([]entity.CartLine, error) {
	srv.mu.Lock()
	tileIDs := slices.Clone(srv.tileIDs)
	srv.mu.Unlock()

	if len(tileIDs) == 0 {
		return nil, nil
	}

	fetched := make([]*entity.Tile, len(tileIDs))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, id := range tileIDs {
		group.Go(func() error {
			tile, err := srv.catalog.GetTile(groupCtx, id)
			if err != nil {
				if errors.Is(err, service.ErrTileNotFound) {
					// Leave the slot empty; pruned after the join.
					return nil
				}

				return errors.Wrapf(err, "failed to fetch tile %d", id)
			}
			fetched[i] = tile

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	lines := make([]entity.CartLine, 0, len(tileIDs))
	var missing []int64
	for i, id := range tileIDs {
		if fetched[i] == nil {
			missing = append(missing, id)

			continue
		}
		lines = append(lines, entity.CartLine{
			TileID:   id,
			Tile:     *fetched[i],
			Quantity: srv.Quantity(id),
		})
	}

	if len(missing) > 0 {
		srv.logger.Info("pruning tiles no longer in catalog", "tileIDs", missing)
		for _, id := range missing {
			if err := srv.Remove(ctx, id); err != nil {
				return nil, err
			}
		}
	}

	return lines, nil
}

// requireCartAccess maps the capability decision onto the error taxonomy.
func (srv *cartService) requireCartAccess() error {
	decision := srv.session.Authorize(entity.CapUseCart)
	if decision.Allowed {
		return nil
	}

	if srv.session.CurrentRole() == entity.RoleNone {
		return domainerrors.ErrAuthRequired.WithDetails(decision.Reason)
	}

	return domainerrors.ErrForbidden.WithDetails(decision.Reason)
}
