package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"tilemart/config"
	"tilemart/internal/domain/entity"
	domainerrors "tilemart/internal/domain/errors"
	"tilemart/internal/domain/service"
	"tilemart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// inventoryService implements the InventoryUsecase interface. Every mutation
// re-checks the shop.manage capability against the live session instead of
// trusting the routing guard alone.
type inventoryService struct {
	mu      sync.Mutex
	listing []entity.Tile

	catalog    service.CatalogService
	normalizer service.ImageNormalizer
	confirmer  service.Confirmer
	session    usecase.SessionUsecase
	imageCfg   *config.ImageConfig
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	catalog service.CatalogService,
	normalizer service.ImageNormalizer,
	confirmer service.Confirmer,
	session usecase.SessionUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		catalog:    catalog,
		normalizer: normalizer,
		confirmer:  confirmer,
		session:    session,
		imageCfg:   cfg.Image,
		validate:   validator.New(),
		logger:     logger,
	}
}

// draftFields carries the validated subset of a draft submission.
type draftFields struct {
	Name     string  `validate:"required"`
	Price    float64 `validate:"required,gt=0"`
	Size     string  `validate:"required"`
	Stock    int     `validate:"gte=0"`
	Category string  `validate:"required"`
}

// NewDraft starts an empty draft in the editing state.
func (srv *inventoryService) NewDraft() *entity.TileDraft {
	return entity.NewTileDraft()
}

// EditDraft starts a draft prefilled from an existing tile.
func (srv *inventoryService) EditDraft(tile *entity.Tile) *entity.TileDraft {
	return entity.DraftFromTile(tile)
}

// Create validates the draft, normalizes its image, and submits the
// multipart upload. The draft survives failures for retry.
func (srv *inventoryService) Create(ctx context.Context, draft *entity.TileDraft) (*entity.Tile, error) {
	identity, err := srv.requireSeller()
	if err != nil {
		return nil, err
	}

	if err := srv.validateDraft(draft); err != nil {
		return nil, err
	}
	if draft.Image == nil {
		return nil, domainerrors.ErrValidation.WithDetails("missing image")
	}
	if !identity.HasShop() {
		return nil, domainerrors.ErrValidation.WithDetails("missing shop")
	}

	draft.Status = entity.DraftSubmitting
	draft.LastError = ""

	normalized, err := srv.normalizer.Normalize(ctx, draft.Image,
		srv.imageCfg.MaxWidth, srv.imageCfg.MaxHeight, srv.imageCfg.Quality)
	if err != nil {
		return nil, srv.failDraft(draft, domainerrors.ErrDecodeFailed.WithDetails(err.Error()))
	}

	created, err := srv.catalog.UploadTile(ctx, &service.TileUpload{
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		Size:        draft.Size,
		Stock:       draft.Stock,
		Category:    draft.Category,
		ShopID:      identity.ShopID,
		Image:       normalized,
		Token:       identity.AuthToken,
	})
	if err != nil {
		var apiErr *service.APIError
		if errors.As(err, &apiErr) {
			return nil, srv.failDraft(draft, &domainerrors.UploadFailedError{
				Status: apiErr.StatusCode,
				Body:   apiErr.Body,
			})
		}

		return nil, srv.failDraft(draft, domainerrors.ErrNetworkFailure.WrapMessage(err.Error()))
	}

	draft.Status = entity.DraftIdle

	srv.mu.Lock()
	srv.listing = append(srv.listing, *created)
	srv.mu.Unlock()

	srv.logger.Info("tile created", "tileID", created.ID, "shopID", identity.ShopID)

	return created, nil
}

// Update submits the draft's editable fields for an existing tile. On failure
// the editing state is retained, not reverted.
func (srv *inventoryService) Update(ctx context.Context, tileID int64, draft *entity.TileDraft) (*entity.Tile, error) {
	identity, err := srv.requireSeller()
	if err != nil {
		return nil, err
	}

	if err := srv.validateDraft(draft); err != nil {
		return nil, err
	}

	draft.Status = entity.DraftSubmitting
	draft.LastError = ""

	updated, err := srv.catalog.UpdateTile(ctx, tileID, &service.TileUpdate{
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		Size:        draft.Size,
		Stock:       draft.Stock,
		Category:    draft.Category,
		ShopID:      identity.ShopID,
		Token:       identity.AuthToken,
	})
	if err != nil {
		var apiErr *service.APIError
		if errors.As(err, &apiErr) {
			return nil, srv.failDraft(draft, &domainerrors.UpdateFailedError{Body: apiErr.Body})
		}

		return nil, srv.failDraft(draft, domainerrors.ErrNetworkFailure.WrapMessage(err.Error()))
	}

	draft.Status = entity.DraftIdle

	srv.mu.Lock()
	for i := range srv.listing {
		if srv.listing[i].ID == tileID {
			srv.listing[i] = *updated

			break
		}
	}
	srv.mu.Unlock()

	srv.logger.Info("tile updated", "tileID", tileID)

	return updated, nil
}

// Delete asks the confirmation gate before the network call. On success the
// tile disappears from the cached listing; on failure it stays listed.
func (srv *inventoryService) Delete(ctx context.Context, tileID int64) error {
	identity, err := srv.requireSeller()
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Are you sure you want to delete tile %d?", tileID)
	if !srv.confirmer.Confirm(ctx, prompt) {
		srv.logger.Debug("tile deletion cancelled", "tileID", tileID)

		return nil
	}

	if err := srv.catalog.DeleteTile(ctx, tileID, identity.ShopID, identity.AuthToken); err != nil {
		var apiErr *service.APIError
		if errors.As(err, &apiErr) {
			return &domainerrors.DeleteFailedError{Body: apiErr.Body}
		}

		return domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	srv.mu.Lock()
	srv.listing = slices.DeleteFunc(srv.listing, func(t entity.Tile) bool {
		return t.ID == tileID
	})
	srv.mu.Unlock()

	srv.logger.Info("tile deleted", "tileID", tileID)

	return nil
}

// ListOwn fetches the full catalog and filters client-side to tiles owned by
// the session's shop, preserving catalog order. The API offers no server-side
// scoping, so the filtering is this component's responsibility.
func (srv *inventoryService) ListOwn(ctx context.Context) ([]entity.Tile, error) {
	identity, err := srv.requireSeller()
	if err != nil {
		return nil, err
	}
	if !identity.HasShop() {
		return nil, domainerrors.ErrValidation.WithDetails("missing shop")
	}

	tiles, err := srv.catalog.ListTiles(ctx)
	if err != nil {
		return nil, domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	own := make([]entity.Tile, 0, len(tiles))
	for _, tile := range tiles {
		if tile.ShopID() == identity.ShopID {
			own = append(own, tile)
		}
	}

	srv.mu.Lock()
	srv.listing = slices.Clone(own)
	srv.mu.Unlock()

	return own, nil
}

func (srv *inventoryService) validateDraft(draft *entity.TileDraft) error {
	fields := draftFields{
		Name:     draft.Name,
		Price:    draft.Price,
		Size:     draft.Size,
		Stock:    draft.Stock,
		Category: draft.Category,
	}
	if err := srv.validate.Struct(fields); err != nil {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	return nil
}

// failDraft records the failure on the draft and hands the error back.
func (srv *inventoryService) failDraft(draft *entity.TileDraft, err error) error {
	draft.Status = entity.DraftEditing

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		draft.LastError = appErr.Message()
	} else {
		draft.LastError = err.Error()
	}

	return err
}

// requireSeller maps the capability decision onto the error taxonomy.
func (srv *inventoryService) requireSeller() (*entity.Identity, error) {
	decision := srv.session.Authorize(entity.CapManageShop)
	if !decision.Allowed {
		if srv.session.CurrentRole() == entity.RoleNone {
			return nil, domainerrors.ErrAuthRequired.WithDetails(decision.Reason)
		}

		return nil, domainerrors.ErrForbidden.WithDetails(decision.Reason)
	}

	identity, _ := srv.session.Current()

	return identity, nil
}
