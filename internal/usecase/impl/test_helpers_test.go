package impl

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"tilemart/config"
	"tilemart/internal/domain/entity"
	"tilemart/internal/domain/service"
	"tilemart/internal/usecase"
)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Image = &config.ImageConfig{MaxWidth: 800, MaxHeight: 800, Quality: 0.8}

	return cfg
}

// customerSession returns a session store holding a logged-in customer.
func customerSession() usecase.SessionUsecase {
	session := NewSessionService(discardLogger())
	session.Login(&entity.Identity{
		UserID:      7,
		Role:        entity.RoleCustomer,
		DisplayName: "Test Customer",
		AuthToken:   "token-7",
	})

	return session
}

// sellerSession returns a session store holding a logged-in seller.
func sellerSession(shopID int64) usecase.SessionUsecase {
	session := NewSessionService(discardLogger())
	session.Login(&entity.Identity{
		UserID:      9,
		Role:        entity.RoleSeller,
		DisplayName: "Test Seller",
		AuthToken:   "token-9",
		ShopID:      shopID,
	})

	return session
}

// fakeCatalog is a configurable stand-in for the catalog API boundary.
type fakeCatalog struct {
	listTiles  func(ctx context.Context) ([]entity.Tile, error)
	getTile    func(ctx context.Context, id int64) (*entity.Tile, error)
	uploadTile func(ctx context.Context, input *service.TileUpload) (*entity.Tile, error)
	updateTile func(ctx context.Context, id int64, input *service.TileUpdate) (*entity.Tile, error)
	deleteTile func(ctx context.Context, id int64, shopID int64, token string) error
	login      func(ctx context.Context, email, password string) (*service.LoginResult, error)
	signup     func(ctx context.Context, input *service.SignupInput) error

	calls atomic.Int64 // network calls observed
}

func (f *fakeCatalog) ListTiles(ctx context.Context) ([]entity.Tile, error) {
	f.calls.Add(1)

	return f.listTiles(ctx)
}

func (f *fakeCatalog) GetTile(ctx context.Context, id int64) (*entity.Tile, error) {
	f.calls.Add(1)

	return f.getTile(ctx, id)
}

func (f *fakeCatalog) UploadTile(ctx context.Context, input *service.TileUpload) (*entity.Tile, error) {
	f.calls.Add(1)

	return f.uploadTile(ctx, input)
}

func (f *fakeCatalog) UpdateTile(ctx context.Context, id int64, input *service.TileUpdate) (*entity.Tile, error) {
	f.calls.Add(1)

	return f.updateTile(ctx, id, input)
}

func (f *fakeCatalog) DeleteTile(ctx context.Context, id int64, shopID int64, token string) error {
	f.calls.Add(1)

	return f.deleteTile(ctx, id, shopID, token)
}

func (f *fakeCatalog) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	f.calls.Add(1)

	return f.login(ctx, email, password)
}

func (f *fakeCatalog) Signup(ctx context.Context, input *service.SignupInput) error {
	f.calls.Add(1)

	return f.signup(ctx, input)
}

// fakeNormalizer passes the source through untouched unless an error is set.
type fakeNormalizer struct {
	err   error
	calls int
}

func (f *fakeNormalizer) Normalize(ctx context.Context, src *entity.ImageFile, maxWidth, maxHeight int, quality float64) (*service.NormalizedImage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return &service.NormalizedImage{
		Name: src.Name,
		MIME: src.MIME,
		Data: src.Data,
	}, nil
}

// fakeConfirmer answers the confirmation gate with a fixed decision.
type fakeConfirmer struct {
	answer bool
	asked  int
}

func (f *fakeConfirmer) Confirm(ctx context.Context, prompt string) bool {
	f.asked++

	return f.answer
}
