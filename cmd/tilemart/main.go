// Command tilemart is a small storefront shell around the client library:
// it logs in when credentials are supplied, loads the durable cart,
// reconciles it against the live catalog, and reports the cart view.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tilemart/config"
	"tilemart/internal/domain/entity"
	"tilemart/internal/domain/service"
	"tilemart/internal/infra/catalog"
	"tilemart/internal/infra/imaging"
	"tilemart/internal/infra/localstore"
	logs "tilemart/internal/infra/log"
	"tilemart/internal/usecase"
	"tilemart/internal/usecase/impl"

	"go.uber.org/fx"
)

var (
	email    = flag.String("email", "", "login email (optional)")
	password = flag.String("password", "", "login password (optional)")
	addTile  = flag.Int64("add", 0, "tile id to add to the cart before reconciling")
)

type runParams struct {
	fx.In

	Logger    *slog.Logger
	Auth      usecase.AuthUsecase
	Cart      usecase.CartUsecase
	Checkout  usecase.CheckoutUsecase
	Inventory usecase.InventoryUsecase
	Session   usecase.SessionUsecase
}

func main() {
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectUsecase(),
		fx.Invoke(run),
	)
	if err := app.Err(); err != nil {
		slog.Error("storefront failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localstore.NewFileStore,
		catalog.NewClient,
		imaging.NewNormalizer,
		newStdinConfirmer,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewInventoryService,
		),
	)
}

// newStdinConfirmer is the interactive yes/no gate for destructive actions.
func newStdinConfirmer() service.Confirmer {
	reader := bufio.NewReader(os.Stdin)

	return service.ConfirmerFunc(func(ctx context.Context, prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}

		return strings.EqualFold(strings.TrimSpace(line), "y")
	})
}

func run(ctx context.Context, params runParams) error {
	if *email != "" {
		identity, err := params.Auth.Login(ctx, &usecase.LoginInput{
			Email:    *email,
			Password: *password,
		})
		if err != nil {
			return err
		}
		params.Logger.Info("logged in",
			"name", identity.DisplayName,
			"role", identity.Role.String(),
		)
	}

	// Sellers get their shop listing instead of the cart view.
	if params.Session.CurrentRole() == entity.RoleSeller {
		tiles, err := params.Inventory.ListOwn(ctx)
		if err != nil {
			return err
		}
		for _, tile := range tiles {
			params.Logger.Info("shop tile",
				"tileID", tile.ID,
				"name", tile.Name,
				"price", tile.Price,
				"stock", tile.Stock,
			)
		}

		return nil
	}

	if err := params.Cart.Load(ctx); err != nil {
		return err
	}

	if *addTile > 0 {
		if err := params.Cart.Add(ctx, *addTile); err != nil {
			return err
		}
	}

	lines, err := params.Cart.Reconcile(ctx)
	if err != nil {
		return err
	}

	for _, line := range lines {
		params.Logger.Info("cart line",
			"tileID", line.TileID,
			"name", line.Tile.Name,
			"price", line.Tile.Price,
			"quantity", line.Quantity,
		)
	}
	params.Logger.Info("cart subtotal", "subtotal", params.Checkout.Subtotal(lines))

	return nil
}
