package impl

import (
	"context"
	"log/slog"

	"tilemart/internal/domain/entity"
	domainerrors "tilemart/internal/domain/errors"
	"tilemart/internal/domain/service"
	"tilemart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// placeholderToken marks customer sessions created straight from signup,
// before a real login has been performed.
const placeholderToken = "temp-token"

// authService implements the AuthUsecase interface.
type authService struct {
	catalog  service.CatalogService
	session  usecase.SessionUsecase
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	catalog service.CatalogService,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		catalog:  catalog,
		session:  session,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login authenticates against the auth API and replaces the current session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Identity, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidation.WithDetails(err.Error())
	}

	result, err := srv.catalog.Login(ctx, input.Email, input.Password)
	if err != nil {
		var apiErr *service.APIError
		if errors.As(err, &apiErr) {
			return nil, domainerrors.ErrInvalidCredentials.WithDetails(apiErr.Body)
		}

		return nil, domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	identity := &entity.Identity{
		UserID:      result.UserID,
		Role:        result.Role,
		DisplayName: result.Name,
		AuthToken:   result.Token,
		ShopID:      result.ShopID,
	}
	srv.session.Login(identity)

	return identity, nil
}

// SellerLogin authenticates and rejects accounts whose role is not SELLER.
func (srv *authService) SellerLogin(ctx context.Context, input *usecase.LoginInput) (*entity.Identity, error) {
	identity, err := srv.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	if identity.Role != entity.RoleSeller {
		// Do not leave a customer session behind a seller entrance.
		srv.session.Logout()

		return nil, domainerrors.ErrForbidden.WithDetails("this entrance is for sellers only")
	}

	return identity, nil
}

// Signup registers a new account. Customer signups are logged in immediately
// with a placeholder token, matching the storefront flow.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Identity, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidation.WithDetails(err.Error())
	}

	err := srv.catalog.Signup(ctx, &service.SignupInput{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		UserType:      entity.Role(input.UserType),
		ShopName:      input.ShopName,
		ShopLocation:  input.ShopLocation,
		ContactNumber: input.ContactNumber,
	})
	if err != nil {
		var apiErr *service.APIError
		if errors.As(err, &apiErr) {
			return nil, domainerrors.ErrValidation.WithDetails(apiErr.Body)
		}

		return nil, domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	srv.logger.Info("account registered", "email", input.Email, "userType", input.UserType)

	if entity.Role(input.UserType) != entity.RoleCustomer {
		// Sellers go through SellerLogin to obtain a real token.
		return nil, nil
	}

	identity := &entity.Identity{
		Role:        entity.RoleCustomer,
		DisplayName: input.Name,
		AuthToken:   placeholderToken,
	}
	srv.session.Login(identity)

	return identity, nil
}

// Logout clears the session.
func (srv *authService) Logout() {
	srv.session.Logout()
}
