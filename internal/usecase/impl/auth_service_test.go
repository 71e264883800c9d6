package impl

import (
	"context"
	"testing"

	"tilemart/internal/domain/entity"
	domainerrors "tilemart/internal/domain/errors"
	"tilemart/internal/domain/service"
	"tilemart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		login: func(ctx context.Context, email, password string) (*service.LoginResult, error) {
			assert.Equal(t, "customer@tilemart.dev", email)
			assert.Equal(t, "customer123", password)

			return &service.LoginResult{
				UserID: 11,
				Name:   "Asha",
				Role:   entity.RoleCustomer,
				Token:  "token-11",
			}, nil
		},
	}
	session := NewSessionService(discardLogger())
	auth := NewAuthService(catalog, session, discardLogger())

	identity, err := auth.Login(context.Background(), &usecase.LoginInput{
		Email:    "customer@tilemart.dev",
		Password: "customer123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), identity.UserID)
	assert.Equal(t, "token-11", identity.AuthToken)

	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, identity, current)
}

func TestAuthService_LoginValidatesInput(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{}
	auth := NewAuthService(catalog, NewSessionService(discardLogger()), discardLogger())

	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{"missing email", &usecase.LoginInput{Password: "secret"}},
		{"malformed email", &usecase.LoginInput{Email: "not-an-email", Password: "secret"}},
		{"missing password", &usecase.LoginInput{Email: "a@b.dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(context.Background(), tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())

			// Validation rejects before anything leaves the process.
			assert.Zero(t, catalog.calls.Load())
		})
	}
}

func TestAuthService_LoginRejectedCredentials(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		login: func(ctx context.Context, email, password string) (*service.LoginResult, error) {
			return nil, &service.APIError{StatusCode: 401, Body: "bad password"}
		},
	}
	session := NewSessionService(discardLogger())
	auth := NewAuthService(catalog, session, discardLogger())

	_, err := auth.Login(context.Background(), &usecase.LoginInput{
		Email:    "customer@tilemart.dev",
		Password: "wrong",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())

	_, ok := session.Current()
	assert.False(t, ok)
}

func TestAuthService_SellerLoginRejectsCustomers(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		login: func(ctx context.Context, email, password string) (*service.LoginResult, error) {
			return &service.LoginResult{UserID: 11, Role: entity.RoleCustomer, Token: "t"}, nil
		},
	}
	session := NewSessionService(discardLogger())
	auth := NewAuthService(catalog, session, discardLogger())

	_, err := auth.SellerLogin(context.Background(), &usecase.LoginInput{
		Email:    "customer@tilemart.dev",
		Password: "customer123",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())

	// The customer session installed by the inner login is rolled back.
	_, ok := session.Current()
	assert.False(t, ok)
}

func TestAuthService_SellerLogin(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		login: func(ctx context.Context, email, password string) (*service.LoginResult, error) {
			return &service.LoginResult{
				UserID: 9,
				Name:   "Ravi",
				Role:   entity.RoleSeller,
				Token:  "token-9",
				ShopID: 2,
			}, nil
		},
	}
	session := NewSessionService(discardLogger())
	auth := NewAuthService(catalog, session, discardLogger())

	identity, err := auth.SellerLogin(context.Background(), &usecase.LoginInput{
		Email:    "seller@tilemart.dev",
		Password: "seller123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, identity.Role)
	assert.Equal(t, int64(2), identity.ShopID)
	assert.Equal(t, entity.RoleSeller, session.CurrentRole())
}

func TestAuthService_SignupCustomerAutoLogin(t *testing.T) {
	t.Parallel()

	var captured *service.SignupInput
	catalog := &fakeCatalog{
		signup: func(ctx context.Context, input *service.SignupInput) error {
			captured = input

			return nil
		},
	}
	session := NewSessionService(discardLogger())
	auth := NewAuthService(catalog, session, discardLogger())

	identity, err := auth.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Asha",
		Email:    "asha@tilemart.dev",
		Password: "secret1",
		UserType: "CUSTOMER",
	})
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, entity.RoleCustomer, identity.Role)
	assert.Equal(t, placeholderToken, identity.AuthToken)

	require.NotNil(t, captured)
	assert.Equal(t, entity.RoleCustomer, captured.UserType)

	// Customers land signed in straight from the signup form.
	assert.Equal(t, entity.RoleCustomer, session.CurrentRole())
}

func TestAuthService_SignupSellerNeedsExplicitLogin(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		signup: func(ctx context.Context, input *service.SignupInput) error {
			assert.Equal(t, "Varsha Ceramics", input.ShopName)

			return nil
		},
	}
	session := NewSessionService(discardLogger())
	auth := NewAuthService(catalog, session, discardLogger())

	identity, err := auth.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Ravi",
		Email:    "ravi@tilemart.dev",
		Password: "secret1",
		UserType: "SELLER",
		ShopName: "Varsha Ceramics",
	})
	require.NoError(t, err)
	assert.Nil(t, identity)

	_, ok := session.Current()
	assert.False(t, ok)
}

func TestAuthService_SignupSellerRequiresShopName(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{}
	auth := NewAuthService(catalog, NewSessionService(discardLogger()), discardLogger())

	_, err := auth.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Ravi",
		Email:    "ravi@tilemart.dev",
		Password: "secret1",
		UserType: "SELLER",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
	assert.Zero(t, catalog.calls.Load())
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()

	session := customerSession()
	auth := NewAuthService(&fakeCatalog{}, session, discardLogger())

	auth.Logout()
	assert.Equal(t, entity.RoleNone, session.CurrentRole())
}
