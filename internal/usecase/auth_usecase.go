package usecase

import (
	"context"

	"tilemart/internal/domain/entity"
)

// AuthUsecase drives the login and signup flows against the auth API and
// installs the resulting identity into the session store.
type AuthUsecase interface {
	// Login authenticates and replaces the current session.
	Login(ctx context.Context, input *LoginInput) (*entity.Identity, error)

	// SellerLogin authenticates and additionally rejects accounts whose role
	// is not SELLER, as the seller dashboard entrance does.
	SellerLogin(ctx context.Context, input *LoginInput) (*entity.Identity, error)

	// Signup registers a new account. Customer signups are logged in
	// immediately with a placeholder token, matching the storefront flow.
	Signup(ctx context.Context, input *SignupInput) (*entity.Identity, error)

	// Logout clears the session.
	Logout()
}

// --- Input DTOs ---

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput defines the data required to register an account. The shop
// fields are required only for seller signups.
type SignupInput struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	UserType      string `json:"userType" validate:"required,oneof=CUSTOMER SELLER"`
	ShopName      string `json:"shopName,omitempty" validate:"required_if=UserType SELLER"`
	ShopLocation  string `json:"shopLocation,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}
