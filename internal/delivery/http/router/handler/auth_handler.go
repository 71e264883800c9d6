package handler

import (
	"log/slog"
	"net/http"

	"tilemart/internal/delivery/http/response"
	"tilemart/internal/domain/entity"
	"tilemart/internal/infra/stubcatalog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the auth endpoints of the catalog stub.
type AuthHandler struct {
	store  *stubcatalog.Store
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(store *stubcatalog.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		store:  store,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse mirrors the real API's login body.
type authResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	ShopID int64  `json:"shopId,omitempty"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	account, token, err := h.store.Login(input.Email, input.Password)
	if err != nil {
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "email or password incorrect")
	}

	h.logger.Info("stub login", slog.String("email", input.Email), slog.String("role", account.Role.String()))

	return c.JSON(http.StatusOK, authResponse{
		Token:  token,
		Role:   account.Role.String(),
		UserID: account.UserID,
		Name:   account.Name,
		ShopID: account.ShopID,
	})
}

type signupRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	UserType      string `json:"userType" validate:"required,oneof=CUSTOMER SELLER"`
	ShopName      string `json:"shopName"`
	ShopLocation  string `json:"shopLocation"`
	ContactNumber string `json:"contactNumber"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input signupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	account, err := h.store.Signup(
		input.Name, input.Email, input.Password,
		entity.Role(input.UserType),
		input.ShopName, input.ShopLocation, input.ContactNumber,
	)
	if err != nil {
		if errors.Is(err, stubcatalog.ErrEmailTaken) {
			return response.Conflict(c, "EMAIL_TAKEN", "email already registered")
		}

		return response.InternalServerError(c, "INTERNAL_ERROR", err.Error())
	}

	h.logger.Info("stub signup", slog.String("email", input.Email), slog.String("role", account.Role.String()))

	return response.Success(c, http.StatusCreated, map[string]any{"userId": account.UserID}, "Account created")
}
