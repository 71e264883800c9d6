// Package service defines the interfaces for external collaborators the
// application layer depends on, implemented under internal/infra.
package service

import (
	"context"
	"errors"

	"tilemart/internal/domain/entity"
)

// ErrTileNotFound is returned by GetTile when the catalog no longer has the
// requested tile. Callers use it to tell a deleted tile apart from an outage.
var ErrTileNotFound = errors.New("tile not found")

// APIError carries a non-success HTTP response from the catalog API.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return "catalog api error: " + e.Body
}

// CatalogService is the boundary to the remote catalog/auth API. All tile and
// account data is authoritative on the server side; this client only caches.
type CatalogService interface {
	// ListTiles fetches the full catalog.
	ListTiles(ctx context.Context) ([]entity.Tile, error)

	// GetTile fetches a single tile's current record, or ErrTileNotFound.
	GetTile(ctx context.Context, id int64) (*entity.Tile, error)

	// UploadTile creates a tile via the multipart seller-upload endpoint.
	UploadTile(ctx context.Context, input *TileUpload) (*entity.Tile, error)

	// UpdateTile sends the editable fields query-encoded, scoped by shop.
	UpdateTile(ctx context.Context, id int64, input *TileUpdate) (*entity.Tile, error)

	// DeleteTile removes a tile, scoped by shop.
	DeleteTile(ctx context.Context, id int64, shopID int64, token string) error

	// Login exchanges credentials for an identity descriptor.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Signup registers a new customer or seller account.
	Signup(ctx context.Context, input *SignupInput) error
}

// TileUpload is the multipart payload for the seller-upload endpoint.
// Numeric fields are coerced to their wire representation by the client.
type TileUpload struct {
	Name        string
	Price       float64
	Description string
	Size        string
	Stock       int
	Category    string
	ShopID      int64
	Image       *NormalizedImage
	Token       string // Bearer token for the Authorization header.
}

// TileUpdate is the query-encoded payload for the tile update endpoint.
type TileUpdate struct {
	Name        string
	Price       float64
	Description string
	Size        string
	Stock       int
	Category    string
	ShopID      int64
	Token       string
}

// LoginResult mirrors the auth API's login response body.
type LoginResult struct {
	UserID int64       `json:"userId"`
	Name   string      `json:"name"`
	Role   entity.Role `json:"role"`
	Token  string      `json:"token"`
	ShopID int64       `json:"shopId"`
}

// SignupInput mirrors the auth API's signup request body. The shop fields are
// only meaningful when UserType is SELLER.
type SignupInput struct {
	Name          string      `json:"name" validate:"required"`
	Email         string      `json:"email" validate:"required,email"`
	Password      string      `json:"password" validate:"required,min=6"`
	UserType      entity.Role `json:"userType" validate:"required"`
	ShopName      string      `json:"shopName,omitempty"`
	ShopLocation  string      `json:"shopLocation,omitempty"`
	ContactNumber string      `json:"contactNumber,omitempty"`
}
