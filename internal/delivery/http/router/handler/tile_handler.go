// Package handler contains the HTTP handlers for the catalog stub.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tilemart/internal/delivery/http/response"
	"tilemart/internal/domain/entity"
	"tilemart/internal/infra/stubcatalog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TileHandler serves the tile endpoints the storefront client consumes. The
// success bodies are the raw catalog shapes, matching the real API, so the
// client can decode them unchanged.
type TileHandler struct {
	store  *stubcatalog.Store
	logger *slog.Logger
}

// NewTileHandler is the constructor for TileHandler, injected by Fx.
func NewTileHandler(store *stubcatalog.Store, logger *slog.Logger) *TileHandler {
	return &TileHandler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /api/tiles.
func (h *TileHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.List())
}

// Get handles GET /api/tiles/:id.
func (h *TileHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "tile id must be numeric")
	}

	tile, err := h.store.Get(id)
	if err != nil {
		return response.NotFound(c, "TILE_NOT_FOUND", "tile not found")
	}

	return c.JSON(http.StatusOK, tile)
}

// Upload handles POST /api/tiles/seller-upload (multipart).
func (h *TileHandler) Upload(c echo.Context) error {
	shopID, err := strconv.ParseInt(c.FormValue("shopId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_SHOP", "shopId must be numeric")
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "price must be numeric")
	}
	stock, _ := strconv.Atoi(c.FormValue("stock"))

	file, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "MISSING_IMAGE", "image part is required")
	}

	tile := entity.Tile{
		Name:        c.FormValue("name"),
		Price:       price,
		Description: c.FormValue("description"),
		Size:        c.FormValue("size"),
		Stock:       stock,
		ImagePath:   "/uploads/tiles/" + file.Filename,
		Category:    &entity.Category{Name: c.FormValue("category")},
	}

	created := h.store.Create(tile, shopID)

	h.logger.Info("stub tile created",
		slog.Int64("tileID", created.ID),
		slog.Int64("shopID", shopID),
		slog.String("image", file.Filename),
	)

	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/tiles/:id with query-encoded fields.
func (h *TileHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "tile id must be numeric")
	}
	shopID, err := strconv.ParseInt(c.QueryParam("shopId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_SHOP", "shopId must be numeric")
	}

	updated, err := h.store.Update(id, shopID, func(tile *entity.Tile) {
		if v := c.QueryParam("name"); v != "" {
			tile.Name = v
		}
		if v := c.QueryParam("price"); v != "" {
			if price, perr := strconv.ParseFloat(v, 64); perr == nil {
				tile.Price = price
			}
		}
		if v := c.QueryParam("description"); v != "" {
			tile.Description = v
		}
		if v := c.QueryParam("size"); v != "" {
			tile.Size = v
		}
		if v := c.QueryParam("stock"); v != "" {
			if stock, serr := strconv.Atoi(v); serr == nil {
				tile.Stock = stock
			}
		}
		if v := c.QueryParam("category"); v != "" {
			tile.Category = &entity.Category{Name: v}
		}
	})
	if err != nil {
		return tileStoreError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/tiles/:id.
func (h *TileHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "tile id must be numeric")
	}
	shopID, err := strconv.ParseInt(c.QueryParam("shopId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_SHOP", "shopId must be numeric")
	}

	if err := h.store.Delete(id, shopID); err != nil {
		return tileStoreError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Tile deleted")
}

func tileStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, stubcatalog.ErrNotFound):
		return response.NotFound(c, "TILE_NOT_FOUND", "tile not found")
	case errors.Is(err, stubcatalog.ErrWrongShop):
		return response.Forbidden(c, "FORBIDDEN", "tile belongs to another shop")
	default:
		return response.InternalServerError(c, "INTERNAL_ERROR", err.Error())
	}
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
