// Package catalog implements the CatalogService boundary against the remote
// HTTP/JSON catalog/auth API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tilemart/config"
	"tilemart/internal/domain/entity"
	"tilemart/internal/domain/service"
	"tilemart/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// client implements service.CatalogService over net/http.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the catalog API client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.CatalogService {
	timeout := cfg.Catalog.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL: strings.TrimRight(cfg.Catalog.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ListTiles fetches the full catalog.
func (c *client) ListTiles(ctx context.Context) ([]entity.Tile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/tiles", nil)
	if err != nil {
		return nil, err
	}

	var tiles []entity.Tile
	if err := c.doJSON(req, &tiles); err != nil {
		return nil, err
	}

	return tiles, nil
}

// GetTile fetches a single tile's current record, or ErrTileNotFound.
func (c *client) GetTile(ctx context.Context, id int64) (*entity.Tile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/tiles/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	var tile entity.Tile
	if err := c.doJSON(req, &tile); err != nil {
		var apiErr *service.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, errors.Wrapf(service.ErrTileNotFound, "tile %d", id)
		}

		return nil, err
	}

	return &tile, nil
}

// UploadTile creates a tile via the multipart seller-upload endpoint.
// Numeric fields are coerced to their string wire representation explicitly.
func (c *client) UploadTile(ctx context.Context, input *service.TileUpload) (*entity.Tile, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":        input.Name,
		"price":       strconv.FormatFloat(input.Price, 'f', -1, 64),
		"description": input.Description,
		"size":        input.Size,
		"stock":       strconv.Itoa(input.Stock),
		"category":    input.Category,
		"shopId":      strconv.FormatInt(input.ShopID, 10),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, errors.Wrapf(err, "failed to write field %s", name)
		}
	}

	part, err := writer.CreateFormFile("image", input.Image.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create image part")
	}
	if _, err := part.Write(input.Image.Data); err != nil {
		return nil, errors.Wrap(err, "failed to write image part")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/tiles/seller-upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+input.Token)

	c.logger.Debug("uploading tile",
		slog.String("name", input.Name),
		slog.Int64("shopID", input.ShopID),
		slog.String("imageSize", util.FormatBytes(int64(len(input.Image.Data)))),
	)

	var created entity.Tile
	if err := c.doJSON(req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateTile sends the editable fields query-encoded, scoped by shop.
func (c *client) UpdateTile(ctx context.Context, id int64, input *service.TileUpdate) (*entity.Tile, error) {
	params := url.Values{}
	params.Set("shopId", strconv.FormatInt(input.ShopID, 10))
	params.Set("name", input.Name)
	params.Set("price", strconv.FormatFloat(input.Price, 'f', -1, 64))
	params.Set("description", input.Description)
	params.Set("size", input.Size)
	params.Set("stock", strconv.Itoa(input.Stock))
	params.Set("category", input.Category)

	path := "/api/tiles/" + strconv.FormatInt(id, 10) + "?" + params.Encode()
	req, err := c.newRequest(ctx, http.MethodPut, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+input.Token)

	var updated entity.Tile
	if err := c.doJSON(req, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteTile removes a tile, scoped by shop.
func (c *client) DeleteTile(ctx context.Context, id int64, shopID int64, token string) error {
	path := "/api/tiles/" + strconv.FormatInt(id, 10) + "?shopId=" + strconv.FormatInt(shopID, 10)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.doJSON(req, nil)
}

// Login exchanges credentials for an identity descriptor.
func (c *client) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result service.LoginResult
	if err := c.doJSON(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Signup registers a new customer or seller account.
func (c *client) Signup(ctx context.Context, input *service.SignupInput) error {
	payload, err := json.Marshal(input)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/signup", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req, nil)
}

func (c *client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Attach a request id so API-side logs can be correlated with ours.
	req.Header.Set("X-Request-Id", uuid.NewString())

	return req, nil
}

// doJSON executes the request, maps non-success statuses to APIError, and
// decodes the response body into out when out is non-nil.
func (c *client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return &service.APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode catalog response")
	}

	return nil
}
