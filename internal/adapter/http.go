package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mhenke/logbuch/internal/config"
	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/utils"
	"github.com/mhenke/logbuch/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResponse).
		Post("/api/auth/register")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return loginResponse, nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResponse).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return loginResponse, nil
}

// Categories implements [ServerAdapter]. It GETs /api/categories and decodes
// the response into a slice of [models.Category]. Requires a valid bearer
// token.
func (h *httpServerAdapter) Categories(ctx context.Context) ([]models.Category, error) {
	resp, err := h.authedRequest(ctx).Get("/api/categories")
	if err != nil {
		return nil, fmt.Errorf("categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var categories []models.Category
	if err = json.Unmarshal(resp.Body(), &categories); err != nil {
		return nil, fmt.Errorf("decode categories response: %w", err)
	}

	return categories, nil
}

// CreateCategory implements [ServerAdapter]. It POSTs the category to
// POST /api/categories and returns the created record with the
// server-assigned ID. Requires a valid bearer token.
func (h *httpServerAdapter) CreateCategory(ctx context.Context, cat models.Category) (models.Category, error) {
	var created models.Category

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(cat).
		SetResult(&created).
		Post("/api/categories")
	if err != nil {
		return models.Category{}, fmt.Errorf("create category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Category{}, err
	}

	return created, nil
}

// Entries implements [ServerAdapter]. It GETs /api/entries, optionally
// filtered by category reference key, and decodes the response into a slice
// of [models.Entry]. Requires a valid bearer token.
func (h *httpServerAdapter) Entries(ctx context.Context, categoryRef string) ([]models.Entry, error) {
	req := h.authedRequest(ctx)
	if categoryRef != "" {
		req.SetQueryParam("category", categoryRef)
	}

	resp, err := req.Get("/api/entries")
	if err != nil {
		return nil, fmt.Errorf("entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.Entry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode entries response: %w", err)
	}

	return entries, nil
}

// CreateEntry implements [ServerAdapter]. It POSTs the entry to
// POST /api/entries and returns the created record with the server-assigned
// ID. Requires a valid bearer token.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	var created models.Entry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&created).
		Post("/api/entries")
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return created, nil
}

// DeleteEntry implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/entries/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteEntry(ctx context.Context, entryID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/entries/" + strconv.FormatInt(entryID, 10))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

// Reset implements [ServerAdapter]. It POSTs to /api/reset, wiping all
// entries and categories of the authenticated user. Requires a valid bearer
// token.
func (h *httpServerAdapter) Reset(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/reset")
	if err != nil {
		return fmt.Errorf("reset request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
