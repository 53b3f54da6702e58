package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/quietpage/quietpage/internal/config"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/store"
	"github.com/quietpage/quietpage/internal/utils"
	"github.com/quietpage/quietpage/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and initialises the shared HMAC
// hasher pool used for transport integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

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
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) {
			return models.User{}, fmt.Errorf("%w: %w", store.ErrLoginAlreadyExists, err)
		}
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return registered, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// UpdatePassword implements [ServerAdapter]. It POSTs the credential change
// to POST /api/user/password. The server identifies the account from the
// bearer token; userID is unused on the wire.
func (h *httpServerAdapter) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	req := models.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/password")
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}

	return mapHTTPError(resp)
}

// SaveDraft implements [ServerAdapter]. It wraps the draft in an upload
// payload with a transport integrity hash and POSTs it to POST /api/drafts.
func (h *httpServerAdapter) SaveDraft(ctx context.Context, draft models.EncryptedDraft) error {
	req := models.UploadRequest{Drafts: []models.EncryptedDraft{draft}}
	req.Hash = computeTransportHash(req.Drafts)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/drafts")
	if err != nil {
		return fmt.Errorf("save draft request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetAllDrafts implements [ServerAdapter]. It GETs /api/drafts and decodes
// the full-corpus listing, soft-deleted drafts included.
func (h *httpServerAdapter) GetAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error) {
	resp, err := h.authedRequest(ctx).Get("/api/drafts")
	if err != nil {
		return nil, fmt.Errorf("get all drafts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var dr models.DownloadResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return nil, fmt.Errorf("decode download response: %w", err)
	}

	return dr.Drafts, nil
}

// UpdateDraftCiphers implements [ServerAdapter]. It wraps the update in a
// payload with a transport integrity hash and PUTs it to PUT /api/drafts.
// Returns store.ErrDraftNotFound (wrapped) on HTTP 404.
func (h *httpServerAdapter) UpdateDraftCiphers(ctx context.Context, userID string, update models.CipherUpdate) error {
	req := models.CipherUpdateRequest{Updates: []models.CipherUpdate{update}}
	req.Hash = computeTransportHash(req.Updates)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/drafts")
	if err != nil {
		return fmt.Errorf("update draft ciphers request: %w", err)
	}

	return mapDraftError(mapHTTPError(resp))
}

// DeleteDraft implements [ServerAdapter]. It sends a soft-delete request to
// DELETE /api/drafts. Returns store.ErrDraftNotFound (wrapped) on HTTP 404.
func (h *httpServerAdapter) DeleteDraft(ctx context.Context, userID, draftID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteRequest{DraftIDs: []string{draftID}}).
		Delete("/api/drafts")
	if err != nil {
		return fmt.Errorf("delete draft request: %w", err)
	}

	return mapDraftError(mapHTTPError(resp))
}

// PurgeDraft implements [ServerAdapter]. It sends a permanent-removal request
// to POST /api/drafts/purge. Returns store.ErrDraftNotFound (wrapped) on
// HTTP 404.
func (h *httpServerAdapter) PurgeDraft(ctx context.Context, userID, draftID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteRequest{DraftIDs: []string{draftID}}).
		Post("/api/drafts/purge")
	if err != nil {
		return fmt.Errorf("purge draft request: %w", err)
	}

	return mapDraftError(mapHTTPError(resp))
}

// GetSalt implements [ServerAdapter]. It GETs /api/user/salt. Returns
// store.ErrSaltNotFound (wrapped) on HTTP 404 — the first-login signal.
func (h *httpServerAdapter) GetSalt(ctx context.Context, userID string) (models.SaltRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user/salt")
	if err != nil {
		return models.SaltRecord{}, fmt.Errorf("get salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.SaltRecord{}, fmt.Errorf("%w: %w", store.ErrSaltNotFound, err)
		}
		return models.SaltRecord{}, err
	}

	var record models.SaltRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.SaltRecord{}, fmt.Errorf("decode salt response: %w", err)
	}

	return record, nil
}

// InsertSalt implements [ServerAdapter]. It POSTs the salt record to
// POST /api/user/salt. Returns store.ErrSaltAlreadyExists (wrapped) on
// HTTP 409 so a lost first-login race is distinguishable.
func (h *httpServerAdapter) InsertSalt(ctx context.Context, record models.SaltRecord) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/api/user/salt")
	if err != nil {
		return fmt.Errorf("insert salt request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) {
			return fmt.Errorf("%w: %w", store.ErrSaltAlreadyExists, err)
		}
		return err
	}

	return nil
}

// ReplaceSalt implements [ServerAdapter]. It PUTs the salt record to
// PUT /api/user/salt. Returns store.ErrSaltNotFound (wrapped) on HTTP 404.
func (h *httpServerAdapter) ReplaceSalt(ctx context.Context, record models.SaltRecord) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put("/api/user/salt")
	if err != nil {
		return fmt.Errorf("replace salt request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %w", store.ErrSaltNotFound, err)
		}
		return err
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// mapDraftError translates the generic not-found sentinel into the draft
// store sentinel the crypto core matches on.
func mapDraftError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %w", store.ErrDraftNotFound, err)
	}
	return err
}

func computeTransportHash(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}
