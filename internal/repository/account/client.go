// internal/repository/account/client.go
package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"rxautos-service/internal/domain/account"
	xerrors "rxautos-service/internal/pkg/errors"
	"rxautos-service/internal/pkg/retry"
)

// Config for the hosted account/data service adapter. BaseURL and AnonKey are
// the two mandatory environment-provided values.
type Config struct {
	BaseURL      string
	AnonKey      string
	ProfileTable string
	Timeout      time.Duration
	Retry        retry.Policy
}

// Client talks to the hosted account/data service: auth operations under
// /auth/v1 and the user-profile row under /rest/v1. Auth operations are
// retried under the fixed budget; remote rejections (a 4xx with a message)
// are surfaced immediately as kind-tagged errors.
type Client struct {
	cfg    Config
	httpc  *http.Client
	logger *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.ProfileTable == "" {
		cfg.ProfileTable = "user_profiles"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Retry == (retry.Policy{}) {
		cfg.Retry = retry.Default
	}
	return &Client{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// ========== Auth operations (retried) ==========

// SignUp registers a new account with optional metadata (full name).
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*account.User, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     metadata,
	}
	var user account.User
	err := retry.DoErr(ctx, c.cfg.Retry, func() error {
		return c.request(ctx, http.MethodPost, "/auth/v1/signup", "", nil, body, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*account.Session, error) {
	body := map[string]string{"email": email, "password": password}
	query := url.Values{"grant_type": {"password"}}
	var session account.Session
	err := retry.DoErr(ctx, c.cfg.Retry, func() error {
		return c.request(ctx, http.MethodPost, "/auth/v1/token", "", query, body, &session)
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the given session token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return retry.DoErr(ctx, c.cfg.Retry, func() error {
		return c.request(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil, nil)
	})
}

// ResetPasswordForEmail asks the service to mail a recovery link.
func (c *Client) ResetPasswordForEmail(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return retry.DoErr(ctx, c.cfg.Retry, func() error {
		return c.request(ctx, http.MethodPost, "/auth/v1/recover", "", nil, body, nil)
	})
}

// GetUser resolves the current user behind a session token.
func (c *Client) GetUser(ctx context.Context, token string) (*account.User, error) {
	var user account.User
	err := retry.DoErr(ctx, c.cfg.Retry, func() error {
		return c.request(ctx, http.MethodGet, "/auth/v1/user", token, nil, nil, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ========== Profile rows ==========

func (c *Client) rowsPath() string {
	return "/rest/v1/" + c.cfg.ProfileTable
}

// GetProfile fetches the profile row keyed by the auth user id. A missing row
// is reported as xerrors.ErrNotFound, which the profile editor treats as an
// empty form.
func (c *Client) GetProfile(ctx context.Context, token, uid string) (*account.Profile, error) {
	query := url.Values{
		"uid":    {"eq." + uid},
		"select": {"*"},
	}
	var rows []account.Profile
	if err := c.request(ctx, http.MethodGet, c.rowsPath(), token, query, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, xerrors.ErrNotFound
	}
	return &rows[0], nil
}

// CountByEmail counts profile rows registered under an email address.
func (c *Client) CountByEmail(ctx context.Context, email string) (int, error) {
	query := url.Values{
		"email":  {"eq." + email},
		"select": {"uid"},
	}
	var rows []map[string]interface{}
	if err := c.request(ctx, http.MethodGet, c.rowsPath(), "", query, nil, &rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// InsertProfile creates the profile row.
func (c *Client) InsertProfile(ctx context.Context, token string, p *account.Profile) error {
	return c.request(ctx, http.MethodPost, c.rowsPath(), token, nil, p, nil)
}

// UpdateProfile updates the profile row keyed by its uid.
func (c *Client) UpdateProfile(ctx context.Context, token string, p *account.Profile) error {
	query := url.Values{"uid": {"eq." + p.UID}}
	return c.request(ctx, http.MethodPatch, c.rowsPath(), token, query, p, nil)
}

// ========== Plumbing ==========

// request performs one HTTP exchange. Transport failures come back as plain
// kind-tagged errors so the retry budget applies; remote rejections are
// wrapped permanent so they surface immediately.
func (c *Client) request(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return backoff.Permanent(xerrors.Wrap(err, "encode request"))
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, payload)
	if err != nil {
		return backoff.Permanent(err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("apikey", c.cfg.AnonKey)
	if token == "" {
		token = c.cfg.AnonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("account service unreachable",
			zap.String("path", path),
			zap.Error(err),
		)
		return classify(err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return classify(err.Error())
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		remoteErr := classify(remoteMessage(data, resp.StatusCode))
		c.logger.Warn("account service rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", remoteErr.Message),
		)
		return backoff.Permanent(remoteErr)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return backoff.Permanent(xerrors.Wrap(err, "decode response"))
		}
	}
	return nil
}

// remoteMessage digs the human-readable message out of an error payload. The
// service is inconsistent about the field name.
func remoteMessage(data []byte, status int) string {
	var payload struct {
		Msg       string `json:"msg"`
		Message   string `json:"message"`
		ErrorDesc string `json:"error_description"`
		ErrorStr  string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		for _, m := range []string{payload.Msg, payload.Message, payload.ErrorDesc, payload.ErrorStr} {
			if m != "" {
				return m
			}
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}
