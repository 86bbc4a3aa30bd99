package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	authPath    = "/web/session/authenticate"
	callKWPath  = "/web/dataset/call_kw"
	destroyPath = "/web/session/destroy"

	// maxResponseSize caps how much of an upstream body we will read.
	maxResponseSize = 16 * 1024 * 1024
)

// Config holds the connection settings for the ERP endpoint.
type Config struct {
	BaseURL    string
	Database   string
	Timeout    time.Duration
	MaxRetries uint64
	Timezone   string
	Language   string
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("odoo: base URL is required")
	}
	if c.Database == "" {
		return fmt.Errorf("odoo: database is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Timezone == "" {
		c.Timezone = "America/Mexico_City"
	}
	if c.Language == "" {
		c.Language = "es_MX"
	}
	return nil
}

// Client speaks the ERP's JSON-RPC dialect over HTTP. It keeps a manual
// cookie jar because the ERP issues several session cookies across calls
// and expects all of them back; replacing the jar on each response would
// drop the earlier ones.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	log        *zap.Logger

	mu      sync.Mutex
	cookies []string
}

// NewClient validates cfg and returns a ready client.
func NewClient(cfg *Config, log *zap.Logger) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}, nil
}

// ResetCookies clears the accumulated session cookies. Called before a
// fresh authenticate so a stale session cannot leak into the new one.
func (c *Client) ResetCookies() {
	c.mu.Lock()
	c.cookies = nil
	c.mu.Unlock()
}

func (c *Client) cookieHeader() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.cookies, "; ")
}

func (c *Client) appendCookies(setCookies []string) {
	if len(setCookies) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sc := range setCookies {
		if i := strings.IndexByte(sc, ';'); i >= 0 {
			sc = sc[:i]
		}
		sc = strings.TrimSpace(sc)
		if sc != "" {
			c.cookies = append(c.cookies, sc)
		}
	}
}

// call posts a JSON-RPC envelope to path and returns the raw result.
// Transport failures are retried with exponential backoff up to
// MaxRetries; upstream application errors are returned immediately.
func (c *Client) call(ctx context.Context, path string, params any) (json.RawMessage, error) {
	payload, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		Method:  "call",
		Params:  params,
		ID:      uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("odoo: marshal request: %w", err)
	}

	var result json.RawMessage
	operation := func() error {
		res, opErr := c.doRequest(ctx, path, payload)
		if opErr != nil {
			return opErr
		}
		result = res
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.MaxRetries), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) doRequest(ctx context.Context, path string, payload []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.BaseURL, "/")+path, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("odoo: build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie := c.cookieHeader(); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("odoo request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.appendCookies(resp.Header.Values("Set-Cookie"))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnreachable, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", ErrUnreachable, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, backoff.Permanent(fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode))
	}

	var envelope rpcResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	if envelope.Error != nil {
		upErr := &UpstreamError{
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
			Data:    string(envelope.Error.Data),
		}
		c.log.Warn("odoo returned an error",
			zap.String("path", path),
			zap.Int64("code", upErr.Code),
			zap.String("message", upErr.Message))
		return nil, backoff.Permanent(upErr)
	}
	return envelope.Result, nil
}

// Authenticate opens a session against the configured database. The ERP
// signals rejected credentials with uid: false inside an otherwise
// successful envelope.
func (c *Client) Authenticate(ctx context.Context, login, password string) (*AuthResult, error) {
	result, err := c.call(ctx, authPath, authParams{
		DB:       c.cfg.Database,
		Login:    login,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var auth AuthResult
	if err := json.Unmarshal(result, &auth); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if auth.UID == 0 {
		return nil, ErrAuthenticationFailed
	}
	return &auth, nil
}

// CallKW invokes a model method through /web/dataset/call_kw on behalf of
// uid, injecting the dashboard's timezone and language into the context.
func (c *Client) CallKW(ctx context.Context, uid int64, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error) {
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	kwargs["context"] = map[string]any{
		"uid":  uid,
		"tz":   c.cfg.Timezone,
		"lang": c.cfg.Language,
	}
	return c.call(ctx, callKWPath, callKWParams{
		Model:  model,
		Method: method,
		Args:   args,
		Kwargs: kwargs,
	})
}

// DestroySession asks the ERP to drop the current session. Errors are
// returned but a caller tearing down state may choose to ignore them.
func (c *Client) DestroySession(ctx context.Context) error {
	_, err := c.call(ctx, destroyPath, map[string]any{})
	return err
}
