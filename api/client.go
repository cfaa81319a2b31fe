package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/oliveplate/oliveplate/config"
	"github.com/oliveplate/oliveplate/utils"
)

// HTTPClient allows injecting mock HTTP clients for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer credential attached to authenticated calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the typed remote resource client. It holds no entity
// state; callers own caching and reconciliation.
type Client struct {
	baseURL string
	http    HTTPClient
	tokens  TokenSource
	limiter *rate.Limiter
}

// New builds a client from configuration. tokens may be nil for a
// client that only performs anonymous reads.
func New(cfg config.AppConfig, tokens TokenSource) *Client {
	r := rate.Every(time.Minute / time.Duration(maxInt(cfg.RateLimitPerMinute, 1)))
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second},
		tokens:  tokens,
		limiter: rate.NewLimiter(r, maxInt(cfg.RateLimitPerMinute/2, 1)),
	}
}

// SetHTTPClient replaces the underlying transport. Tests use this to
// inject failures without a listening server.
func (c *Client) SetHTTPClient(h HTTPClient) {
	c.http = h
}

// do performs one API request and decodes a JSON body into out (when
// out is non-nil). Transport failures come back wrapped but not as
// *Error; any HTTP response with status >= 400 becomes an *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	reqID := uuid.NewString()
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("api request failed id=%s %s %s err=%v", reqID, method, path, err)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if utils.Sugar != nil {
		utils.Sugar.Debugf("api request id=%s %s %s status=%d elapsed=%s", reqID, method, path, resp.StatusCode, time.Since(start))
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := encodeJSON(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, "application/json", out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, out any) error {
	body, err := encodeJSON(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, body, "application/json", out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", out)
}

func encodeJSON(payload any) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return bytes.NewReader(b), nil
}

// doMultipart sends fields (and repeated values under one name) plus
// an optional image file as multipart/form-data. Recipe and profile
// writes use this so an image can ride along with the entity fields.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, repeated map[string][]string, imagePath string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, val := range fields {
		if err := w.WriteField(key, val); err != nil {
			return fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	for key, vals := range repeated {
		for _, val := range vals {
			if err := w.WriteField(key, val); err != nil {
				return fmt.Errorf("write form field %s: %w", key, err)
			}
		}
	}
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return fmt.Errorf("open image %s: %w", imagePath, err)
		}
		defer f.Close()
		part, err := w.CreateFormFile("image", filepath.Base(imagePath))
		if err != nil {
			return fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return fmt.Errorf("copy image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	return c.do(ctx, method, path, nil, &buf, w.FormDataContentType(), out)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
