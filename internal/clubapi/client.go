package clubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/clubshop/internal/auth"
)

// ErrInvalidResponseShape is returned when a response body does not match
// the shape the client expects.
var ErrInvalidResponseShape = errors.New("invalid response shape")

const maxBodySize = 1 << 20

// StatusError is a non-2xx response from the club API.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Payload    json.RawMessage
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	if len(e.Payload) > 0 {
		msg += ": " + strings.TrimSpace(string(e.Payload))
	}

	return msg
}

// Client talks to the club API that fronts the catalog, payment processor
// and transaction history.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   auth.TokenSource
	validate *validator.Validate
}

func New(baseURL string, timeout time.Duration, tokens auth.TokenSource) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("getting identity token: %w", err)
	}

	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("club api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("club api request failed",
			"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Payload:    payload,
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrInvalidResponseShape, method, path, err)
	}

	if err := c.validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrInvalidResponseShape, method, path, err)
	}

	return nil
}
