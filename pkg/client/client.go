// Package client sends fragments to an agent stream sink over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/papercomputeco/streamcast/pkg/config"
	"github.com/papercomputeco/streamcast/pkg/wire"
)

// Client is a synchronous sink client. A fresh request is made for every call.
type Client struct {
	baseURL    string
	apiKey     config.SecretString
	logger     *zap.Logger
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the sink described by cfg.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.BaseURL(),
		apiKey:  cfg.APIKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ErrInvalidUTF8 is returned by Send for data that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("fragment is not valid UTF-8")

// StatusError is returned when the sink answers with a non-success status,
// or with a 2xx envelope whose success flag is false.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sink returned %d: %s", e.StatusCode, e.Body)
}

// Send posts {"data": data} to the sink's data endpoint. JSON strings cannot
// carry invalid UTF-8, so such data is refused rather than sent altered.
func (c *Client) Send(ctx context.Context, data string) (wire.Result, error) {
	if !utf8.ValidString(data) {
		return nil, ErrInvalidUTF8
	}
	return c.post(ctx, wire.DataPath, wire.DataRequest{Data: data})
}

// StartStream opens a broadcast room.
func (c *Client) StartStream(ctx context.Context, req wire.StartRequest) (wire.StartResult, error) {
	result, err := c.post(ctx, wire.StartPath, req)
	if err != nil {
		return wire.StartResult{}, err
	}

	var started wire.StartResult
	if raw, ok := result["data"]; ok {
		b, err := json.Marshal(raw)
		if err != nil {
			return wire.StartResult{}, fmt.Errorf("re-encode start data: %w", err)
		}
		if err := json.Unmarshal(b, &started); err != nil {
			return wire.StartResult{}, fmt.Errorf("decode start data: %w", err)
		}
	}
	return started, nil
}

// EndStream closes the broadcast room opened by StartStream.
func (c *Client) EndStream(ctx context.Context) error {
	_, err := c.post(ctx, wire.EndPath, struct{}{})
	return err
}

func (c *Client) post(ctx context.Context, path string, payload any) (wire.Result, error) {
	body, err := encode(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(wire.APIKeyHeader, c.apiKey.Reveal())

	c.logger.Debug("posting to sink",
		zap.String("url", url),
		zap.Int("body_size", len(body)),
	)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return wire.Result{}, nil
	}

	var decoded any
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	// Bodies that are not objects are kept under "value" rather than rejected.
	result, ok := decoded.(map[string]any)
	if !ok {
		result = map[string]any{"value": decoded}
	}

	if !wire.Result(result).Success() {
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: wire.Result(result).ErrorText()}
	}

	return result, nil
}

// encode marshals v without HTML escaping so fragment bytes survive
// unchanged, and without the trailing newline json.Encoder adds.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
