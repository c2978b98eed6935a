package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"restobject/internal/domain"
)

// Client issues HTTP requests and packages each completed attempt into a
// domain.Exchange. It is the producer side of the adapter: whatever the
// transport reports - a response with its body drained, or a transport
// error - becomes one Exchange, handed to exactly one completion.
type Client struct {
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient creates a client around the given http.Client.
// A nil httpClient falls back to a default client; a nil logger disables
// logging.
func NewClient(httpClient *http.Client, logger *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// NewClientFromConfig creates a client configured from adapter settings.
func NewClientFromConfig(cfg *domain.Config, logger *zap.SugaredLogger) *Client {
	httpClient := &http.Client{}
	if cfg != nil && cfg.HTTP.TimeoutSeconds > 0 {
		httpClient.Timeout = time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	}
	return NewClient(httpClient, logger)
}

// Do executes the request and returns the completed exchange.
// The response body is fully drained and closed before Do returns, so the
// exchange owns its bytes and the connection is free for reuse. A non-2xx
// status is still a completed exchange, not a transport error.
func (c *Client) Do(req *http.Request) *domain.Exchange {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Warnw("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		}
		return domain.FailedExchange(req, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if c.logger != nil {
			c.logger.Warnw("reading response body failed", "url", req.URL.String(), "error", err)
		}
		return domain.FailedExchange(req, fmt.Errorf("failed to read response body: %w", err))
	}

	if c.logger != nil {
		c.logger.Debugw("request completed", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode, "bytes", len(body))
	}
	return domain.NewExchange(req, resp, body)
}

// Get executes a GET request against the given URL.
func (c *Client) Get(ctx context.Context, url string) *domain.Exchange {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.FailedExchange(nil, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	return c.Do(req)
}

// DoAsync executes the request on its own goroutine and invokes the
// completion exactly once with the finished exchange. The completion runs
// on the request's goroutine; the adapter's mapping operations are safe
// to call from it.
func (c *Client) DoAsync(req *http.Request, completion func(*domain.Exchange)) {
	go func() {
		completion(c.Do(req))
	}()
}
