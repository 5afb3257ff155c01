package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Client wraps the standard HTTP client with common functionality
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: DefaultTimeout})
}

// NewClientWithHTTPClient uses a caller-supplied http.Client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsMainnet reports whether the client talks to the mainnet API.
func (c *Client) IsMainnet() bool {
	return types.NetworkFromBaseURL(c.baseURL).IsMainnet()
}

// Post sends a JSON body to path and returns the response body.
func (c *Client) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("http post")

	return c.parseResponse(resp)
}

// PostExchange posts a signed action payload to /exchange.
func (c *Client) PostExchange(ctx context.Context, body []byte) ([]byte, error) {
	return c.Post(ctx, types.EXCHANGE, body)
}

// parseResponse parses the HTTP response
func (c *Client) parseResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorData map[string]interface{}
		if err := json.Unmarshal(body, &errorData); err == nil {
			if msg, ok := errorData["error"].(string); ok {
				return nil, &hlerrors.HTTPError{StatusCode: resp.StatusCode, Message: msg}
			} else if msg, ok := errorData["message"].(string); ok {
				return nil, &hlerrors.HTTPError{StatusCode: resp.StatusCode, Message: msg}
			}
		}
		return nil, &hlerrors.HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	return body, nil
}
