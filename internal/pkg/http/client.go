package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/plutoride/vendor-app/internal/pkg/logger"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
)

// BearerClient is an HTTP client for the remote booking service. A bearer
// token is passed per call; an empty token sends no Authorization header.
type BearerClient struct {
	client  *nethttp.Client
	baseURL string
}

// NewBearerClient creates a new HTTP client for the given service base URL
func NewBearerClient(baseURL string, timeout time.Duration) *BearerClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &BearerClient{
		client: &nethttp.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *BearerClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *BearerClient) GetJSON(ctx context.Context, endpoint, token string, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, token, nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// PostJSON performs a POST request with a JSON body and decodes the response
func (c *BearerClient) PostJSON(ctx context.Context, endpoint, token string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodPost, endpoint, token, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// PutJSON performs a PUT request with a JSON body and decodes the response
func (c *BearerClient) PutJSON(ctx context.Context, endpoint, token string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodPut, endpoint, token, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// doRequest performs the actual HTTP request. Non-2xx responses are mapped to
// typed errors: 401 becomes an AuthenticationError, everything else a
// RemoteServiceError carrying the status code and raw body.
func (c *BearerClient) doRequest(ctx context.Context, method, endpoint, token string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.Bool("has_token", token != ""))

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, &apperr.RemoteServiceError{Err: err}
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == nethttp.StatusUnauthorized {
			return nil, apperr.NewAuthentication("remote service rejected the bearer token")
		}
		return nil, &apperr.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	return resp, nil
}

func decodeResponse(resp *nethttp.Response, result interface{}) error {
	defer resp.Body.Close()

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &apperr.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response body: %w", err),
		}
	}
	return nil
}
