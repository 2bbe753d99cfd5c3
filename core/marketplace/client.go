package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// maxErrorBody caps how much of a rejected response is kept in a StatusError.
const maxErrorBody = 2048

// Request describes one marketplace API call.
type Request struct {
	// Op labels the operation for error reporting, e.g. "ozon: product list".
	Op string

	// Method is the HTTP method.
	Method string

	// URL is the full endpoint URL without query parameters.
	URL string

	// Header holds extra headers (credentials, host overrides).
	Header map[string]string

	// Query holds URL query parameters, may be nil.
	Query url.Values

	// Body is JSON-encoded as the request body when non-nil.
	Body any
}

// Client is a thin JSON request helper shared by the marketplace
// integrations. It owns a single http.Client with explicit connection and
// response timeouts; the sync core itself enforces no timeouts.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client whose transport-level timeouts default to 30
// seconds when timeoutSeconds is not positive.
func NewClient(timeoutSeconds int) *Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &Client{
		httpClient: &http.Client{Transport: transport},
	}
}

// Do performs the request and decodes a JSON response into out when out is
// non-nil. Connectivity failures surface as *TransportError, non-2xx
// responses as *StatusError.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	target := req.URL
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", req.Op, err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", req.Op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Op: req.Op, URL: target, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: req.Op, URL: target, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{
			Op:         req.Op,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       truncate(payload, maxErrorBody),
		}
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", req.Op, err)
		}
	}
	return nil
}

func truncate(b []byte, limit int) string {
	if len(b) <= limit {
		return string(b)
	}
	return string(b[:limit]) + "..."
}
