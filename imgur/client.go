package imgur

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root of the Imgur v3 REST API.
const DefaultBaseURL = "https://api.imgur.com/3/"

// Client represents an Imgur API client
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       zerolog.Logger
	userAgent    string
	maxUploadDim int

	authURL  string
	tokenURL string

	// accessToken guards the single piece of mutable state: the bearer token
	// set by Authorize. Guarded so concurrent callers may share a client.
	mu          sync.RWMutex
	accessToken string
}

// NewClient creates a new Imgur client with the given application credentials.
// The client secret is only needed for the OAuth pin flow and may be empty for
// purely anonymous use.
func NewClient(clientID, clientSecret string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}

	options := clientOptions{
		timeout:  30 * time.Second,
		baseURL:  DefaultBaseURL,
		authURL:  defaultAuthURL,
		tokenURL: defaultTokenURL,
	}
	for _, opt := range opts {
		opt(&options)
	}

	// Ensure the base URL ends with a slash so endpoint paths join cleanly
	if !strings.HasSuffix(options.baseURL, "/") {
		options.baseURL += "/"
	}

	client := &Client{
		baseURL:      options.baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
		userAgent:    options.userAgent,
		maxUploadDim: options.maxUploadDim,
		authURL:      options.authURL,
		tokenURL:     options.tokenURL,
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	} else {
		// Copy so wrapping the transport doesn't mutate the caller's client
		clone := *httpClient
		httpClient = &clone
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient.Transport = &authTransport{client: client, base: base}
	client.httpClient = httpClient

	return client, nil
}

// AccessToken returns the bearer token currently held by the client, or the
// empty string when operating anonymously.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// SetAccessToken installs a bearer token, switching the client to
// authenticated requests. Passing an empty string reverts to anonymous
// Client-ID authentication.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// authTransport injects the Authorization header into every outbound request.
// It sends "Bearer <token>" once a token is held and "Client-ID <id>"
// otherwise, never both.
type authTransport struct {
	client *Client
	base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if token := t.client.AccessToken(); token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	} else {
		clone.Header.Set("Authorization", "Client-ID "+t.client.clientID)
	}
	if t.client.userAgent != "" {
		clone.Header.Set("User-Agent", t.client.userAgent)
	}
	return t.base.RoundTrip(clone)
}

// envelope is the generic response wrapper common to all Imgur endpoints.
// The data field is endpoint-specific, so it is decoded in a second pass.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
	Status  int             `json:"status"`
}

// errorMessage extracts the service-supplied error string from a failure
// envelope's data field.
func (e *envelope) errorMessage() string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(e.Data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "request was unsuccessful"
}

// call performs one API round-trip and unwraps the response envelope. The
// decoded data field is returned on success; a *RequestError carrying the
// status code and service message is returned when the envelope reports
// failure or the HTTP status is outside the success range.
func call[T any](ctx context.Context, c *Client, method, endpoint string, form url.Values) (T, error) {
	var zero T

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return zero, fmt.Errorf("failed to create request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("Making Imgur API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("failed to read response body: %w", err)
	}

	success := resp.StatusCode >= 200 && resp.StatusCode <= 299

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if !success {
			// Error pages from proxies etc. aren't guaranteed to be JSON
			return zero, &RequestError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return zero, fmt.Errorf("failed to parse response: %w", err)
	}

	if !env.Success || !success {
		status := resp.StatusCode
		if success {
			status = env.Status
		}
		return zero, &RequestError{StatusCode: status, Message: env.errorMessage()}
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return zero, fmt.Errorf("failed to parse response data: %w", err)
	}
	return data, nil
}
