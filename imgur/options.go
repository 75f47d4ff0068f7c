package imgur

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout      time.Duration
	httpClient   *http.Client
	baseURL      string
	authURL      string
	tokenURL     string
	userAgent    string
	maxUploadDim int
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. The client's transport is wrapped
// so that authentication headers are still injected.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithBaseURL overrides the API base URL. Useful for testing against a mock
// server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithOAuthEndpoint overrides the OAuth authorization and token endpoints.
func WithOAuthEndpoint(authURL, tokenURL string) Option {
	return func(o *clientOptions) {
		o.authURL = authURL
		o.tokenURL = tokenURL
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithMaxUploadDimension caps the longest side of raster uploads. Images
// larger than n pixels on either axis are downscaled before re-encoding.
// Zero disables downscaling.
func WithMaxUploadDimension(n int) Option {
	return func(o *clientOptions) {
		if n >= 0 {
			o.maxUploadDim = n
		}
	}
}
