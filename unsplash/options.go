package unsplash

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	apiURL     string
	bearer     string
	httpClient Doer
	injected   bool
	timeout    time.Duration
}

func defaultOptions() clientOptions {
	timeout := 30 * time.Second
	return clientOptions{
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// WithAPIURL overrides the API root URL. Useful for tests and proxies.
func WithAPIURL(apiURL string) Option {
	return func(o *clientOptions) {
		if apiURL != "" {
			o.apiURL = apiURL
		}
	}
}

// WithBearerToken sets the bearer token used for endpoints acting on the
// current user.
func WithBearerToken(token string) Option {
	return func(o *clientOptions) {
		o.bearer = token
	}
}

// WithHTTPClient injects a custom transport. The transport owns timeout and
// cancellation policy; the client imposes none of its own.
func WithHTTPClient(client Doer) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
			o.injected = true
		}
	}
}

// WithTimeout sets the timeout of the default transport. An injected
// transport keeps its own timeout policy, in whichever order the options
// are given.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
			if !o.injected {
				o.httpClient = &http.Client{Timeout: timeout}
			}
		}
	}
}
