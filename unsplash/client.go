package unsplash

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultAPIURL is the root of the public Unsplash API.
const DefaultAPIURL = "https://api.unsplash.com/"

// Client represents an Unsplash API client.
//
// A Client is immutable after construction and safe for concurrent use;
// requests issued through it are fully independent.
type Client struct {
	apiURL     string
	accessKey  string
	bearer     string
	httpClient Doer
	logger     zerolog.Logger

	// Absolute endpoint URLs and the two authorization configs, computed
	// once at construction and read-only afterwards.
	meURL     string
	photosURL string
	randomURL string
	public    Config
	private   Config
}

// NewClient creates a new Unsplash client authenticated with the given
// access key. Endpoints acting on the current user additionally require a
// bearer token, supplied via WithBearerToken.
func NewClient(accessKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if accessKey == "" {
		return nil, fmt.Errorf("unsplash access key is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	apiURL := options.apiURL
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	c := &Client{
		apiURL:     apiURL,
		accessKey:  accessKey,
		bearer:     options.bearer,
		httpClient: options.httpClient,
		logger:     logger,
	}
	c.meURL = apiURL + "me"
	c.photosURL = apiURL + "photos"
	c.randomURL = apiURL + "photos/random"
	c.public = Config{
		Authorization: "Client-ID " + accessKey,
		Client:        c.httpClient,
		Logger:        logger,
	}
	c.private = Config{
		Authorization: "Bearer " + options.bearer,
		Client:        c.httpClient,
		Logger:        logger,
	}

	return c, nil
}

// bearerConfig returns the bearer-authenticated dispatch config, or an error
// if no bearer token was configured.
func (c *Client) bearerConfig() (*Config, error) {
	if c.bearer == "" {
		return nil, fmt.Errorf("unsplash bearer token is required for user endpoints")
	}
	return &c.private, nil
}
