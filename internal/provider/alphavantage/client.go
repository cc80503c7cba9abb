package alphavantage

import (
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

const (
	baseURL = "https://www.alphavantage.co/query"

	// DefaultAPIKey is the public demo key, used when no key is configured.
	DefaultAPIKey = "demo"

	// DefaultFunction is the Alpha Vantage endpoint for a single latest quote.
	DefaultFunction = "GLOBAL_QUOTE"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=alphavantage_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Alpha Vantage quote API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// function is the Alpha Vantage function name sent with every request.
	function string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
	// log receives the outbound trace.
	log logrus.FieldLogger
}

// ClientOption is a configuration option for the Alpha Vantage client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithFunction overrides the Alpha Vantage function name.
func WithFunction(function string) ClientOption {
	return func(c *Client) {
		if function != "" {
			c.function = function
		}
	}
}

// WithLogger sets the logger used for the outbound trace.
func WithLogger(log logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a new Alpha Vantage client. An empty key falls back
// to DefaultAPIKey.
func NewClient(key string, options ...ClientOption) (*Client, error) {
	if key == "" {
		key = DefaultAPIKey
	}
	var client = &Client{
		baseURL:    baseURL,
		function:   DefaultFunction,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
		log:        logrus.StandardLogger(),
	}
	// https://www.alphavantage.co/documentation/
	client.query.Set("apikey", key)
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// Name identifies the upstream in logs.
func (c *Client) Name() string { return "AlphaVantage" }
