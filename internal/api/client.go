// Package api implements the client for the remote chat endpoint.
//
// The endpoint contract is a single HTTP POST: the request body is a JSON
// object {"message": string}, the response a JSON object with at least
// {"response": string, "quit": bool}.
package api

import (
	"fmt"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/diogo/tripchat/internal/models"
)

// DefaultEndpoint is the chat endpoint used when the config names none.
const DefaultEndpoint = "http://localhost:5000/api/chat"

// DefaultTimeout bounds the full round trip of one turn.
const DefaultTimeout = 60 * time.Second

// ChatClient is the interface the TUI and CLI commands program against.
type ChatClient interface {
	// Send submits one user message and blocks until the server replies
	// or the request fails. Exactly one attempt is made per call.
	Send(message string) (*models.TurnReply, error)
	// Endpoint returns the URL the client posts to.
	Endpoint() string
}

// Client talks to the chat endpoint over HTTP.
type Client struct {
	httpClient tls_client.HttpClient
	endpoint   string
	timeout    time.Duration
}

// Ensure Client implements ChatClient
var _ ChatClient = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests to
// inject a stub transport.
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client posting to the given endpoint URL.
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	client := &Client{
		endpoint: endpoint,
		timeout:  DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout.Seconds())),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}
