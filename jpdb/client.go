// Package jpdb is a typed client for the jpdb.io API.
//
// Every operation is a single blocking POST. Failures are returned as *Error,
// whose Kind tells transport failures, undecodable bodies and the service's
// own error codes apart. The client never retries, not even on
// KindTooManyRequests; callers that want backoff must add it themselves.
package jpdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http2"
	"resty.dev/v3"
)

const (
	DefaultBaseURL      = "https://jpdb.io/api/v1/"
	DefaultReadTimeout  = 20 * time.Second
	DefaultWriteTimeout = 5 * time.Second
)

// Client talks to the jpdb API. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	httpClient *resty.Client
	baseURL    string
	logger     *slog.Logger
}

type options struct {
	baseURL      string
	readTimeout  time.Duration
	writeTimeout time.Duration
	logger       *slog.Logger
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at another server, such as a mock.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithReadTimeout bounds how long to wait for the server to respond.
func WithReadTimeout(d time.Duration) Option {
	return func(o *options) {
		o.readTimeout = d
	}
}

// WithWriteTimeout bounds connecting and sending the request.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) {
		o.writeTimeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client. Timeouts set with
// WithReadTimeout and WithWriteTimeout are ignored.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// NewClient creates a client authenticating with token. An empty token is
// allowed; the service rejects it with KindMissingKey.
func NewClient(token string, opts ...Option) (*Client, error) {
	o := options{
		baseURL:      DefaultBaseURL,
		readTimeout:  DefaultReadTimeout,
		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	httpClient := o.httpClient
	if httpClient == nil {
		var err error
		httpClient, err = newHTTPClient(o.readTimeout, o.writeTimeout)
		if err != nil {
			return nil, fmt.Errorf("newHTTPClient > %w", err)
		}
	}

	client := resty.NewWithClient(httpClient)
	client.SetHeader("Authorization", "Bearer "+token)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")

	baseURL := o.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		httpClient: client,
		baseURL:    baseURL,
		logger:     o.logger,
	}, nil
}

// newHTTPClient gives connecting and writing the short write timeout, and
// waiting for the response headers the longer read timeout.
func newHTTPClient(readTimeout, writeTimeout time.Duration) (*http.Client, error) {
	if readTimeout <= 0 || writeTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be positive, got read %s and write %s", readTimeout, writeTimeout)
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   writeTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   writeTimeout,
		ExpectContinueTimeout: time.Second,
		ResponseHeaderTimeout: readTimeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          10,
	}
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, fmt.Errorf("http2.ConfigureTransport > %w", err)
	}
	return &http.Client{Transport: transport}, nil
}

// Close releases idle connections.
func (client *Client) Close() error {
	return client.httpClient.Close()
}

// BaseURL returns the URL endpoints are resolved against.
func (client *Client) BaseURL() string {
	return client.baseURL
}

func (client *Client) String() string {
	return fmt.Sprintf("jpdb client, base URL: %s", client.baseURL)
}

// do sends req and decodes a successful body into result, which may be nil
// for operations without a payload.
func (client *Client) do(ctx context.Context, req request, result any) error {
	url := client.baseURL + req.path
	payload, err := json.Marshal(req.body)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", req.path, err)
	}

	start := time.Now()
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(url)
	if err != nil {
		client.logger.Debug("jpdb request failed",
			"endpoint", req.path,
			"elapsed", time.Since(start),
			"error", err,
		)
		return newTransportError(err)
	}

	status := response.StatusCode()
	body := []byte(response.String())
	client.logger.Debug("jpdb response",
		"endpoint", req.path,
		"status", status,
		"elapsed", time.Since(start),
	)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := newStatusError(status, body)
		client.logger.Debug("jpdb error response",
			"endpoint", req.path,
			"status", status,
			"kind", apiErr.Kind,
			"message", apiErr.Message,
		)
		return apiErr
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return newDecodeError(body, fmt.Errorf("json.Unmarshal(%s) > %w", req.path, err))
	}
	return nil
}
