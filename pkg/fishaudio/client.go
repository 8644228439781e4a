package fishaudio

import (
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the default Fish Audio API base URL.
	DefaultBaseURL = "https://api.fish.audio"

	// DefaultTimeout is the default request timeout.
	//
	// Model creation with fast training holds the connection until the
	// samples are accepted, which regularly takes minutes.
	DefaultTimeout = 3 * time.Minute

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "fishvoice-go/1.0"
)

// Client is the Fish Audio API client.
//
// A Client is a session bound to one API key. Call Close when done with it;
// requests made after Close fail with ErrClosed.
type Client struct {
	// Wallet provides account credit operations.
	Wallet *WalletService

	// Model provides voice model operations.
	Model *ModelService

	// TTS provides speech synthesis operations.
	TTS *TTSService

	config *clientConfig
	http   *httpClient

	closeOnce sync.Once
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// NewClient creates a new Fish Audio API client.
//
// Example:
//
//	client := fishaudio.NewClient("your-api-key")
//	defer client.Close()
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		apiKey:    apiKey,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}

	c.Wallet = newWalletService(c)
	c.Model = newModelService(c)
	c.TTS = newTTSService(c)

	return c
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.config.apiKey
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}

// Close releases the session. It is safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.http.close()
		c.config.logger.Debug("fishaudio session closed")
	})
	return nil
}
