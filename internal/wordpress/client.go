package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/kolo/xmlrpc"
	"github.com/rs/zerolog"
)

// tokenValidity is the fixed window applied to tokens issued by the
// jwt-auth plugin; the plugin default matches
const tokenValidity = 24 * time.Hour

// rpcCaller abstracts the XML-RPC transport so tests can stub it
type rpcCaller interface {
	Call(method string, args interface{}, reply interface{}) error
}

// rpcCall guards a legacy transport call with the caller's context; the
// xmlrpc client itself has no context support.
func rpcCall(ctx context.Context, rpc rpcCaller, method string, args, reply interface{}) error {
	done := make(chan error, 1)
	go func() { done <- rpc.Call(method, args, reply) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Client is a publishing adapter for one WordPress site. It negotiates
// authentication, resolves taxonomy, and writes posts over REST with an
// XML-RPC fallback. The bearer token cache is per-instance; nothing is
// shared across sites.
type Client struct {
	baseURL  string
	username string
	password string

	token       string
	tokenExpiry time.Time

	http         *http.Client
	log          zerolog.Logger
	probeTimeout time.Duration
	writeTimeout time.Duration
	retryBackoff time.Duration

	now    func() time.Time
	newRPC func(endpoint string, timeout time.Duration) (rpcCaller, error)
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a structured logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log.With().Str("component", "wordpress").Str("site", c.baseURL).Logger() }
}

// WithTimeouts sets the probe (read) and write deadlines
func WithTimeouts(probe, write time.Duration) Option {
	return func(c *Client) {
		c.probeTimeout = probe
		c.writeTimeout = write
	}
}

// WithRetryBackoff sets the delay before the single retry of idempotent reads
func WithRetryBackoff(d time.Duration) Option {
	return func(c *Client) { c.retryBackoff = d }
}

// withClock replaces the time source, used by tests
func withClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// withRPCFactory replaces the XML-RPC client constructor, used by tests
func withRPCFactory(f func(endpoint string, timeout time.Duration) (rpcCaller, error)) Option {
	return func(c *Client) { c.newRPC = f }
}

// NewClient builds an adapter for the given site. The URL is normalized
// before use.
func NewClient(rawURL, username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:      NormalizeURL(rawURL),
		username:     username,
		password:     password,
		probeTimeout: 15 * time.Second,
		writeTimeout: 60 * time.Second,
		retryBackoff: 2 * time.Second,
		now:          time.Now,
		log:          zerolog.Nop(),
	}
	c.newRPC = func(endpoint string, timeout time.Duration) (rpcCaller, error) {
		return xmlrpc.NewClient(endpoint, &http.Transport{
			DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
		})
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	return c
}

// BaseURL returns the normalized site URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) restURL(path string) string {
	return c.baseURL + "/wp-json/wp/v2" + path
}

// authHeaders returns request headers for the site, preferring a cached
// bearer token while it is still valid, then a fresh token from the
// jwt-auth endpoint, and finally HTTP Basic. The Basic fallback never
// fails; any token trouble degrades silently.
func (c *Client) authHeaders(ctx context.Context) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		h.Set("Authorization", "Bearer "+c.token)
		return h
	}

	if err := c.fetchToken(ctx); err == nil {
		h.Set("Authorization", "Bearer "+c.token)
		return h
	} else {
		c.log.Debug().Err(err).Msg("Bearer token unavailable, using basic auth")
	}

	creds := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
	h.Set("Authorization", "Basic "+creds)
	return h
}

// fetchToken obtains a bearer token from the jwt-auth plugin endpoint and
// caches it with a fixed validity window
func (c *Client) fetchToken(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/wp-json/jwt-auth/v1/token", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if payload.Token == "" {
		return fmt.Errorf("token endpoint returned empty token")
	}

	c.token = payload.Token
	c.tokenExpiry = c.now().Add(tokenValidity)
	c.log.Debug().Time("expires", c.tokenExpiry).Msg("Bearer token acquired")
	return nil
}

// doJSON issues an authenticated request with the given deadline and
// returns the response. Transport failures come back classified.
func (c *Client) doJSON(ctx context.Context, method, url string, body interface{}, timeout time.Duration) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header = c.authHeaders(ctx)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	return resp, nil
}

// getWithRetry performs an idempotent read with a single backoff retry on
// transport failure. Writes never pass through here: retrying a create
// risks duplicate posts.
func (c *Client) getWithRetry(ctx context.Context, url string) (*http.Response, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, url, nil, c.probeTimeout)
	if err == nil {
		return resp, nil
	}
	if !IsKind(err, KindNotReachable) {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, classifyTransportErr(ctx.Err())
	case <-time.After(c.retryBackoff):
	}

	return c.doJSON(ctx, http.MethodGet, url, nil, c.probeTimeout)
}

// readBody drains a bounded amount of the response body for error reporting
func readBody(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return string(bytes.TrimSpace(data))
}
