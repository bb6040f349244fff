package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
	"golang.org/x/net/proxy"
	"golang.org/x/time/rate"
)

// Defaults for Client.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
	DefaultUserAgent   = "auctioncrawl/1.0 (+https://github.com/nao1215/auctioncrawl)"

	// maxRedirects bounds redirect chains.
	maxRedirects = 10
)

// Client fetches pages over HTTP. It is safe for concurrent use.
type Client struct {
	// http is the underlying resty client.
	http *resty.Client

	// timeout applies to each request, including reading the body.
	timeout time.Duration

	// userAgent is sent with every request.
	userAgent string

	// maxBodySize caps how many body bytes are read.
	maxBodySize int64

	// cookie is sent as the Cookie header when not empty.
	cookie string

	// headers are extra headers sent with every request.
	headers map[string]string

	// proxyAddress routes requests through a proxy when not empty.
	proxyAddress string

	// limiter paces requests. Nil means no pacing.
	limiter *rate.Limiter

	// logger receives resty's diagnostics.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read per response.
// Non-positive values keep the default.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// WithCookie sends cookie (e.g. "name=value; other=value") with every request.
func WithCookie(cookie string) Option {
	return func(c *Client) {
		c.cookie = cookie
	}
}

// WithHeaders sends the given headers with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithProxy routes requests through the proxy at address.
// A bare "host:port" is treated as a SOCKS5 proxy.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// WithRateLimit allows at most rps requests per second across all
// goroutines sharing the client. Zero or negative disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			c.limiter = nil
		}
	}
}

// WithLogger sets the logger used for client diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client.
// It returns ErrInvalidProxyAddress if a proxy was configured and cannot be
// parsed. No connection is made here.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	httpProxy, err := configureProxy(transport, c.proxyAddress)
	if err != nil {
		return nil, err
	}

	rc := resty.New().
		SetTransport(transport).
		SetTimeout(c.timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetLogger(&restyLogger{logger: c.logger}).
		SetHeader("User-Agent", c.userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "ja,en-US;q=0.7,en;q=0.3")

	if httpProxy != "" {
		rc.SetProxy(httpProxy)
	}
	if c.cookie != "" {
		rc.SetHeader("Cookie", c.cookie)
	}
	if len(c.headers) > 0 {
		rc.SetHeaders(c.headers)
	}

	c.http = rc
	return c, nil
}

// FetchText implements Fetcher.
func (c *Client) FetchText(ctx context.Context, pageURL string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(body, c.maxBodySize))
		return "", &StatusError{URL: pageURL, StatusCode: resp.StatusCode()}
	}

	// One byte past the limit tells a full page from a cut one.
	raw, err := io.ReadAll(io.LimitReader(body, c.maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", pageURL, err)
	}
	if int64(len(raw)) > c.maxBodySize {
		return "", &BodySizeError{URL: pageURL, Limit: c.maxBodySize}
	}

	reader, err := charset.NewReader(bytes.NewReader(raw), resp.Header().Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", pageURL, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", pageURL, err)
	}

	return string(data), nil
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// configureProxy wires address into transport. SOCKS5 proxies replace the
// dialer; HTTP proxies are returned so resty can install them.
func configureProxy(transport *http.Transport, address string) (string, error) {
	if address == "" {
		return "", nil
	}

	u, err := parseProxyAddress(address)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http", "https":
		return u.String(), nil
	default:
		var auth *proxy.Auth
		if u.User != nil {
			password, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: password}
		}

		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return "", fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return "", nil
	}
}

// parseProxyAddress validates a proxy address and returns it as a URL.
func parseProxyAddress(address string) (*url.URL, error) {
	if !strings.Contains(address, "://") {
		address = "socks5://" + address
	}

	u, err := url.Parse(address)
	if err != nil {
		return nil, ErrInvalidProxyAddress
	}

	switch u.Scheme {
	case "socks5", "socks5h", "http", "https":
	default:
		return nil, ErrInvalidProxyAddress
	}

	if u.Hostname() == "" {
		return nil, ErrInvalidProxyAddress
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil || port < 1 || port > 65535 {
		return nil, ErrInvalidProxyAddress
	}

	return u, nil
}

// restyLogger forwards resty diagnostics to slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "http")
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "http")
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "http")
}
