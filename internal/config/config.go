package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/auctioncrawl/internal/fetch"
)

// Default configuration values.
const (
	// DefaultHomeURL is the page listing every top-level category.
	DefaultHomeURL = "https://auctions.yahoo.co.jp/list1/jp/0-all.html"

	// DefaultCategoryBaseURL is the prefix a category ID is appended to
	// to form that category's listing page URL.
	DefaultCategoryBaseURL = "https://auctions.yahoo.co.jp/category/list/"

	// DefaultProductMarker is the class token identifying product links.
	DefaultProductMarker = "Product__imageLink"

	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = fetch.DefaultTimeout

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = fetch.DefaultUserAgent

	// DefaultMaxBodySize limits the response body size to read.
	DefaultMaxBodySize = fetch.DefaultMaxBodySize

	// DefaultListenAddress is the address the serve command binds to.
	DefaultListenAddress = ":3003"

	// AppName is the application name used for XDG directory paths.
	AppName = "auctioncrawl"
)

// Config holds all configuration options for auctioncrawl.
// It is populated from the configuration file and CLI flags and passed
// through the application rather than kept in global state.
type Config struct {
	// HomeURL is the category list page fetched first.
	HomeURL string

	// CategoryBaseURL is the prefix for category listing page URLs.
	// The listing URL is CategoryBaseURL followed by the category ID.
	CategoryBaseURL string

	// ProductMarker is the class token that marks product anchors.
	ProductMarker string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// Cookie is an optional Cookie header sent with every request.
	Cookie string

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// Concurrency caps the number of listing pages fetched at once.
	// 0 means every category is fetched concurrently.
	Concurrency int

	// RateLimit is the maximum number of requests per second.
	// 0 disables pacing. Pacing never retries a failed fetch.
	RateLimit float64

	// ProxyAddress routes requests through a proxy when set.
	// Accepts socks5://, socks5h://, http:// and https:// URLs, or a bare
	// host:port which is treated as SOCKS5.
	ProxyAddress string

	// ListenAddress is the address the HTTP server listens on.
	ListenAddress string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable format.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		HomeURL:         DefaultHomeURL,
		CategoryBaseURL: DefaultCategoryBaseURL,
		ProductMarker:   DefaultProductMarker,
		Timeout:         DefaultTimeout,
		UserAgent:       DefaultUserAgent,
		MaxBodySize:     DefaultMaxBodySize,
		ListenAddress:   DefaultListenAddress,
	}
}

// XDGConfigDir returns the XDG config directory for auctioncrawl.
// On Linux: ~/.config/auctioncrawl
// On macOS: ~/Library/Application Support/auctioncrawl
// On Windows: %APPDATA%\auctioncrawl
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the path of the configuration file inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// ApplyFile copies every value set in f onto c.
// Empty values in f leave the corresponding field untouched.
// Headers from f are merged over existing headers.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	if f.Endpoints.Home != "" {
		c.HomeURL = f.Endpoints.Home
	}
	if f.Endpoints.CategoryBase != "" {
		c.CategoryBaseURL = f.Endpoints.CategoryBase
	}
	if f.Endpoints.ProductMarker != "" {
		c.ProductMarker = f.Endpoints.ProductMarker
	}

	if f.Request.Cookie != "" {
		c.Cookie = f.Request.Cookie
	}
	if f.Request.UserAgent != "" {
		c.UserAgent = f.Request.UserAgent
	}
	if len(f.Request.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(f.Request.Headers))
		}
		for k, v := range f.Request.Headers {
			c.Headers[k] = v
		}
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the package sentinel errors.
func (c *Config) Validate() error {
	if !isHTTPURL(c.HomeURL) {
		return ErrInvalidHomeURL
	}

	if !isHTTPURL(c.CategoryBaseURL) {
		return ErrInvalidCategoryBaseURL
	}

	if c.ProductMarker == "" {
		return ErrEmptyProductMarker
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Concurrency < 0 {
		return ErrInvalidConcurrency
	}

	if c.RateLimit < 0 {
		return ErrInvalidRateLimit
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
