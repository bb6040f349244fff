// Package log provides secure logging built on top of the standard slog package.
//
// SecureHandler masks sensitive attribute values before they reach the
// underlying handler:
//   - request credentials logged by key (cookie, authorization, x-api-key)
//   - token-like values detected by pattern (bearer, basic, JWT)
//   - sensitive query parameters inside logged URLs (token=, sid=, ...)
//   - header maps passed as a single attribute
//
// Even in verbose mode these values are masked, so logs from a crawl that
// sends a session cookie can be shared.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Warn("rate limited or failed to fetch category",
//	    "listing_url", "https://example.com/category/list/2084005?sid=abc", // sid masked
//	    "cookie", "session=abc123", // masked
//	)
package log
