// Package fetch retrieves pages as text for the crawler.
//
// The crawler only needs one operation: given a URL, return the body as a
// string or fail. Fetcher captures that, and Client implements it on top of
// resty. A request fails on transport errors and on any non-2xx status;
// callers do not branch on the status code.
//
// Client can route requests through a SOCKS5 or HTTP proxy, attach a cookie
// and extra headers to every request, cap the body size, and pace requests
// with a token bucket. Bodies are converted to UTF-8 using the charset
// declared by the response.
//
// There are no retries. A failed fetch is returned to the caller as is.
package fetch
