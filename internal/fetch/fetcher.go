package fetch

import "context"

// Fetcher returns the body of a page as text.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	// FetchText fetches url and returns its body. It fails on network
	// errors and on non-success HTTP statuses.
	FetchText(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (string, error)

// FetchText calls f(ctx, url).
func (f FetcherFunc) FetchText(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}
