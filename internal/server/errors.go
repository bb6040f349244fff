package server

import "errors"

// ErrNilCrawl is returned by New when no crawl function is given.
var ErrNilCrawl = errors.New("crawl function must not be nil")
