package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/auctioncrawl/internal/extract"
	"github.com/nao1215/auctioncrawl/internal/fetch"
	"github.com/nao1215/auctioncrawl/internal/model"
)

// CategoryCrawler fetches the listing page of every category concurrently
// and extracts its products.
//
// All fetches are started at once unless a concurrency limit is set. Each
// goroutine writes only its own slot of the results slice, so no locking is
// needed. A failing category never cancels or delays the others.
type CategoryCrawler struct {
	// fetcher retrieves listing pages.
	fetcher fetch.Fetcher

	// baseURL is prefixed to a category ID to form its listing URL.
	baseURL string

	// extractor finds product links on a listing page.
	extractor *extract.ProductExtractor

	// concurrency caps in-flight fetches. Zero means unbounded.
	concurrency int

	// logger receives per-category failure notices.
	logger *slog.Logger
}

// CategoryCrawlerOption configures a CategoryCrawler.
type CategoryCrawlerOption func(*CategoryCrawler)

// WithCrawlerConcurrency caps the number of listing pages fetched at once.
// Zero or negative means one goroutine per category with no cap.
func WithCrawlerConcurrency(n int) CategoryCrawlerOption {
	return func(c *CategoryCrawler) {
		if n > 0 {
			c.concurrency = n
		} else {
			c.concurrency = 0
		}
	}
}

// WithCrawlerLogger sets a custom logger for the crawler.
func WithCrawlerLogger(logger *slog.Logger) CategoryCrawlerOption {
	return func(c *CategoryCrawler) {
		c.logger = logger
	}
}

// NewCategoryCrawler creates a CategoryCrawler.
// The listing URL of a category is baseURL followed by the category ID.
func NewCategoryCrawler(fetcher fetch.Fetcher, baseURL string, extractor *extract.ProductExtractor, opts ...CategoryCrawlerOption) *CategoryCrawler {
	c := &CategoryCrawler{
		fetcher:   fetcher,
		baseURL:   baseURL,
		extractor: extractor,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// ListingURL returns the listing page URL of category.
func (c *CategoryCrawler) ListingURL(category model.Category) string {
	return c.baseURL + category.ID
}

// CrawlProducts fetches every category's listing page and returns one
// result per category, at the same index as the category.
//
// It returns once every fetch has settled. Failed categories are logged and
// returned without products; CrawlProducts itself never fails.
func (c *CategoryCrawler) CrawlProducts(ctx context.Context, categories []model.Category) []model.CategoryResult {
	results := make([]model.CategoryResult, len(categories))

	c.CrawlProductsWithCallback(ctx, categories, func(result model.CategoryResult, index int) {
		results[index] = result
	})

	return results
}

// CrawlProductsWithCallback is like CrawlProducts but hands each result to
// callback as soon as it is ready, together with the category's index.
// The callback runs on the goroutine that fetched the category, so it must
// be safe for concurrent use if it touches shared state.
func (c *CategoryCrawler) CrawlProductsWithCallback(
	ctx context.Context,
	categories []model.Category,
	callback func(result model.CategoryResult, index int),
) {
	c.logger.Info("crawling categories",
		"total_categories", len(categories),
		"concurrency", c.concurrency,
	)

	startTime := time.Now()

	// Not errgroup.WithContext: one failure must not cancel its siblings.
	var g errgroup.Group
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}

	for i, category := range categories {
		g.Go(func() error {
			callback(c.crawlCategory(ctx, category), i)
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // tasks never return errors

	c.logger.Info("category crawl complete",
		"total_categories", len(categories),
		"elapsed", time.Since(startTime),
	)
}

// crawlCategory fetches one listing page and extracts its products.
func (c *CategoryCrawler) crawlCategory(ctx context.Context, category model.Category) model.CategoryResult {
	listingURL := c.ListingURL(category)

	markup, err := c.fetcher.FetchText(ctx, listingURL)
	if err != nil {
		c.logger.Warn("rate limited or failed to fetch category",
			"category_id", category.ID,
			"category_name", category.Name,
			"category_url", category.URL,
			"listing_url", listingURL,
			"error", err,
		)
		return model.NewFailedCategoryResult(category, err)
	}

	if markup == "" {
		c.logger.Debug("empty listing page", "category_id", category.ID)
		return model.NewCategoryResult(category, nil)
	}

	products := c.extractor.Extract(markup)
	c.logger.Debug("category crawled",
		"category_id", category.ID,
		"products", len(products),
	)

	return model.NewCategoryResult(category, products)
}
