package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/auctioncrawl/internal/extract"
	"github.com/nao1215/auctioncrawl/internal/fetch"
	"github.com/nao1215/auctioncrawl/internal/model"
)

// HomeStep fetches the category list page and extracts its categories.
// A fetch failure here aborts the crawl.
type HomeStep struct {
	// fetcher retrieves the category list page.
	fetcher fetch.Fetcher

	// extractor finds category anchors.
	extractor *extract.CategoryExtractor

	// logger for structured logging.
	logger *slog.Logger
}

// HomeStepOption configures a HomeStep.
type HomeStepOption func(*HomeStep)

// WithHomeLogger sets a custom logger for the home step.
func WithHomeLogger(logger *slog.Logger) HomeStepOption {
	return func(s *HomeStep) {
		s.logger = logger
	}
}

// NewHomeStep creates a step that reads categories from report.SourceURL.
func NewHomeStep(fetcher fetch.Fetcher, opts ...HomeStepOption) *HomeStep {
	s := &HomeStep{
		fetcher:   fetcher,
		extractor: extract.NewCategoryExtractor(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *HomeStep) Name() string {
	return "home"
}

// Do executes the home step.
func (s *HomeStep) Do(ctx context.Context, report *model.CrawlReport) error {
	markup, err := s.fetcher.FetchText(ctx, report.SourceURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHomeFetch, err)
	}

	report.Categories = s.extractor.Extract(markup)

	s.logger.Info("categories extracted",
		"source", report.SourceURL,
		"categories", len(report.Categories),
	)

	return nil
}

// ProductsStep crawls the listing page of every category found by HomeStep
// and stores the aggregated result in the report.
type ProductsStep struct {
	crawler *CategoryCrawler
}

// NewProductsStep creates a step backed by crawler.
func NewProductsStep(crawler *CategoryCrawler) *ProductsStep {
	return &ProductsStep{crawler: crawler}
}

// Name returns the step name.
func (s *ProductsStep) Name() string {
	return "products"
}

// Do executes the products step. It never fails; per-category failures are
// recorded in the result.
func (s *ProductsStep) Do(ctx context.Context, report *model.CrawlReport) error {
	results := s.crawler.CrawlProducts(ctx, report.Categories)
	report.Result = model.NewCrawlResult(results)
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// CategoryBaseURL is prefixed to a category ID to form its listing URL.
	CategoryBaseURL string

	// ProductMarker is the class fragment identifying product image links.
	ProductMarker string

	// Concurrency caps in-flight listing fetches. Zero means unbounded.
	Concurrency int
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineCategoryBaseURL sets the category listing base URL.
func WithPipelineCategoryBaseURL(baseURL string) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.CategoryBaseURL = baseURL
	}
}

// WithPipelineProductMarker sets the product link class marker.
func WithPipelineProductMarker(marker string) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.ProductMarker = marker
	}
}

// WithPipelineConcurrency caps in-flight listing fetches.
func WithPipelineConcurrency(n int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Concurrency = n
	}
}

// DefaultPipeline creates the standard two-step crawl pipeline:
// HomeStep followed by ProductsStep, both using fetcher.
//
// It returns an error if the product marker is empty.
func DefaultPipeline(fetcher fetch.Fetcher, pipelineOpts []Option, configOpts ...DefaultPipelineOption) (*Pipeline, error) {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		ProductMarker: extract.DefaultProductMarker,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	products, err := extract.NewProductExtractor(cfg.ProductMarker)
	if err != nil {
		return nil, err
	}

	crawler := NewCategoryCrawler(fetcher, cfg.CategoryBaseURL, products,
		WithCrawlerConcurrency(cfg.Concurrency),
		WithCrawlerLogger(p.logger),
	)

	p.AddSteps(
		NewHomeStep(fetcher, WithHomeLogger(p.logger)),
		NewProductsStep(crawler),
	)

	return p, nil
}

// Crawl runs p against the category list page at homeURL.
// On success the returned report's Result is non-nil. On failure the error
// is returned along with the partially filled report.
func Crawl(ctx context.Context, p *Pipeline, homeURL string) (*model.CrawlReport, error) {
	report := model.NewCrawlReport(homeURL)
	if err := p.Execute(ctx, report); err != nil {
		return report, err
	}
	if report.Error != nil {
		return report, report.Error
	}
	return report, nil
}
