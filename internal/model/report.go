package model

import "time"

// CrawlResult is the aggregated output of one crawl.
type CrawlResult struct {
	// Total is the number of entries in ProductsByCategories, failed
	// categories included.
	Total int `json:"total"`

	// ProductsByCategories holds one entry per extracted category, in the
	// order the categories appeared on the category list page.
	ProductsByCategories []CategoryResult `json:"productsByCategories"`
}

// NewCrawlResult builds a CrawlResult from per-category results.
func NewCrawlResult(results []CategoryResult) *CrawlResult {
	if results == nil {
		results = []CategoryResult{}
	}
	return &CrawlResult{
		Total:                len(results),
		ProductsByCategories: results,
	}
}

// FailedCount returns the number of categories whose listing page could not
// be fetched.
func (r *CrawlResult) FailedCount() int {
	count := 0
	for _, c := range r.ProductsByCategories {
		if !c.Fetched() {
			count++
		}
	}
	return count
}

// ProductCount returns the number of products across all categories.
func (r *CrawlResult) ProductCount() int {
	count := 0
	for _, c := range r.ProductsByCategories {
		count += len(c.Products)
	}
	return count
}

// CrawlReport describes one run of the crawl pipeline.
// The pipeline steps fill it in as they go.
type CrawlReport struct {
	// SourceURL is the category list page the crawl started from.
	SourceURL string `json:"source_url"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the last step returned.
	FinishedAt time.Time `json:"finished_at"`

	// Categories are the categories extracted from the category list page.
	Categories []Category `json:"-"`

	// Result is the aggregated output. Nil until the products step has run.
	Result *CrawlResult `json:"result,omitempty"`

	// PerformedSteps lists the names of the steps that completed.
	PerformedSteps []string `json:"performed_steps"`

	// Error is the error that aborted the run, if any.
	Error error `json:"-"`

	// ErrorMessage is Error as a string for serialization.
	ErrorMessage string `json:"error,omitempty"`

	// TimedOut is true if the run was cancelled before all steps finished.
	TimedOut bool `json:"timed_out"`
}

// NewCrawlReport creates a report for a crawl starting at sourceURL.
func NewCrawlReport(sourceURL string) *CrawlReport {
	return &CrawlReport{
		SourceURL:      sourceURL,
		StartedAt:      time.Now(),
		Categories:     make([]Category, 0),
		PerformedSteps: make([]string, 0),
	}
}

// Elapsed returns how long the run took. It is zero until FinishedAt is set.
func (r *CrawlReport) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Succeeded reports whether the run produced a result without an
// orchestration-level error.
func (r *CrawlReport) Succeeded() bool {
	return r.Error == nil && r.Result != nil
}
