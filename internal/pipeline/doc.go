// Package pipeline runs a crawl as a sequence of steps.
//
// A crawl has two stages. HomeStep fetches the category list page and
// extracts categories from it. ProductsStep fans out one fetch per category
// through CategoryCrawler and collects the products found on each listing
// page. Each step receives the shared CrawlReport and fills in its part.
//
// Failure handling differs by stage. If the category list page cannot be
// fetched the pipeline stops and the error is returned to the caller; no
// partial result is produced. A failing category listing is logged and
// recorded as a category without products, and the other categories carry
// on unaffected.
package pipeline
