// Package model defines the data structures shared by the crawler packages.
//
// This package contains the following main types:
//   - Category: a marketplace category discovered on the category list page
//   - Product: a listing link discovered on a category listing page
//   - CategoryResult: a category enriched with its products
//   - CrawlResult: the aggregated document returned to callers
//   - CrawlReport: a CrawlResult plus metadata about the run
//
// CrawlResult is serialized as {"total": N, "productsByCategories": [...]}.
// A category whose listing page could not be fetched is serialized without a
// "products" key, while a category whose page was fetched but empty carries
// "products": [].
package model
