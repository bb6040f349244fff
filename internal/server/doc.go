// Package server exposes the crawl over HTTP using gin.
//
// GET /craw runs one crawl per request and responds with the
// {total, productsByCategories} document. When the category list page
// cannot be fetched it responds 500 with a plain-text message.
// GET /health reports liveness without crawling.
package server
