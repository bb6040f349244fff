// Package report writes crawl reports.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text output for terminal display
//   - JSONWriter: the {total, productsByCategories} document
//   - FullJSONWriter: the JSON document wrapped with run metadata
//   - MarkdownWriter: GitHub Flavored Markdown with summary and category tables
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
