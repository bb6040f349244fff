// Package extract pulls categories and products out of raw marketplace markup.
//
// Extraction works on the markup as text. Each extractor is a Rule: a
// regular expression with named capture groups and a predicate that decides
// whether a match becomes an entity. There is no DOM parsing, so partial or
// malformed pages are still scanned for whatever well-formed anchors they
// contain, and malformed anchors are simply not matched.
//
// Every call scans the input from the start with no state shared between
// calls, so extractors are safe for concurrent use.
//
// # Usage
//
//	categories := extract.ExtractCategories(homeHTML)
//
//	products, err := extract.NewProductExtractor(extract.DefaultProductMarker)
//	if err != nil {
//	    return err
//	}
//	links := products.Extract(listingHTML)
package extract
