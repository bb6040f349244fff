package extract

import (
	"regexp"

	"github.com/nao1215/auctioncrawl/internal/model"
)

// DefaultProductMarker is the class name fragment that identifies product
// image links on a category listing page.
const DefaultProductMarker = "Product__imageLink"

// ProductExtractor finds product image links in a category listing page.
type ProductExtractor struct {
	marker string
	rule   *Rule
}

// NewProductExtractor returns an extractor for anchors whose class attribute
// contains marker. The class attribute must come first in the tag and the
// href must follow it within the same tag.
func NewProductExtractor(marker string) (*ProductExtractor, error) {
	if marker == "" {
		return nil, ErrEmptyMarker
	}

	pattern := `<a\s+class="[^"]*` + regexp.QuoteMeta(marker) + `[^"]*"[^>]*\s+href="(?P<url>[^"]*)"`
	rule, err := NewRule("product", pattern, func(m Match) bool {
		return m[captureURL] != ""
	})
	if err != nil {
		return nil, err
	}

	return &ProductExtractor{marker: marker, rule: rule}, nil
}

// Marker returns the class marker the extractor looks for.
func (e *ProductExtractor) Marker() string {
	return e.marker
}

// Extract returns the product links found in markup, in document order.
// Anchors with an empty href are skipped. Duplicates are kept.
func (e *ProductExtractor) Extract(markup string) []model.Product {
	matches := e.rule.Apply(markup)

	products := make([]model.Product, 0, len(matches))
	for _, m := range matches {
		products = append(products, model.Product{URL: m[captureURL]})
	}

	return products
}
