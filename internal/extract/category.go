package extract

import (
	"regexp"

	"github.com/nao1215/auctioncrawl/internal/model"
)

// Capture names used by the category rule.
const (
	captureURL  = "url"
	captureName = "name"
)

// categoryPattern matches <a href="URL">...<span>NAME</span></a>.
// The content between the opening tag and the span may span lines.
const categoryPattern = `<a\s+href="(?P<url>.*?)">[\s\S]*?<span>(?P<name>.*?)</span></a>`

// rightmostDigitsRegex captures the rightmost run of digits in a string.
var rightmostDigitsRegex = regexp.MustCompile(`(\d+)\D*$`)

// categoryRule drops anchors whose URL has no digits.
var categoryRule = MustRule("category", categoryPattern, func(m Match) bool {
	return CategoryID(m[captureURL]) != ""
})

// CategoryExtractor finds category anchors in a category list page.
type CategoryExtractor struct {
	rule *Rule
}

// NewCategoryExtractor returns an extractor using the category anchor rule.
func NewCategoryExtractor() *CategoryExtractor {
	return &CategoryExtractor{rule: categoryRule}
}

// Extract returns the categories found in markup, in document order.
// Anchors whose URL carries no digits are skipped. Duplicates are kept.
func (e *CategoryExtractor) Extract(markup string) []model.Category {
	matches := e.rule.Apply(markup)

	categories := make([]model.Category, 0, len(matches))
	for _, m := range matches {
		categories = append(categories, model.Category{
			ID:   CategoryID(m[captureURL]),
			Name: m[captureName],
			URL:  m[captureURL],
		})
	}

	return categories
}

// ExtractCategories is shorthand for NewCategoryExtractor().Extract(markup).
func ExtractCategories(markup string) []model.Category {
	return NewCategoryExtractor().Extract(markup)
}

// CategoryID returns the rightmost run of digits in rawURL, or "" if it has
// none. For "/list1/jp/2024/12345" it returns "12345".
func CategoryID(rawURL string) string {
	m := rightmostDigitsRegex.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}
