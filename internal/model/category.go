package model

// Category is a navigable grouping of listings on the marketplace.
// It is created from one matched anchor on the category list page.
type Category struct {
	// ID is the rightmost run of digits in URL. Never empty.
	ID string `json:"id"`

	// Name is the text of the <span> inside the category anchor.
	Name string `json:"name"`

	// URL is the href of the category anchor, exactly as written in the markup.
	URL string `json:"url"`
}

// Product is a single listing found on a category listing page.
// It has no identity beyond its URL and is never deduplicated.
type Product struct {
	URL string `json:"url"`
}

// CategoryResult is a Category extended with the products found on its
// listing page.
//
// Products is nil when the listing page could not be fetched, and an empty
// non-nil slice when the page was fetched but yielded nothing. The omitzero
// tag keeps that distinction on the wire.
type CategoryResult struct {
	Category

	Products []Product `json:"products,omitzero"`

	// Err is the fetch failure for this category, if any.
	Err error `json:"-"`
}

// NewCategoryResult returns a fetched result for category holding products.
// A nil products slice is replaced by an empty one so the result still
// reports a successful fetch.
func NewCategoryResult(category Category, products []Product) CategoryResult {
	if products == nil {
		products = []Product{}
	}
	return CategoryResult{Category: category, Products: products}
}

// NewFailedCategoryResult returns a result for a category whose listing page
// could not be fetched.
func NewFailedCategoryResult(category Category, err error) CategoryResult {
	return CategoryResult{Category: category, Err: err}
}

// Fetched reports whether the listing page of the category was fetched.
func (r CategoryResult) Fetched() bool {
	return r.Products != nil
}
