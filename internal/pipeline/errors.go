package pipeline

import "errors"

// ErrHomeFetch is returned when the category list page cannot be fetched.
// It wraps the underlying fetch error.
var ErrHomeFetch = errors.New("failed to fetch category list page")
