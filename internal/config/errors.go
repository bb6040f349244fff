package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can match them
// with errors.Is().
var (
	// ErrInvalidHomeURL is returned when the category list page URL is not
	// an absolute http or https URL.
	ErrInvalidHomeURL = errors.New("invalid home URL: must be an absolute http(s) URL")

	// ErrInvalidCategoryBaseURL is returned when the listing base URL is not
	// an absolute http or https URL.
	ErrInvalidCategoryBaseURL = errors.New("invalid category base URL: must be an absolute http(s) URL")

	// ErrEmptyProductMarker is returned when no product marker class is configured.
	ErrEmptyProductMarker = errors.New("product marker must not be empty")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the concurrency limit is negative.
	// Use 0 for no limit.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be non-negative")

	// ErrInvalidRateLimit is returned when the request rate is negative.
	// Use 0 to disable pacing.
	ErrInvalidRateLimit = errors.New("invalid rate limit: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
