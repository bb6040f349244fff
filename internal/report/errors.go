package report

import "errors"

// ErrNoResult is returned when a report without a crawl result is written
// by a writer that needs one.
var ErrNoResult = errors.New("report has no crawl result")
