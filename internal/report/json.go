package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/auctioncrawl/internal/model"
)

// JSONWriter outputs the crawl result document:
//
//	{"total": N, "productsByCategories": [...]}
//
// Failed categories carry no "products" key. Categories fetched without
// products carry "products": [].
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report's crawl result in JSON format.
// It returns ErrNoResult if the crawl produced no result.
func (w *JSONWriter) Write(report *model.CrawlReport) (int, error) {
	if report.Result == nil {
		return 0, ErrNoResult
	}
	return w.writeJSON(report.Result)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport wraps the crawl result with run metadata.
type JSONReport struct {
	// Version is the auctioncrawl version that generated this report.
	Version string `json:"version"`

	// SourceURL is the category list page the crawl started from.
	SourceURL string `json:"sourceUrl"`

	// StartedAt is when the crawl began.
	StartedAt time.Time `json:"startedAt"`

	// ElapsedMillis is the crawl duration in milliseconds.
	ElapsedMillis int64 `json:"elapsedMillis"`

	// FailedCategories is the number of categories without products data.
	FailedCategories int `json:"failedCategories"`

	// Error is the orchestration error message, if any.
	Error string `json:"error,omitempty"`

	// Result is the crawl result document.
	Result *model.CrawlResult `json:"result,omitempty"`
}

// NewJSONReport creates a JSONReport wrapper with version information.
func NewJSONReport(report *model.CrawlReport, version string) *JSONReport {
	wrapped := &JSONReport{
		Version:       version,
		SourceURL:     report.SourceURL,
		StartedAt:     report.StartedAt,
		ElapsedMillis: report.Elapsed().Milliseconds(),
		Error:         report.ErrorMessage,
		Result:        report.Result,
	}
	if report.Result != nil {
		wrapped.FailedCategories = report.Result.FailedCount()
	}
	return wrapped
}

// FullJSONWriter outputs reports with a metadata wrapper.
type FullJSONWriter struct {
	*JSONWriter

	// version is the auctioncrawl version string.
	version string
}

// NewFullJSONWriter creates a writer for reports with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the report wrapped with metadata.
// Unlike JSONWriter it also writes reports of failed runs.
func (w *FullJSONWriter) Write(report *model.CrawlReport) (int, error) {
	return w.writeJSON(NewJSONReport(report, w.version))
}
