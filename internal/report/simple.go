package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/auctioncrawl/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose lists every product URL under its category.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.CrawlReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	if report.Result != nil {
		w.writeSummary(&sb, report.Result)
		w.writeCategories(&sb, report.Result)
	}
	w.writeFooter(&sb)

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.CrawlReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                       AUCTION CRAWL REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Source:     %s\n", report.SourceURL)
	fmt.Fprintf(sb, "Started:    %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Elapsed:    %s\n", report.Elapsed().Round(time.Millisecond))

	switch {
	case report.TimedOut:
		sb.WriteString("Status:     CANCELLED (partial results)\n")
	case report.ErrorMessage != "":
		fmt.Fprintf(sb, "Status:     ERROR - %s\n", report.ErrorMessage)
	default:
		sb.WriteString("Status:     Complete\n")
	}

	sb.WriteString("\n")
}

// writeSummary writes the category and product counts.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, result *model.CrawlResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "  Categories: %d\n", result.Total)
	fmt.Fprintf(sb, "  Products:   %d\n", result.ProductCount())
	fmt.Fprintf(sb, "  Failed:     %d\n", result.FailedCount())
	sb.WriteString("\n")
}

// writeCategories writes one line per category, in crawl order.
func (w *SimpleWriter) writeCategories(sb *strings.Builder, result *model.CrawlResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CATEGORIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if result.Total == 0 {
		sb.WriteString("  No categories found\n\n")
		return
	}

	for _, c := range result.ProductsByCategories {
		fmt.Fprintf(sb, "  [%s] %s %s", indicator(c), c.ID, c.Name)
		if c.Fetched() {
			fmt.Fprintf(sb, " (%d products)\n", len(c.Products))
		} else {
			sb.WriteString(" (fetch failed)\n")
		}

		if w.verbose {
			for _, p := range c.Products {
				fmt.Fprintf(sb, "      %s\n", p.URL)
			}
		}
	}
	sb.WriteString("\n")
}

// indicator returns a visual marker for the category state.
func indicator(c model.CategoryResult) string {
	switch categoryStatus(c) {
	case "failed":
		return "!"
	case "empty":
		return "-"
	default:
		return "+"
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by auctioncrawl\n")
	sb.WriteString("https://github.com/nao1215/auctioncrawl\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
