package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/auctioncrawl/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// Tables, alerts and a mermaid pie chart come from nao1215/markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CrawlReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	if report.Result != nil {
		w.writeSummary(md, report.Result)
		w.writeCategories(md, report.Result)
		w.writeProducts(md, report.Result)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.CrawlReport) {
	md.H1("Auction Crawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.SourceURL + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed().Round(time.Millisecond).String()},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.CrawlReport) string {
	if report.TimedOut {
		return "⚠️ Cancelled (partial results)"
	}
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeSummary writes the count table, the pie chart and an alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *model.CrawlResult) {
	md.H2("Summary")
	md.PlainText("")

	failed := result.FailedCount()
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Categories", strconv.Itoa(result.Total)},
			{"Fetched", strconv.Itoa(result.Total - failed)},
			{"Failed", strconv.Itoa(failed)},
			{"**Products**", "**" + strconv.Itoa(result.ProductCount()) + "**"},
		},
	})
	md.PlainText("")

	if result.Total > 0 {
		w.writePieChart(md, result)
	}

	w.writeAlert(md, result)
}

// writePieChart writes a mermaid pie chart of category outcomes.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, result *model.CrawlResult) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Category Outcomes"),
		piechart.WithShowData(true),
	)

	counts := map[string]uint64{}
	for _, c := range result.ProductsByCategories {
		counts[categoryStatus(c)]++
	}
	for _, label := range []string{"ok", "empty", "failed"} {
		if counts[label] > 0 {
			chart.LabelAndIntValue(label, counts[label])
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert describing partial failure.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.CrawlResult) {
	failed := result.FailedCount()
	switch {
	case result.Total == 0:
		md.Note("No categories were found on the category list page.")
	case failed == result.Total:
		md.Cautionf("Every category failed to fetch (%d of %d).", failed, result.Total)
	case failed > 0:
		md.Warningf("%d of %d categories could not be fetched and have no product data.", failed, result.Total)
	default:
		md.Tip("All categories were fetched.")
	}
	md.PlainText("")
}

// writeCategories writes one table row per category, in crawl order.
func (w *MarkdownWriter) writeCategories(md *markdown.Markdown, result *model.CrawlResult) {
	md.H2("Categories")
	md.PlainText("")

	if result.Total == 0 {
		md.PlainText("No categories.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(result.ProductsByCategories))
	for i, c := range result.ProductsByCategories {
		products := "-"
		if c.Fetched() {
			products = strconv.Itoa(len(c.Products))
		}
		rows[i] = []string{
			c.ID,
			escapeCell(c.Name),
			products,
			statusCell(c),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "Products", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeProducts writes a collapsible product list for each category with products.
func (w *MarkdownWriter) writeProducts(md *markdown.Markdown, result *model.CrawlResult) {
	if result.ProductCount() == 0 {
		return
	}

	md.H2("Products")
	md.PlainText("")

	for _, c := range result.ProductsByCategories {
		if len(c.Products) == 0 {
			continue
		}
		urls := make([]string, len(c.Products))
		for i, p := range c.Products {
			urls[i] = "- " + p.URL
		}
		md.Details(c.ID+" "+c.Name, strings.Join(urls, "\n"))
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [auctioncrawl](https://github.com/nao1215/auctioncrawl)*")
}

func statusCell(c model.CategoryResult) string {
	switch categoryStatus(c) {
	case "failed":
		return "❌ Failed"
	case "empty":
		return "➖ Empty"
	default:
		return "✅ OK"
	}
}

// escapeCell keeps pipes in category names from breaking the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
