// Package report renders computed statistics into the fixed-layout plain
// text performance report.
package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/probelab/latscope/internal/models"
)

// FileName is the report file written under the output directory.
const FileName = "performance_report.txt"

// Data carries everything the renderer needs for one report. CategoryOrder
// fixes the order of the per-operation subsections; Trades is nil when no
// trade table was loaded, which omits that section entirely.
type Data struct {
	Overall       models.Summary
	CategoryOrder []string
	Categories    map[string]models.Summary
	Trades        *models.TradeStats
}

const (
	bannerWidth  = 60
	dividerWidth = 40
)

// Render produces the report text. Output is deterministic for identical
// input; summaries without data render as N/A instead of faulting.
func Render(d Data) string {
	banner := strings.Repeat("=", bannerWidth)
	divider := strings.Repeat("-", dividerWidth)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(banner)
	line("LOW-LATENCY ORDER BOOK SIMULATOR - PERFORMANCE REPORT")
	line(banner)
	line("")

	overall := d.Overall
	line("OVERALL PERFORMANCE STATISTICS:")
	line(divider)
	line("Total Operations: %s", humanize.Comma(int64(overall.Count)))
	line("Mean Latency: %s", usNs(overall.MeanUs(), overall.MeanNs))
	line("Median Latency: %s", usNs(overall.MedianUs(), overall.MedianNs))
	line("Standard Deviation: %s", usNs(overall.StdUs(), overall.StdNs))
	line("Min Latency: %s", usNs(overall.MinUs(), overall.MinNs))
	line("Max Latency: %s", usNs(overall.MaxUs(), overall.MaxNs))
	line("95th Percentile: %s", usNs(overall.P95Us(), overall.P95Ns))
	line("99th Percentile: %s", usNs(overall.P99Us(), overall.P99Ns))
	line("99.9th Percentile: %s", usNs(overall.P999Us(), overall.P999Ns))
	line("")

	// Serial throughput ceiling from the mean per-operation latency.
	if overall.MeanNs > 0 && !math.IsNaN(overall.MeanNs) {
		line("Theoretical Max Throughput: %s ops/sec", humanize.CommafWithDigits(1e9/overall.MeanNs, 0))
		line("")
	}

	if len(d.CategoryOrder) > 0 {
		line("PER-OPERATION STATISTICS:")
		line(divider)
		for _, op := range d.CategoryOrder {
			s, ok := d.Categories[op]
			if !ok {
				continue
			}
			line("")
			line("%s:", strings.ToUpper(op))
			line("  Operations: %s", humanize.Comma(int64(s.Count)))
			line("  Mean Latency: %s μs", us(s.MeanUs()))
			line("  Median Latency: %s μs", us(s.MedianUs()))
			line("  95th Percentile: %s μs", us(s.P95Us()))
			line("  99th Percentile: %s μs", us(s.P99Us()))
		}
		line("")
	}

	if d.Trades != nil {
		t := d.Trades
		line(banner)
		line("TRADE EXECUTION STATISTICS:")
		line(divider)
		line("Total Trades: %s", humanize.Comma(int64(t.Count)))
		line("Total Volume: %s", humanize.CommafWithDigits(t.TotalVolume, 0))
		line("Average Trade Size: %.1f", t.AvgSize)
		line("Price Range: %s - %s", price(t.MinPrice), price(t.MaxPrice))
		line("Average Trade Price: %.2f", t.AvgPrice)
		line("")
	}

	line(banner)
	line("END OF REPORT")
	line(banner)

	return b.String()
}

// Write renders the report and persists it verbatim under dir, returning
// the text and the file path.
func Write(d Data, dir string) (string, string, error) {
	text := Render(d)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", "", fmt.Errorf("write report: %w", err)
	}
	return text, path, nil
}

// usNs formats a latency as "X.XXX μs (Y.Y ns)", or N/A when undefined.
func usNs(usVal, nsVal float64) string {
	if math.IsNaN(nsVal) {
		return "N/A"
	}
	return fmt.Sprintf("%.3f μs (%.1f ns)", usVal, nsVal)
}

func us(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", v)
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
