// Package charts renders the analysis visuals as plain-text artifacts.
//
// The artifacts mirror the plot set of the simulator's original analysis
// tooling (distribution, percentile curve, per-operation comparison,
// throughput series, trade volume) but are ASCII renderings written as .txt
// files so the pipeline has no image dependencies.
package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/probelab/latscope/internal/models"
	"github.com/probelab/latscope/internal/stats"
)

// Style is the presentation configuration for all charts. It is constructed
// once at startup and passed down explicitly; there is no package-level
// styling state.
type Style struct {
	Width          int
	Height         int
	HistogramBins  int
	HistogramWidth int
}

// DefaultStyle returns dimensions that fit a standard terminal.
func DefaultStyle() Style {
	return Style{
		Width:          72,
		Height:         14,
		HistogramBins:  20,
		HistogramWidth: 50,
	}
}

// Histogram renders a horizontal-bar frequency distribution of the latency
// values, bucketed into style.HistogramBins equal-width bins.
func Histogram(values []float64, style Style) string {
	if len(values) == 0 {
		return "No data available\n"
	}

	bins := style.HistogramBins
	if bins < 1 {
		bins = DefaultStyle().HistogramBins
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		// All values identical: everything lands in one bin.
		counts[0] = len(values)
	} else {
		for _, v := range values {
			// NaN values convert to an arbitrary int, so clamp both ends.
			idx := int((v - lo) / width)
			if idx < 0 {
				idx = 0
			}
			if idx >= bins {
				idx = bins - 1
			}
			counts[idx] = counts[idx] + 1
		}
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	barWidth := style.HistogramWidth
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString("Latency distribution (ns)\n\n")
	for i, c := range counts {
		binLo := lo + float64(i)*width
		binHi := binLo + width
		barLen := 0
		if maxCount > 0 {
			barLen = c * barWidth / maxCount
		}
		fmt.Fprintf(&b, "%12.1f - %-12.1f │%s %d\n",
			binLo, binHi, strings.Repeat("█", barLen), c)
	}
	return b.String()
}

// PercentileCurve renders the latency value at each integer percentile rank
// from 0 to 100 as a line chart.
func PercentileCurve(values []float64, style Style) string {
	if len(values) == 0 {
		return "No data available\n"
	}

	series := make([]float64, 101)
	for rank := 0; rank <= 100; rank++ {
		series[rank] = stats.Percentile(values, float64(rank))
	}

	return asciigraph.Plot(series,
		asciigraph.Height(style.Height),
		asciigraph.Width(style.Width),
		asciigraph.Caption("Latency percentiles P0-P100 (ns)"),
	) + "\n"
}

// OperationComparison renders mean latency per operation type as a
// horizontal bar chart, one bar per category in the given order.
func OperationComparison(order []string, categories map[string]models.Summary, style Style) string {
	if len(order) == 0 {
		return "No data available\n"
	}

	maxLabel := 0
	maxMean := 0.0
	for _, op := range order {
		if len(op) > maxLabel {
			maxLabel = len(op)
		}
		if m := categories[op].MeanNs; m > maxMean {
			maxMean = m
		}
	}
	if maxMean == 0 {
		maxMean = 1
	}

	barWidth := style.Width - maxLabel - 14
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString("Mean latency by operation type (ns)\n\n")
	for _, op := range order {
		s, ok := categories[op]
		if !ok {
			continue
		}
		barLen := int(s.MeanNs / maxMean * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}
		fmt.Fprintf(&b, "%*s │%s %.1f\n",
			maxLabel, op, strings.Repeat("█", barLen), s.MeanNs)
	}
	return b.String()
}

// ThroughputSeries renders the windowed throughput estimates as a line
// chart, captioned with the average across windows.
func ThroughputSeries(windows []models.Window, avg float64, style Style) string {
	if len(windows) == 0 {
		return "No data available\n"
	}

	series := make([]float64, len(windows))
	for i, w := range windows {
		series[i] = w.OpsPerSec
	}

	caption := "Throughput per window (ops/sec)"
	if !math.IsNaN(avg) {
		caption = fmt.Sprintf("Throughput per window (ops/sec), average %.0f", avg)
	}

	return asciigraph.Plot(series,
		asciigraph.Height(style.Height),
		asciigraph.Width(style.Width),
		asciigraph.Caption(caption),
	) + "\n"
}

// CumulativeVolume renders the running total of traded quantity over the
// trade sequence.
func CumulativeVolume(trades []models.TradeRecord, style Style) string {
	if len(trades) == 0 {
		return "No data available\n"
	}

	series := make([]float64, len(trades))
	var total float64
	for i, t := range trades {
		total += t.Quantity
		series[i] = total
	}

	return asciigraph.Plot(series,
		asciigraph.Height(style.Height),
		asciigraph.Width(style.Width),
		asciigraph.Caption("Cumulative trade volume"),
	) + "\n"
}

// Sparkline renders a compact single-line chart of values, used inline by
// the dashboard views.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := float64(len(values)) / float64(width)
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		v := values[int(float64(i)*step)]
		level := int(v / maxVal * float64(len(sparkChars)-1))
		if level >= len(sparkChars) {
			level = len(sparkChars) - 1
		}
		if level < 0 {
			level = 0
		}
		b.WriteRune(sparkChars[level])
	}
	return b.String()
}
