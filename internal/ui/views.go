package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/probelab/latscope/internal/charts"
	"github.com/probelab/latscope/internal/models"
)

func (m *Model) renderOverview() string {
	if m.result == nil || !m.result.HasData {
		return m.noData()
	}
	res := m.result
	s := res.Overall

	var lines []string
	lines = append(lines, m.statLine("Total Operations", humanize.Comma(int64(s.Count))))
	lines = append(lines, m.statLine("Mean Latency", m.usNs(s.MeanUs(), s.MeanNs)))
	lines = append(lines, m.statLine("Median Latency", m.usNs(s.MedianUs(), s.MedianNs)))
	lines = append(lines, m.statLine("Std Deviation", m.usNs(s.StdUs(), s.StdNs)))
	lines = append(lines, m.statLine("Min / Max", fmt.Sprintf("%s / %s",
		m.usNs(s.MinUs(), s.MinNs), m.usNs(s.MaxUs(), s.MaxNs))))
	lines = append(lines, m.statLine("95th Percentile", m.usNs(s.P95Us(), s.P95Ns)))
	lines = append(lines, m.statLine("99th Percentile", m.usNs(s.P99Us(), s.P99Ns)))
	lines = append(lines, m.statLine("99.9th Percentile", m.usNs(s.P999Us(), s.P999Ns)))

	if s.MeanNs > 0 && !math.IsNaN(s.MeanNs) {
		lines = append(lines, "")
		lines = append(lines, m.statLine("Theoretical Max",
			humanize.CommafWithDigits(1e9/s.MeanNs, 0)+" ops/sec"))
	}

	card := m.styles.Card.Render(
		m.styles.CardTitle.Render("Overall Performance") + "\n" + strings.Join(lines, "\n"))

	spark := ""
	if len(res.Windows) > 0 {
		values := make([]float64, len(res.Windows))
		for i, w := range res.Windows {
			values[i] = w.OpsPerSec
		}
		spark = m.styles.Card.Render(
			m.styles.CardTitle.Render("Throughput") + "\n" +
				charts.Sparkline(values, m.sparkWidth()) + "\n" +
				m.styles.Subtle.Render(fmt.Sprintf("average %.0f ops/sec across %d windows",
					res.AvgThroughput, len(res.Windows))))
	}

	return m.styles.Content.Render(card + "\n" + spark)
}

func (m *Model) renderOperations() string {
	if m.result == nil || !m.result.HasData {
		return m.noData()
	}
	if len(m.result.CategoryOrder) == 0 {
		return m.styles.Content.Render(
			m.styles.Subtle.Render("The input table carries no operation_type column."))
	}

	title := m.styles.CardTitle.Render("Per-Operation Statistics")
	return m.styles.Content.Render(title + "\n" + m.opsTable.View())
}

func (m *Model) renderThroughput() string {
	if m.result == nil || !m.result.HasData {
		return m.noData()
	}
	res := m.result
	if len(res.Windows) == 0 {
		return m.styles.Content.Render(
			m.styles.Subtle.Render("No throughput windows with a defined rate."))
	}

	style := charts.DefaultStyle()
	if m.width > 20 {
		style.Width = m.width - 16
	}
	chart := charts.ThroughputSeries(res.Windows, res.AvgThroughput, style)

	summary := m.styles.Subtle.Render(fmt.Sprintf(
		"%d windows of up to %d records each", len(res.Windows), m.analyzer.Config().WindowSize))

	return m.styles.Content.Render(
		m.styles.CardTitle.Render("Windowed Throughput") + "\n" + chart + "\n" + summary)
}

func (m *Model) renderTrades() string {
	if m.result == nil || !m.result.HasData {
		return m.noData()
	}
	if !m.result.HasTrades {
		return m.styles.Content.Render(
			m.styles.Subtle.Render("No trade data available."))
	}

	t := m.result.TradeStats
	var lines []string
	lines = append(lines, m.statLine("Total Trades", humanize.Comma(int64(t.Count))))
	lines = append(lines, m.statLine("Total Volume", humanize.CommafWithDigits(t.TotalVolume, 0)))
	lines = append(lines, m.statLine("Average Trade Size", fmt.Sprintf("%.1f", t.AvgSize)))
	lines = append(lines, m.statLine("Price Range", fmt.Sprintf("%g - %g", t.MinPrice, t.MaxPrice)))
	lines = append(lines, m.statLine("Average Price", fmt.Sprintf("%.2f", t.AvgPrice)))

	card := m.styles.Card.Render(
		m.styles.CardTitle.Render("Trade Execution") + "\n" + strings.Join(lines, "\n"))

	volume := m.styles.Card.Render(
		m.styles.CardTitle.Render("Cumulative Volume") + "\n" +
			charts.Sparkline(cumulativeVolumes(m.result.Trades), m.sparkWidth()))

	return m.styles.Content.Render(card + "\n" + volume)
}

func cumulativeVolumes(trades []models.TradeRecord) []float64 {
	out := make([]float64, len(trades))
	var total float64
	for i, t := range trades {
		total += t.Quantity
		out[i] = total
	}
	return out
}

func (m *Model) noData() string {
	return m.styles.Content.Render(
		m.styles.Warning.Render("No performance data loaded.") + "\n" +
			m.styles.Subtle.Render("Press r to retry once the input file exists."))
}

func (m *Model) statLine(label, value string) string {
	return m.styles.Label.Render(label) + m.styles.Value.Render(value)
}

func (m *Model) usNs(usVal, nsVal float64) string {
	if math.IsNaN(nsVal) {
		return "N/A"
	}
	return fmt.Sprintf("%.3f μs (%.1f ns)", usVal, nsVal)
}

func (m *Model) sparkWidth() int {
	w := m.width - 12
	if w < 20 {
		w = 20
	}
	if w > 100 {
		w = 100
	}
	return w
}
