package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/ansi"

	"github.com/probelab/latscope/internal/models"
)

// Artifact file names under the output directory. They match the basenames
// of the plots the simulator's original tooling produced.
const (
	DistributionFile = "latency_distribution.txt"
	PercentilesFile  = "latency_percentiles.txt"
	ComparisonFile   = "operation_comparison.txt"
	ThroughputFile   = "throughput_analysis.txt"
	TradeFile        = "trade_analysis.txt"
)

// Input bundles the computed data the chart artifacts are rendered from.
type Input struct {
	Latencies     []float64
	CategoryOrder []string
	Categories    map[string]models.Summary
	Windows       []models.Window
	AvgThroughput float64
	Trades        []models.TradeRecord
}

// WriteAll renders every applicable chart into dir and returns the paths
// written. The trade chart is produced only when trade data is present; the
// comparison chart only when categories exist.
func WriteAll(dir string, in Input, style Style) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	artifacts := []struct {
		name    string
		content string
		skip    bool
	}{
		{DistributionFile, Histogram(in.Latencies, style), false},
		{PercentilesFile, PercentileCurve(in.Latencies, style), false},
		{ComparisonFile, OperationComparison(in.CategoryOrder, in.Categories, style), len(in.CategoryOrder) == 0},
		{ThroughputFile, ThroughputSeries(in.Windows, in.AvgThroughput, style), false},
		{TradeFile, CumulativeVolume(in.Trades, style), len(in.Trades) == 0},
	}

	var written []string
	for _, a := range artifacts {
		if a.skip {
			continue
		}
		path := filepath.Join(dir, a.name)
		// Artifacts are plain text; drop any styling escape sequences.
		content := ansi.Strip(a.content)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("write chart %s: %w", a.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
