// Package analyzer orchestrates the batch pipeline: load the tables once,
// compute every derived statistic into an immutable Result, then fan the
// result out to the report, the chart artifacts and the dashboard.
package analyzer

import (
	"fmt"
	"time"

	"github.com/probelab/latscope/internal/charts"
	"github.com/probelab/latscope/internal/config"
	"github.com/probelab/latscope/internal/loader"
	"github.com/probelab/latscope/internal/logger"
	"github.com/probelab/latscope/internal/models"
	"github.com/probelab/latscope/internal/report"
	"github.com/probelab/latscope/internal/stats"
	"github.com/probelab/latscope/internal/throughput"
)

// Result is the complete outcome of one analysis pass. It is computed fresh
// on every run and never mutated afterwards.
type Result struct {
	SourcePath  string
	GeneratedAt time.Time

	// HasData is false when the primary table was absent; every derived
	// field below is then zero-valued and consumers must skip their output.
	HasData bool

	Records []models.LatencyRecord
	Overall models.Summary

	CategoryOrder []string
	Categories    map[string]models.Summary

	Windows       []models.Window
	AvgThroughput float64

	HasTrades  bool
	Trades     []models.TradeRecord
	TradeStats models.TradeStats
}

// Analyzer runs the pipeline for one input file per invocation.
type Analyzer struct {
	cfg *config.Config
}

// New creates an analyzer with the given configuration.
func New(cfg *config.Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() *config.Config {
	return a.cfg
}

// Run loads the tables and computes all statistics. A missing primary file
// yields a Result with HasData false and a nil error; a primary file that
// exists but cannot be parsed is the one fatal condition and returns an
// error. A malformed trade table is downgraded to a warning and trade
// outputs are disabled.
func (a *Analyzer) Run(path string) (*Result, error) {
	res := &Result{
		SourcePath:  path,
		GeneratedAt: time.Now(),
	}

	lt := loader.LoadLatencies(path)
	switch lt.Status {
	case loader.StatusMalformed:
		return nil, lt.Err
	case loader.StatusAbsent:
		return res, nil
	}

	res.HasData = true
	res.Records = lt.Records
	res.Overall = stats.Summarize(lt.Records)
	res.CategoryOrder = stats.Categories(lt.Records)
	res.Categories = stats.SummarizeByCategory(lt.Records)
	res.Windows = throughput.Windows(lt.Records, a.cfg.WindowSize)
	res.AvgThroughput = throughput.Average(res.Windows)

	tt := loader.LoadTrades(a.cfg.TradeFilePath)
	switch tt.Status {
	case loader.StatusLoaded:
		res.HasTrades = true
		res.Trades = tt.Records
		res.TradeStats = stats.SummarizeTrades(tt.Records)
	case loader.StatusMalformed:
		logger.Warn("trade file unreadable, skipping trade statistics", "err", tt.Err)
	}

	return res, nil
}

// Report renders the performance report. When persist is true it is also
// written to <outputDir>/performance_report.txt. Returns the rendered text;
// an absent dataset yields empty text and no file.
func (a *Analyzer) Report(res *Result, persist bool) (string, error) {
	if !res.HasData {
		logger.Warn("no data loaded, skipping report")
		return "", nil
	}

	data := report.Data{
		Overall:       res.Overall,
		CategoryOrder: res.CategoryOrder,
		Categories:    res.Categories,
	}
	if res.HasTrades {
		ts := res.TradeStats
		data.Trades = &ts
	}

	if !persist {
		return report.Render(data), nil
	}

	text, path, err := report.Write(data, a.cfg.OutputDir)
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}
	logger.Info("report saved", "path", path)
	return text, nil
}

// WriteCharts renders the chart artifacts into the output directory and
// returns the written paths. An absent dataset writes nothing.
func (a *Analyzer) WriteCharts(res *Result, style charts.Style) ([]string, error) {
	if !res.HasData {
		logger.Warn("no data loaded, skipping charts")
		return nil, nil
	}

	in := charts.Input{
		Latencies:     models.Latencies(res.Records),
		CategoryOrder: res.CategoryOrder,
		Categories:    res.Categories,
		Windows:       res.Windows,
		AvgThroughput: res.AvgThroughput,
		Trades:        res.Trades,
	}

	paths, err := charts.WriteAll(a.cfg.OutputDir, in, style)
	if err != nil {
		return paths, fmt.Errorf("charts: %w", err)
	}
	for _, p := range paths {
		logger.Info("chart saved", "path", p)
	}
	return paths, nil
}
