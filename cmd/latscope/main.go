// Package main is the entry point for latscope, the offline latency
// analytics tool for the order book simulator. It parses flags, wires the
// configuration and runs the analysis pipeline in batch or dashboard mode.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/probelab/latscope/internal/analyzer"
	"github.com/probelab/latscope/internal/charts"
	"github.com/probelab/latscope/internal/config"
	"github.com/probelab/latscope/internal/ui"
	"github.com/probelab/latscope/internal/version"
)

type options struct {
	csvPath    string
	outputDir  string
	plotsOnly  bool
	reportOnly bool
	tui        bool
	watch      bool
}

func main() {
	var (
		outputDir   = flag.String("output-dir", "", "output directory for analysis results (default: analysis_output)")
		plotsOnly   = flag.Bool("plots-only", false, "generate only chart artifacts, skip the text report")
		reportOnly  = flag.Bool("report-only", false, "generate only the text report, skip chart artifacts")
		tuiMode     = flag.Bool("tui", false, "open the interactive dashboard instead of batch output")
		watch       = flag.Bool("watch", false, "with --tui: re-run the analysis when the input file changes")
		showVersion = flag.Bool("version", false, "show version information")
	)
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(2)
	}
	if *plotsOnly && *reportOnly {
		fmt.Fprintln(os.Stderr, "Error: --plots-only and --report-only are mutually exclusive")
		os.Exit(2)
	}

	opts := options{
		csvPath:    flag.Arg(0),
		outputDir:  *outputDir,
		plotsOnly:  *plotsOnly,
		reportOnly: *reportOnly,
		tui:        *tuiMode,
		watch:      *watch,
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error
// handling. A returned error means the run failed fatally; degraded output
// from missing inputs returns nil.
func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}

	a := analyzer.New(cfg)

	res, err := a.Run(opts.csvPath)
	if err != nil {
		return err
	}
	a.CheckAlert(res)

	if opts.tui {
		return ui.Run(a, res, opts.watch)
	}

	switch {
	case opts.reportOnly:
		text, err := a.Report(res, false)
		if err != nil {
			return err
		}
		fmt.Print(text)

	case opts.plotsOnly:
		if _, err := a.WriteCharts(res, charts.DefaultStyle()); err != nil {
			return err
		}

	default:
		text, err := a.Report(res, true)
		if err != nil {
			return err
		}
		fmt.Print(text)
		if _, err := a.WriteCharts(res, charts.DefaultStyle()); err != nil {
			return err
		}
	}

	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `latscope - latency analytics for the order book simulator

Usage:
  latscope [flags] <performance.csv>

Flags:
  --output-dir DIR   Output directory for analysis results (default: analysis_output)
  --plots-only       Generate only chart artifacts, skip the text report
  --report-only      Generate only the text report, skip chart artifacts
  --tui              Open the interactive dashboard
  --watch            With --tui: re-run the analysis when the input changes
  -v, --version      Show version information
  -h, --help         Show this help message

Environment Variables:
  LATSCOPE_TRADE_FILE    Trade table location (default: data/simulation_trades.csv)
  LATSCOPE_OUTPUT_DIR    Output directory (default: analysis_output)
  LATSCOPE_WINDOW_SIZE   Records per throughput window (default: 1000)
  LATSCOPE_ALERT_P99_US  Desktop alert threshold for overall p99, in μs (0 disables)

Configuration:
  A .env file is read from the current directory or ~/.config/latscope/.env.`)
}
