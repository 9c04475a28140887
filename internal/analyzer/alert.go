package analyzer

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/gen2brain/beeep"

	"github.com/probelab/latscope/internal/logger"
)

// CheckAlert sends a desktop notification when the overall 99th percentile
// exceeds the configured threshold. Notification delivery is best-effort;
// failures are ignored like every other non-fatal condition.
func (a *Analyzer) CheckAlert(res *Result) bool {
	threshold := a.cfg.AlertP99Us
	if threshold <= 0 || !res.HasData {
		return false
	}

	p99 := res.Overall.P99Us()
	if math.IsNaN(p99) || p99 <= threshold {
		return false
	}

	title := "Latency regression detected"
	body := fmt.Sprintf("p99 latency %.3f μs exceeds the %.3f μs threshold (%s operations)",
		p99, threshold, humanize.Comma(int64(res.Overall.Count)))
	_ = beeep.Notify(title, body, "")

	logger.Warn("p99 latency above alert threshold",
		"p99_us", p99, "threshold_us", threshold)
	return true
}
