// Package throughput estimates windowed operation rates from the ordered
// latency sequence.
package throughput

import (
	"math"

	"github.com/probelab/latscope/internal/models"
)

// DefaultWindowSize is the number of records per throughput window.
const DefaultWindowSize = 1000

// Windows partitions records into consecutive, non-overlapping windows of up
// to size records (the final window may be shorter) and computes
// operations/second for each from the summed latency. Windows whose total
// time is zero yield an undefined rate and are omitted from the series.
func Windows(records []models.LatencyRecord, size int) []models.Window {
	if size <= 0 {
		size = DefaultWindowSize
	}

	var windows []models.Window
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}

		var totalNs float64
		for _, r := range records[start:end] {
			totalNs += r.LatencyNs
		}
		if totalNs > 0 {
			windows = append(windows, models.Window{
				StartIndex: start,
				OpsPerSec:  float64(end-start) * 1e9 / totalNs,
			})
		}
	}
	return windows
}

// Average returns the arithmetic mean throughput across windows, or NaN
// when the series is empty.
func Average(windows []models.Window) float64 {
	if len(windows) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, w := range windows {
		sum += w.OpsPerSec
	}
	return sum / float64(len(windows))
}
