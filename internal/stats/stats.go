// Package stats computes descriptive statistics over latency sequences.
// All functions are pure; they never mutate their input.
package stats

import (
	"math"
	"sort"

	"github.com/probelab/latscope/internal/models"
)

// Summarize computes count, mean, median, sample standard deviation, min,
// max and the tail percentiles for a latency sequence. An empty sequence
// yields a Summary with Count 0 and NaN figures rather than an error.
func Summarize(records []models.LatencyRecord) models.Summary {
	n := len(records)
	if n == 0 {
		nan := math.NaN()
		return models.Summary{
			MeanNs: nan, MedianNs: nan, StdNs: nan,
			MinNs: nan, MaxNs: nan,
			P95Ns: nan, P99Ns: nan, P999Ns: nan,
		}
	}

	sorted := make([]float64, n)
	var sum float64
	for i, r := range records {
		sorted[i] = r.LatencyNs
		sum += r.LatencyNs
	}
	sort.Float64s(sorted)

	mean := sum / float64(n)

	// Sample standard deviation (N-1 denominator); undefined for a single
	// observation.
	std := math.NaN()
	if n > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - mean
			sq += d * d
		}
		std = math.Sqrt(sq / float64(n-1))
	}

	return models.Summary{
		Count:    n,
		MeanNs:   mean,
		MedianNs: percentileSorted(sorted, 50),
		StdNs:    std,
		MinNs:    sorted[0],
		MaxNs:    sorted[n-1],
		P95Ns:    percentileSorted(sorted, 95),
		P99Ns:    percentileSorted(sorted, 99),
		P999Ns:   percentileSorted(sorted, 99.9),
	}
}

// SummarizeByCategory computes an independent summary per distinct
// operation_type value. Records with an empty category are ignored, so the
// per-category counts sum to the overall count exactly when every record
// carries a label.
func SummarizeByCategory(records []models.LatencyRecord) map[string]models.Summary {
	grouped := make(map[string][]models.LatencyRecord)
	for _, r := range records {
		if r.OperationType == "" {
			continue
		}
		grouped[r.OperationType] = append(grouped[r.OperationType], r)
	}

	summaries := make(map[string]models.Summary, len(grouped))
	for op, group := range grouped {
		summaries[op] = Summarize(group)
	}
	return summaries
}

// Categories returns the distinct non-empty operation_type values in order
// of first appearance. Report sections follow this order so output stays
// stable for identical input.
func Categories(records []models.LatencyRecord) []string {
	seen := make(map[string]bool)
	var order []string
	for _, r := range records {
		if r.OperationType == "" || seen[r.OperationType] {
			continue
		}
		seen[r.OperationType] = true
		order = append(order, r.OperationType)
	}
	return order
}

// Percentile returns the rank-r percentile of values, using linear
// interpolation between closest ranks: for a sorted sequence of length n
// the fractional index is r/100 * (n-1) and the result is interpolated
// between its floor and ceiling elements. Ranks outside [0, 100] are
// clamped to the range. Returns NaN for an empty slice.
func Percentile(values []float64, rank float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentileSorted(sorted, rank)
}

func percentileSorted(sorted []float64, rank float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	if rank < 0 {
		rank = 0
	}
	if rank > 100 {
		rank = 100
	}

	f := rank / 100.0 * float64(n-1)
	lo := int(math.Floor(f))
	hi := int(math.Ceil(f))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := f - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
