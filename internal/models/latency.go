// Package models defines data structures and domain types.
package models

// LatencyRecord is one timed operation from the simulator's performance
// table: a category label and a duration in nanoseconds. Records keep the
// arrival order of the source file, which matters for windowing.
type LatencyRecord struct {
	OperationType string
	LatencyNs     float64
}

// Latencies extracts the raw nanosecond durations in record order.
func Latencies(records []LatencyRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.LatencyNs
	}
	return out
}
