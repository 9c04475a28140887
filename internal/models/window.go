package models

// Window is one throughput measurement over a fixed-size slice of the
// latency sequence. StartIndex is the offset of the window's first record.
type Window struct {
	StartIndex int
	OpsPerSec  float64
}
