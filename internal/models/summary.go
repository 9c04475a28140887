package models

// Summary holds descriptive statistics for a latency sequence. All figures
// are nanoseconds; microsecond views are derived via the *Us methods.
// A summary computed from zero records has Count 0 and NaN figures.
type Summary struct {
	Count    int
	MeanNs   float64
	MedianNs float64
	StdNs    float64
	MinNs    float64
	MaxNs    float64
	P95Ns    float64
	P99Ns    float64
	P999Ns   float64
}

// Valid reports whether the summary was computed from at least one record.
func (s Summary) Valid() bool { return s.Count > 0 }

// MeanUs returns the mean latency in microseconds.
func (s Summary) MeanUs() float64 { return s.MeanNs / 1000.0 }

// MedianUs returns the median latency in microseconds.
func (s Summary) MedianUs() float64 { return s.MedianNs / 1000.0 }

// StdUs returns the sample standard deviation in microseconds.
func (s Summary) StdUs() float64 { return s.StdNs / 1000.0 }

// MinUs returns the minimum latency in microseconds.
func (s Summary) MinUs() float64 { return s.MinNs / 1000.0 }

// MaxUs returns the maximum latency in microseconds.
func (s Summary) MaxUs() float64 { return s.MaxNs / 1000.0 }

// P95Us returns the 95th percentile in microseconds.
func (s Summary) P95Us() float64 { return s.P95Ns / 1000.0 }

// P99Us returns the 99th percentile in microseconds.
func (s Summary) P99Us() float64 { return s.P99Ns / 1000.0 }

// P999Us returns the 99.9th percentile in microseconds.
func (s Summary) P999Us() float64 { return s.P999Ns / 1000.0 }
