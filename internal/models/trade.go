package models

import "time"

// TradeRecord is one executed transaction from the simulated market,
// used only for supplementary reporting.
type TradeRecord struct {
	Timestamp time.Time
	Price     float64
	Quantity  float64
}

// TradeStats aggregates the optional trade table for the report.
type TradeStats struct {
	Count       int
	TotalVolume float64
	AvgSize     float64
	MinPrice    float64
	MaxPrice    float64
	AvgPrice    float64
}
