package models

import (
	"math"
	"testing"
)

func TestSummary_UnitConversion(t *testing.T) {
	s := Summary{
		Count:    1,
		MeanNs:   1500,
		MedianNs: 1000,
		P99Ns:    2750,
	}

	if got := s.MeanUs(); got != 1.5 {
		t.Errorf("MeanUs() = %v, want 1.5", got)
	}
	if got := s.MedianUs(); got != 1 {
		t.Errorf("MedianUs() = %v, want 1", got)
	}
	if got := s.P99Us(); got != 2.75 {
		t.Errorf("P99Us() = %v, want 2.75", got)
	}
}

func TestSummary_Valid(t *testing.T) {
	if (Summary{}).Valid() {
		t.Error("zero-value summary reported valid")
	}
	if !(Summary{Count: 1}).Valid() {
		t.Error("summary with records reported invalid")
	}
}

func TestSummary_NaNPropagates(t *testing.T) {
	s := Summary{StdNs: math.NaN()}
	if !math.IsNaN(s.StdUs()) {
		t.Errorf("StdUs() = %v, want NaN", s.StdUs())
	}
}

func TestLatencies(t *testing.T) {
	records := []LatencyRecord{
		{OperationType: "add_order", LatencyNs: 100},
		{OperationType: "cancel_order", LatencyNs: 250},
	}

	got := Latencies(records)
	if len(got) != 2 || got[0] != 100 || got[1] != 250 {
		t.Errorf("Latencies() = %v", got)
	}
}
