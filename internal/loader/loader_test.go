package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadLatencies_FullHeader(t *testing.T) {
	// Header layout as written by the simulator.
	path := writeFile(t, "perf.csv",
		"operation_type,order_id,latency_ns,latency_us\n"+
			"add_order,1,1500,1.500\n"+
			"add_order,2,2500,2.500\n"+
			"cancel_order,3,800,0.800\n")

	table := LoadLatencies(path)

	if table.Status != StatusLoaded {
		t.Fatalf("Status = %v, want loaded (err: %v)", table.Status, table.Err)
	}
	if len(table.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(table.Records))
	}
	if table.Records[0].OperationType != "add_order" || table.Records[0].LatencyNs != 1500 {
		t.Errorf("first record = %+v", table.Records[0])
	}
	if table.Records[2].OperationType != "cancel_order" || table.Records[2].LatencyNs != 800 {
		t.Errorf("third record = %+v", table.Records[2])
	}
}

func TestLoadLatencies_WithoutOperationType(t *testing.T) {
	path := writeFile(t, "perf.csv", "latency_ns\n100\n200\n")

	table := LoadLatencies(path)

	if table.Status != StatusLoaded {
		t.Fatalf("Status = %v, want loaded (err: %v)", table.Status, table.Err)
	}
	if len(table.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(table.Records))
	}
	if table.Records[0].OperationType != "" {
		t.Errorf("OperationType = %q, want empty", table.Records[0].OperationType)
	}
}

func TestLoadLatencies_HeaderOnly(t *testing.T) {
	path := writeFile(t, "perf.csv", "operation_type,latency_ns\n")

	table := LoadLatencies(path)

	if table.Status != StatusLoaded {
		t.Fatalf("Status = %v, want loaded (err: %v)", table.Status, table.Err)
	}
	if len(table.Records) != 0 {
		t.Errorf("got %d records, want 0", len(table.Records))
	}
}

func TestLoadLatencies_Missing(t *testing.T) {
	table := LoadLatencies(filepath.Join(t.TempDir(), "nope.csv"))

	if table.Status != StatusAbsent {
		t.Fatalf("Status = %v, want absent", table.Status)
	}
	if table.Err != nil {
		t.Errorf("Err = %v, want nil", table.Err)
	}
}

func TestLoadLatencies_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"missing latency column", "operation_type,order_id\nadd,1\n"},
		{"bad latency value", "latency_ns\nnot-a-number\n"},
		{"short row", "operation_type,order_id,latency_ns\nadd,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := LoadLatencies(writeFile(t, "perf.csv", tt.content))
			if table.Status != StatusMalformed {
				t.Errorf("Status = %v, want malformed", table.Status)
			}
			if table.Err == nil {
				t.Error("Err = nil, want parse error")
			}
		})
	}
}

func TestLoadTrades(t *testing.T) {
	path := writeFile(t, "trades.csv",
		"timestamp,buyOrderID,sellOrderID,price,quantity\n"+
			"2024-03-01 09:30:00,1,2,100.50,10\n"+
			"2024-03-01 09:30:01,3,4,99.75,25\n")

	table := LoadTrades(path)

	if table.Status != StatusLoaded {
		t.Fatalf("Status = %v, want loaded (err: %v)", table.Status, table.Err)
	}
	if len(table.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(table.Records))
	}

	first := table.Records[0]
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if !first.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", first.Timestamp, want)
	}
	if first.Price != 100.50 || first.Quantity != 10 {
		t.Errorf("first record = %+v", first)
	}
}

func TestLoadTrades_Missing(t *testing.T) {
	table := LoadTrades(filepath.Join(t.TempDir(), "nope.csv"))
	if table.Status != StatusAbsent {
		t.Fatalf("Status = %v, want absent", table.Status)
	}
}

func TestLoadTrades_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing columns", "timestamp,price\n2024-03-01 09:30:00,100\n"},
		{"bad timestamp", "timestamp,price,quantity\nyesterday,100,10\n"},
		{"bad price", "timestamp,price,quantity\n2024-03-01 09:30:00,cheap,10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := LoadTrades(writeFile(t, "trades.csv", tt.content))
			if table.Status != StatusMalformed {
				t.Errorf("Status = %v, want malformed", table.Status)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusLoaded.String() != "loaded" || StatusAbsent.String() != "absent" || StatusMalformed.String() != "malformed" {
		t.Error("unexpected status names")
	}
}
