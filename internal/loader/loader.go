// Package loader reads the simulator's CSV tables into typed record slices.
//
// Loading an individual table produces a tagged outcome rather than a bare
// error: a missing file is a recoverable condition callers branch on, while
// a file that exists but cannot be parsed is the one fatal error kind.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/probelab/latscope/internal/logger"
	"github.com/probelab/latscope/internal/models"
)

// Status classifies the outcome of loading one table.
type Status int

const (
	// StatusLoaded means the table was read successfully (possibly with
	// zero data rows).
	StatusLoaded Status = iota
	// StatusAbsent means the file does not exist. Recoverable: dependent
	// computations are skipped.
	StatusAbsent
	// StatusMalformed means the file exists but could not be parsed into
	// the expected tabular structure.
	StatusMalformed
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusAbsent:
		return "absent"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LatencyTable is the outcome of loading the performance measurement table.
type LatencyTable struct {
	Status  Status
	Records []models.LatencyRecord
	Err     error
}

// TradeTable is the outcome of loading the optional trade table.
type TradeTable struct {
	Status  Status
	Records []models.TradeRecord
	Err     error
}

// tradeTimeLayouts are the timestamp formats the simulator is known to emit.
var tradeTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	time.RFC3339,
}

// LoadLatencies reads the performance table at path. The table must carry a
// latency_ns column; an operation_type column is optional and any other
// columns are ignored.
func LoadLatencies(path string) LatencyTable {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("performance file not found", "path", path)
			return LatencyTable{Status: StatusAbsent}
		}
		return LatencyTable{Status: StatusMalformed, Err: fmt.Errorf("open %s: %w", path, err)}
	}
	defer func() { _ = f.Close() }()

	records, err := parseLatencies(f)
	if err != nil {
		return LatencyTable{Status: StatusMalformed, Err: fmt.Errorf("parse %s: %w", path, err)}
	}

	logger.Info("loaded performance measurements", "rows", len(records), "path", path)
	return LatencyTable{Status: StatusLoaded, Records: records}
}

func parseLatencies(r io.Reader) ([]models.LatencyRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file: missing header row")
	}
	if err != nil {
		return nil, err
	}

	latencyIdx := columnIndex(header, "latency_ns")
	if latencyIdx < 0 {
		return nil, errors.New("missing required column latency_ns")
	}
	opIdx := columnIndex(header, "operation_type")

	var records []models.LatencyRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if latencyIdx >= len(row) {
			return nil, fmt.Errorf("row %d: missing latency_ns field", len(records)+2)
		}
		latency, err := strconv.ParseFloat(strings.TrimSpace(row[latencyIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad latency_ns value %q", len(records)+2, row[latencyIdx])
		}
		rec := models.LatencyRecord{LatencyNs: latency}
		if opIdx >= 0 && opIdx < len(row) {
			rec.OperationType = strings.TrimSpace(row[opIdx])
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadTrades reads the trade table at path. Expected columns are timestamp,
// price and quantity; anything else (order IDs and such) is ignored.
func LoadTrades(path string) TradeTable {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("trade file not found", "path", path)
			return TradeTable{Status: StatusAbsent}
		}
		return TradeTable{Status: StatusMalformed, Err: fmt.Errorf("open %s: %w", path, err)}
	}
	defer func() { _ = f.Close() }()

	records, err := parseTrades(f)
	if err != nil {
		return TradeTable{Status: StatusMalformed, Err: fmt.Errorf("parse %s: %w", path, err)}
	}

	logger.Info("loaded trade records", "rows", len(records), "path", path)
	return TradeTable{Status: StatusLoaded, Records: records}
}

func parseTrades(r io.Reader) ([]models.TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file: missing header row")
	}
	if err != nil {
		return nil, err
	}

	tsIdx := columnIndex(header, "timestamp")
	priceIdx := columnIndex(header, "price")
	qtyIdx := columnIndex(header, "quantity")
	if tsIdx < 0 || priceIdx < 0 || qtyIdx < 0 {
		return nil, errors.New("missing required columns timestamp, price, quantity")
	}

	var records []models.TradeRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if tsIdx >= len(row) || priceIdx >= len(row) || qtyIdx >= len(row) {
			return nil, fmt.Errorf("row %d: too few fields", len(records)+2)
		}

		ts, err := parseTradeTime(strings.TrimSpace(row[tsIdx]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(records)+2, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[priceIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price value %q", len(records)+2, row[priceIdx])
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(row[qtyIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad quantity value %q", len(records)+2, row[qtyIdx])
		}

		records = append(records, models.TradeRecord{Timestamp: ts, Price: price, Quantity: qty})
	}
	return records, nil
}

func parseTradeTime(value string) (time.Time, error) {
	for _, layout := range tradeTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad timestamp value %q", value)
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}
