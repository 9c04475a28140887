package stats

import "github.com/probelab/latscope/internal/models"

// SummarizeTrades aggregates the trade table: total count, total volume,
// average trade size, price range and average price. An empty table yields
// a zero-valued TradeStats.
func SummarizeTrades(trades []models.TradeRecord) models.TradeStats {
	if len(trades) == 0 {
		return models.TradeStats{}
	}

	ts := models.TradeStats{
		Count:    len(trades),
		MinPrice: trades[0].Price,
		MaxPrice: trades[0].Price,
	}

	var priceSum float64
	for _, t := range trades {
		ts.TotalVolume += t.Quantity
		priceSum += t.Price
		if t.Price < ts.MinPrice {
			ts.MinPrice = t.Price
		}
		if t.Price > ts.MaxPrice {
			ts.MaxPrice = t.Price
		}
	}

	ts.AvgSize = ts.TotalVolume / float64(ts.Count)
	ts.AvgPrice = priceSum / float64(ts.Count)
	return ts
}
