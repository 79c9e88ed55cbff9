package dataset

import (
	"fmt"
	"log/slog"

	"github.com/montanaflynn/stats"

	"odooseed/pkg/contracts/domain"
)

// CatalogSummary describes the sales prices of an exported catalog
type CatalogSummary struct {
	Products    int     `json:"products"`
	MeanPrice   float64 `json:"mean_price"`
	MedianPrice float64 `json:"median_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	MeanMargin  float64 `json:"mean_margin"`
	TotalWeight float64 `json:"total_weight"`
}

// SummarizeCatalog computes price statistics over products
func SummarizeCatalog(products []domain.Product) (CatalogSummary, error) {
	if len(products) == 0 {
		return CatalogSummary{}, fmt.Errorf("empty catalog")
	}

	prices := make(stats.Float64Data, len(products))
	margins := make(stats.Float64Data, len(products))
	weights := make(stats.Float64Data, len(products))
	for i, p := range products {
		prices[i] = p.SalesPrice
		margins[i] = p.Margin()
		weights[i] = p.Weight
	}

	summary := CatalogSummary{Products: len(products)}
	var err error
	if summary.MeanPrice, err = prices.Mean(); err != nil {
		return CatalogSummary{}, fmt.Errorf("mean price: %w", err)
	}
	if summary.MedianPrice, err = prices.Median(); err != nil {
		return CatalogSummary{}, fmt.Errorf("median price: %w", err)
	}
	if summary.MinPrice, err = prices.Min(); err != nil {
		return CatalogSummary{}, fmt.Errorf("min price: %w", err)
	}
	if summary.MaxPrice, err = prices.Max(); err != nil {
		return CatalogSummary{}, fmt.Errorf("max price: %w", err)
	}
	if summary.MeanMargin, err = margins.Mean(); err != nil {
		return CatalogSummary{}, fmt.Errorf("mean margin: %w", err)
	}
	if summary.TotalWeight, err = weights.Sum(); err != nil {
		return CatalogSummary{}, fmt.Errorf("total weight: %w", err)
	}
	return summary, nil
}

// LogValue implements slog.LogValuer
func (s CatalogSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("products", s.Products),
		slog.Float64("mean_price", s.MeanPrice),
		slog.Float64("median_price", s.MedianPrice),
		slog.Float64("min_price", s.MinPrice),
		slog.Float64("max_price", s.MaxPrice),
		slog.Float64("mean_margin", s.MeanMargin),
		slog.Float64("total_weight", s.TotalWeight),
	)
}
