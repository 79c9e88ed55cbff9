package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odooseed/internal/shared/testutil"
	"odooseed/pkg/contracts/domain"
)

func TestSummarizeCatalog(t *testing.T) {
	products := BuildProducts(Catalog(), NewBarcodeGenerator(1))

	summary, err := SummarizeCatalog(products)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Products)
	assert.InDelta(t, 7.7, summary.MeanPrice, 1e-9)
	assert.InDelta(t, 7.0, summary.MedianPrice, 1e-9)
	assert.InDelta(t, 3.5, summary.MinPrice, 1e-9)
	assert.InDelta(t, 15.0, summary.MaxPrice, 1e-9)
	assert.InDelta(t, 2.75, summary.MeanMargin, 1e-9)
	assert.InDelta(t, 0.68, summary.TotalWeight, 1e-9)
}

func TestSummarizeCatalog_Empty(t *testing.T) {
	_, err := SummarizeCatalog(nil)
	assert.Error(t, err)
}

func TestCatalogSummary_LogValue(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	summary, err := SummarizeCatalog([]domain.Product{{SalesPrice: 4, Cost: 1}})
	require.NoError(t, err)

	logger.Info("Catalog summary", "catalog", summary)

	record, ok := handler.FindRecord("Catalog summary")
	require.True(t, ok)
	_, ok = record.Attr("catalog")
	assert.True(t, ok)
}
