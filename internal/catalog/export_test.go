package catalog_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"freshtrade/internal/catalog"
	"freshtrade/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWriteCSV(t *testing.T) {
	products := []models.Product{
		{ID: "p1", ProductName: "Organic Tomatoes", Category: "Vegetables", PricePerUnit: 45, Unit: "kg", MinOrderQty: 10, StockStatus: models.StockInStock},
		{ID: "p2", ProductName: "Basmati Rice", Category: "Grains", PricePerUnit: 120.5, Unit: "kg", MinOrderQty: 25, StockStatus: models.StockLowStock},
	}

	var buf bytes.Buffer
	err := catalog.WriteCSV(&buf, products)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"Product Name", "Category", "Price", "Unit", "Min Order", "Stock Status"}, records[0])
	assert.Equal(t, []string{"Organic Tomatoes", "Vegetables", "45", "kg", "10", "In Stock"}, records[1])
	assert.Equal(t, []string{"Basmati Rice", "Grains", "120.5", "kg", "25", "Low Stock"}, records[2])
}

// A comma inside a field must survive a round trip instead of corrupting the row.
func TestWriteCSV_EscapesEmbeddedCommas(t *testing.T) {
	products := []models.Product{
		{ID: "p1", ProductName: "Tomatoes, vine-ripened", Category: `Vegetables "fresh"`, PricePerUnit: 45, Unit: "kg", MinOrderQty: 10, StockStatus: models.StockInStock},
	}

	var buf bytes.Buffer
	err := catalog.WriteCSV(&buf, products)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Tomatoes, vine-ripened", records[1][0])
	assert.Equal(t, `Vegetables "fresh"`, records[1][1])
}

func TestWriteCSV_EmptyView(t *testing.T) {
	var buf bytes.Buffer
	err := catalog.WriteCSV(&buf, nil)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1) // header only
}
