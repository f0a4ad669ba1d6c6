package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"freshtrade/internal/models"
)

// csvHeader matches the admin export columns.
var csvHeader = []string{"Product Name", "Category", "Price", "Unit", "Min Order", "Stock Status"}

// WriteCSV serializes a product view as CSV. encoding/csv handles quoting, so
// names or categories containing commas survive a round trip.
func WriteCSV(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.ProductName,
			p.Category,
			strconv.FormatFloat(p.PricePerUnit, 'f', -1, 64),
			p.Unit,
			strconv.Itoa(p.MinOrderQty),
			p.StockStatus,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for product %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
