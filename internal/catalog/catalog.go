// Package catalog implements the in-memory filter/search/sort pipeline over
// the product list, plus the stock aggregates and CSV export the admin
// back-office is built on. Every function is pure: the same inputs always
// produce the same ordered output.
package catalog

import (
	"sort"
	"strings"

	"freshtrade/internal/models"
)

// Sort keys accepted by Query.
const (
	SortByName  = "name"
	SortByPrice = "price"
	SortByStock = "stock"
)

// FilterAll is the sentinel that disables a category or status filter.
const FilterAll = "All"

// Params select and order a view of the product list. Zero values mean
// "no filtering" and name ordering.
type Params struct {
	Search   string
	Category string
	Status   string
	SortBy   string
}

// stockPrecedence orders statuses In Stock < Low Stock < Out of Stock.
var stockPrecedence = map[string]int{
	models.StockInStock:    0,
	models.StockLowStock:   1,
	models.StockOutOfStock: 2,
}

// Query returns the filtered, then sorted, view of products. The input slice
// is never mutated.
func Query(products []models.Product, p Params) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, prod := range products {
		if matchesSearch(prod, p.Search) && matchesFilter(prod.Category, p.Category) && matchesFilter(prod.StockStatus, p.Status) {
			filtered = append(filtered, prod)
		}
	}

	switch p.SortBy {
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerUnit < filtered[j].PricePerUnit
		})
	case SortByStock:
		sort.SliceStable(filtered, func(i, j int) bool {
			return stockPrecedence[filtered[i].StockStatus] < stockPrecedence[filtered[j].StockStatus]
		})
	default: // SortByName
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].ProductName) < strings.ToLower(filtered[j].ProductName)
		})
	}
	return filtered
}

// matchesSearch does a case-insensitive substring match against the product
// name, category, and tags. An empty term matches everything.
func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.ProductName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// matchesFilter is an exact match short-circuited by the "All" sentinel (or
// an empty selection).
func matchesFilter(value, selected string) bool {
	return selected == "" || selected == FilterAll || value == selected
}

// Stats holds per-stock-status counts over the full product list.
type Stats struct {
	TotalProducts int `json:"totalProducts"`
	InStock       int `json:"inStock"`
	LowStock      int `json:"lowStock"`
	OutOfStock    int `json:"outOfStock"`
}

// ComputeStats recounts the stock buckets from the full list. Recomputation
// over incremental counters keeps the numbers trivially correct at the data
// volumes a produce catalog sees.
func ComputeStats(products []models.Product) Stats {
	s := Stats{TotalProducts: len(products)}
	for _, p := range products {
		switch p.StockStatus {
		case models.StockInStock:
			s.InStock++
		case models.StockLowStock:
			s.LowStock++
		case models.StockOutOfStock:
			s.OutOfStock++
		}
	}
	return s
}

// Categories returns "All" followed by the distinct categories in first-seen
// order, for populating filter dropdowns.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := []string{FilterAll}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
