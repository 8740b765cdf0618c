package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard client expects plain JSON numbers for prices and sums.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction represents one sold or listed product instance. Identity is
// assigned by the upstream dataset, never generated locally.
type Transaction struct {
	ID          int64           `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    string          `json:"category" db:"category"`
	Image       string          `json:"image" db:"image"`
	Sold        bool            `json:"sold" db:"sold"`
	DateOfSale  time.Time       `json:"dateOfSale" db:"date_of_sale"`
}

// TransactionList is a page of transactions plus pagination metadata.
type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	PerPage      int           `json:"perPage"`
	TotalPages   int           `json:"totalPages"`
}

// MonthlyStatistics aggregates sale totals for one calendar month.
// TotalSale is always a numeric value, zero when no sold records exist.
type MonthlyStatistics struct {
	TotalSale    decimal.Decimal `json:"totalSale" db:"total_sale"`
	SoldItems    int64           `json:"soldItems" db:"sold_items"`
	NotSoldItems int64           `json:"notSoldItems" db:"not_sold_items"`
}

// ChartSlice is one labeled count in a histogram or category breakdown.
// The label is serialized as "_id" to match the dashboard client contract.
type ChartSlice struct {
	Label string `json:"_id" db:"label"`
	Count int64  `json:"count" db:"count"`
}

// CombinedStats bundles the three monthly aggregate views under one envelope.
type CombinedStats struct {
	Statistics *MonthlyStatistics `json:"statistics"`
	BarChart   []ChartSlice       `json:"barchart"`
	PieChart   []ChartSlice       `json:"piechart"`
}

// ReseedResult reports the outcome of a manual reseed.
type ReseedResult struct {
	Message       string `json:"message"`
	DocumentCount int64  `json:"documentCount"`
}
