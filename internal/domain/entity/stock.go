package entity

import "github.com/shopspring/decimal"

// StockItem is one pharmacy ledger row. Medicine names are unique within
// the table, compared case-insensitively. Quantity never goes below zero.
type StockItem struct {
	Medicine string          `csv:"medicine" json:"medicine"`
	Quantity int             `csv:"quantity" json:"quantity"`
	Price    decimal.Decimal `csv:"price" json:"price"`
}
