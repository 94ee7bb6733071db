package models

import "time"

// StockReport aggregates stock history over a period.
type StockReport struct {
	PeriodStart     time.Time `bson:"period_start" json:"period_start"`
	PeriodEnd       time.Time `bson:"period_end" json:"period_end"`
	PurchaseCount   int       `bson:"purchase_count" json:"purchase_count"`
	TransferCount   int       `bson:"transfer_count" json:"transfer_count"`
	NetDifference   int       `bson:"net_difference" json:"net_difference"`
	ProductsTouched int       `bson:"products_touched" json:"products_touched"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
