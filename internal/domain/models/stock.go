package models

import "time"

// StockMode selects how a stock mutation is sourced.
type StockMode string

const (
	ModePurchase           StockMode = "purchase"
	ModeFromOtherWarehouse StockMode = "from_other_warehouse"
)

// Warehouse positions known to the system.
const (
	WarehouseFinished = "Gudang Jadi"
	WarehouseRaw      = "Gudang Bahan"
)

// StockHistoryType labels the origin of a count change.
type StockHistoryType string

const (
	StockHistoryPurchase StockHistoryType = "purchase"
	StockHistoryTransfer StockHistoryType = "transfer"
)

// PaymentUnpaid is the payment status of a new purchase history record.
const PaymentUnpaid = "unpaid"

// IsWarehouse reports whether name is a known warehouse position.
func IsWarehouse(name string) bool {
	return name == WarehouseFinished || name == WarehouseRaw
}

// HistoryType maps a mutation mode to the stock history label it produces.
func (m StockMode) HistoryType() StockHistoryType {
	if m == ModeFromOtherWarehouse {
		return StockHistoryTransfer
	}
	return StockHistoryPurchase
}

// PurchaseHistory records stock coming in, either bought from a supplier or
// moved from the raw-material warehouse.
type PurchaseHistory struct {
	ID            string    `bson:"_id" json:"id"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	Count         int       `bson:"count" json:"count"`
	PurchasePrice float64   `bson:"purchase_price" json:"purchase_price"`
	Supplier      string    `bson:"supplier,omitempty" json:"supplier,omitempty"`
	Product       string    `bson:"product" json:"product"`
	PaymentStatus string    `bson:"payment_status,omitempty" json:"payment_status,omitempty"`
	DispatchNote  string    `bson:"dispatch_note,omitempty" json:"dispatch_note,omitempty"`
}

// StockHistory is the audit record of one count change.
type StockHistory struct {
	ID                string           `bson:"_id" json:"id"`
	Product           string           `bson:"product" json:"product"`
	OldCount          int              `bson:"old_count" json:"old_count"`
	Count             int              `bson:"count" json:"count"`
	Difference        int              `bson:"difference" json:"difference"`
	WarehousePosition string           `bson:"warehouse_position" json:"warehouse_position"`
	Type              StockHistoryType `bson:"type" json:"type"`
	CreatedAt         time.Time        `bson:"created_at" json:"created_at"`
	PurchaseHistory   string           `bson:"purchase_history" json:"purchase_history"`
}

// StockMutationRequest is the payload of the manage-stock form. Count is the
// product's new count, not a delta.
type StockMutationRequest struct {
	Mode          StockMode `json:"mode"`
	Warehouse     string    `json:"warehouse"`
	ProductID     string    `json:"product_id"`
	Count         string    `json:"count"`
	PurchasePrice string    `json:"purchase_price"`
	SupplierID    string    `json:"supplier_id"`
	DispatchNote  string    `json:"dispatch_note"`
	CreatedAt     string    `json:"created_at"`
}

// StockMutation is a validated mutation ready to be applied atomically.
type StockMutation struct {
	Mode          StockMode
	Warehouse     string
	ProductID     string
	NewCount      int
	PurchasePrice float64
	SupplierID    string
	DispatchNote  string
	CreatedAt     time.Time
}

// StockMutationResult carries the three documents written by a mutation.
type StockMutationResult struct {
	Product         Product         `json:"product"`
	PurchaseHistory PurchaseHistory `json:"purchase_history"`
	StockHistory    StockHistory    `json:"stock_history"`
}
