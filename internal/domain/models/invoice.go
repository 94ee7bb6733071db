package models

// Invoice is a sales document; the void list is built from this collection.
type Invoice struct {
	ID            string        `bson:"_id" json:"id"`
	CustomerName  string        `bson:"customer_name" json:"customer_name"`
	Date          string        `bson:"date" json:"date"`
	PaymentMethod string        `bson:"payment_method" json:"payment_method"`
	TotalPrice    float64       `bson:"total_price" json:"total_price"`
	Items         []InvoiceItem `bson:"items" json:"items"`
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	ProductID string  `bson:"product_id,omitempty" json:"product_id,omitempty"`
	Brand     string  `bson:"brand" json:"brand"`
	Count     int     `bson:"count" json:"count"`
	Price     float64 `bson:"price,omitempty" json:"price,omitempty"`
}
