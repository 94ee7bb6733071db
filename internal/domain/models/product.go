package models

// Product is a stock-keeping unit held in one of the warehouses.
type Product struct {
	ID                string  `bson:"_id" json:"id"`
	Brand             string  `bson:"brand" json:"brand"`
	MotorType         string  `bson:"motor_type" json:"motor_type"`
	Part              string  `bson:"part" json:"part"`
	AvailableColor    string  `bson:"available_color" json:"available_color"`
	SellPrice         float64 `bson:"sell_price" json:"sell_price"`
	Count             int     `bson:"count" json:"count"`
	WarehousePosition string  `bson:"warehouse_position" json:"warehouse_position"`
	Supplier          string  `bson:"supplier" json:"supplier"`
}

// Supplier provides products for purchase mutations.
type Supplier struct {
	ID          string `bson:"_id" json:"id"`
	CompanyName string `bson:"company_name" json:"company_name"`
	ContactName string `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	PhoneNumber string `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
}
