package models

// Customer is a buyer record with optional per-product price overrides.
type Customer struct {
	ID            string         `bson:"_id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Address       string         `bson:"address" json:"address"`
	PhoneNumber   string         `bson:"phone_number" json:"phone_number"`
	SpecialPrices []SpecialPrice `bson:"SpecialPrice" json:"special_price"`
}

// SpecialPrice overrides a product's sell price for one customer. The product
// fields are a snapshot taken when the override was added.
type SpecialPrice struct {
	ProductID         string  `bson:"product_id" json:"product_id"`
	Price             float64 `bson:"price" json:"price"`
	Brand             string  `bson:"brand,omitempty" json:"brand,omitempty"`
	MotorType         string  `bson:"motor_type,omitempty" json:"motor_type,omitempty"`
	Part              string  `bson:"part,omitempty" json:"part,omitempty"`
	AvailableColor    string  `bson:"available_color,omitempty" json:"available_color,omitempty"`
	SellPrice         float64 `bson:"sell_price,omitempty" json:"sell_price,omitempty"`
	WarehousePosition string  `bson:"warehouse_position,omitempty" json:"warehouse_position,omitempty"`
}

// SpecialPriceFromProduct builds an override candidate priced at the product's sell price.
func SpecialPriceFromProduct(p Product) SpecialPrice {
	return SpecialPrice{
		ProductID:         p.ID,
		Price:             p.SellPrice,
		Brand:             p.Brand,
		MotorType:         p.MotorType,
		Part:              p.Part,
		AvailableColor:    p.AvailableColor,
		SellPrice:         p.SellPrice,
		WarehousePosition: p.WarehousePosition,
	}
}

// UpdateCustomerRequest is the payload of the edit-customer form.
type UpdateCustomerRequest struct {
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	PhoneNumber   string         `json:"phone_number"`
	SpecialPrices []SpecialPrice `json:"special_price"`
}

// ToggleSpecialPrice adds the product to the override set when it is absent and
// removes it when present. The input slice is not modified.
func ToggleSpecialPrice(prices []SpecialPrice, candidate SpecialPrice) []SpecialPrice {
	out := make([]SpecialPrice, 0, len(prices)+1)
	removed := false
	for _, sp := range prices {
		if sp.ProductID == candidate.ProductID {
			removed = true
			continue
		}
		out = append(out, sp)
	}
	if !removed {
		out = append(out, candidate)
	}
	return out
}
