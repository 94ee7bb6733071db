package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// GetCustomer reads one customer with its special prices.
func (r *MongoDBRepository) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer
	if err := findOne(ctx, r.collection(customerCollection), bson.M{"_id": id}, &customer); err != nil {
		return models.Customer{}, fmt.Errorf("failed to get customer %s: %w", id, err)
	}
	if customer.SpecialPrices == nil {
		customer.SpecialPrices = []models.SpecialPrice{}
	}
	return customer, nil
}

// ListCustomers returns every customer ordered by name.
func (r *MongoDBRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection(customerCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]models.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer overwrites the editable fields and the special price list in
// one single-document update.
func (r *MongoDBRepository) UpdateCustomer(ctx context.Context, customer models.Customer) error {
	res, err := r.collection(customerCollection).UpdateByID(ctx, customer.ID, customerUpdate(customer))
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("failed to update customer %s: %w", customer.ID, models.ErrNotFound)
	}
	return nil
}

// customerUpdate sets the editable fields. The override list keeps the
// "SpecialPrice" field name used by existing customer documents.
func customerUpdate(customer models.Customer) bson.M {
	prices := customer.SpecialPrices
	if prices == nil {
		prices = []models.SpecialPrice{}
	}

	return bson.M{"$set": bson.M{
		"name":         customer.Name,
		"address":      customer.Address,
		"phone_number": customer.PhoneNumber,
		"SpecialPrice": prices,
	}}
}
