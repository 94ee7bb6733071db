package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// GetProduct reads one product by id.
func (r *MongoDBRepository) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := findOne(ctx, r.collection(productCollection), bson.M{"_id": id}, &product); err != nil {
		return models.Product{}, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

// ListProductsBySupplierAndWarehouse returns the products stored in a warehouse,
// restricted to one supplier unless supplierID is empty.
func (r *MongoDBRepository) ListProductsBySupplierAndWarehouse(ctx context.Context, supplierID, warehouse string) ([]models.Product, error) {
	cursor, err := r.collection(productCollection).Find(ctx, SupplierWarehouseFilter(supplierID, warehouse))
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// SearchProductsByBrand returns products whose brand starts with search in any
// of its case variants.
func (r *MongoDBRepository) SearchProductsByBrand(ctx context.Context, search string) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "brand", Value: 1}})
	cursor, err := r.collection(productCollection).Find(ctx, BrandPrefixFilter(search), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by brand: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// ListSuppliers returns every supplier.
func (r *MongoDBRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	opts := options.Find().SetSort(bson.D{{Key: "company_name", Value: 1}})
	cursor, err := r.collection(supplierCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	suppliers := make([]models.Supplier, 0)
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("failed to decode suppliers: %w", err)
	}
	return suppliers, nil
}
