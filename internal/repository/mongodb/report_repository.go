package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// ListStockHistoryBetween returns stock history records created in [start, end).
func (r *MongoDBRepository) ListStockHistoryBetween(ctx context.Context, start, end time.Time) ([]models.StockHistory, error) {
	filter := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	cursor, err := r.collection(stockHistoryCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock history: %w", err)
	}

	records := make([]models.StockHistory, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode stock history: %w", err)
	}
	return records, nil
}

// SaveStockReport saves a stock report to the database.
func (r *MongoDBRepository) SaveStockReport(ctx context.Context, report models.StockReport) error {
	if _, err := r.collection(stockReportCollection).InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert stock report: %w", err)
	}
	return nil
}
