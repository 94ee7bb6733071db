package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// StockWriter is the set of operations available inside a stock transaction.
// Every call must use the context handed to the transaction callback.
type StockWriter interface {
	GetProduct(ctx context.Context, id string) (models.Product, error)
	SetProductCount(ctx context.Context, id string, count int) error
	InsertPurchaseHistory(ctx context.Context, record models.PurchaseHistory) error
	InsertStockHistory(ctx context.Context, record models.StockHistory) error
}

// StockTransactor runs a callback atomically against the stock collections.
type StockTransactor interface {
	RunStockTransaction(ctx context.Context, fn func(ctx context.Context, w StockWriter) error) error
}

// RunStockTransaction executes fn inside a multi-document transaction. Either
// all writes made through w commit or none do. The driver may invoke fn again
// on transient transaction errors.
func (r *MongoDBRepository) RunStockTransaction(ctx context.Context, fn func(ctx context.Context, w StockWriter) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	writer := &stockWriter{repo: r}
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, writer)
	})
	if err != nil {
		return fmt.Errorf("stock transaction aborted: %w", err)
	}
	return nil
}

type stockWriter struct {
	repo *MongoDBRepository
}

func (w *stockWriter) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return w.repo.GetProduct(ctx, id)
}

func (w *stockWriter) SetProductCount(ctx context.Context, id string, count int) error {
	res, err := w.repo.collection(productCollection).UpdateByID(ctx, id, bson.M{"$set": bson.M{"count": count}})
	if err != nil {
		return fmt.Errorf("failed to update product %s count: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("failed to update product %s count: %w", id, models.ErrNotFound)
	}
	return nil
}

func (w *stockWriter) InsertPurchaseHistory(ctx context.Context, record models.PurchaseHistory) error {
	if _, err := w.repo.collection(purchaseHistoryCollection).InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert purchase history: %w", err)
	}
	return nil
}

func (w *stockWriter) InsertStockHistory(ctx context.Context, record models.StockHistory) error {
	if _, err := w.repo.collection(stockHistoryCollection).InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert stock history: %w", err)
	}
	return nil
}
