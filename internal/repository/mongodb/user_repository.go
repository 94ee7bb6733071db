package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// GetUserByEmail reads an account of the local identity provider.
func (r *MongoDBRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := findOne(ctx, r.collection(userCollection), bson.M{"email": email}, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to get user %s: %w", email, err)
	}
	return user, nil
}

// UpdateUserPassword replaces the stored password hash.
func (r *MongoDBRepository) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}}

	res, err := r.collection(userCollection).UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("failed to update password for user %s: %w", id, models.ErrNotFound)
	}
	return nil
}
