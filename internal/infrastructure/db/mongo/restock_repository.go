package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storemgmt/store-api/internal/core/domain"
)

const restockCollection = "restock_requests"

// RestockRepository persists low-stock alerts as restock requests.
type RestockRepository struct {
	coll *mongo.Collection
}

func NewRestockRepository(db *mongo.Database) *RestockRepository {
	return &RestockRepository{coll: db.Collection(restockCollection)}
}

func (r *RestockRepository) Insert(ctx context.Context, alert *domain.RestockAlert) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"product_id":   alert.ProductID,
		"product_name": alert.ProductName,
		"remaining":    alert.Remaining,
		"threshold":    alert.Threshold,
		"occurred_at":  alert.OccurredAt,
		"recorded_at":  time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert restock request: %w", err)
	}
	return nil
}
