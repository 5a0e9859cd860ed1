package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

const statusCollection = "status_checks"

// StatusRepository persists client status checks.
type StatusRepository struct {
	coll *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{coll: db.Collection(statusCollection)}
}

type statusDoc struct {
	ID         string    `bson:"_id"`
	ClientName string    `bson:"client_name"`
	Timestamp  time.Time `bson:"timestamp"`
}

func (r *StatusRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	doc := statusDoc{ID: check.ID, ClientName: check.ClientName, Timestamp: check.Timestamp}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *StatusRepository) List(ctx context.Context, limit int64) ([]domain.StatusCheck, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer cur.Close(ctx)

	var docs []statusDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}

	out := make([]domain.StatusCheck, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.StatusCheck{ID: doc.ID, ClientName: doc.ClientName, Timestamp: doc.Timestamp})
	}
	return out, nil
}
