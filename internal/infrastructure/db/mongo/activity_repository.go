package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

const collectionActivity = "activity_events"

// ActivityRepository stores the admin-visible audit trail of state mutations.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

type activityDocument struct {
	Actor     string `bson:"actor"`
	Action    string `bson:"action"`
	Entity    string `bson:"entity"`
	EntityID  string `bson:"entity_id"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := activityDocument{
		Actor:     event.Actor,
		Action:    event.Action,
		Entity:    event.Entity,
		EntityID:  event.EntityID,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

// List returns the most recent events, newest first.
func (r *ActivityRepository) List(ctx context.Context, limit int64) ([]domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.ActivityEvent
	for cur.Next(ctx) {
		var doc activityDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity event: %w", err)
		}
		events = append(events, domain.ActivityEvent{
			Actor:     doc.Actor,
			Action:    doc.Action,
			Entity:    doc.Entity,
			EntityID:  doc.EntityID,
			Timestamp: time.Unix(doc.Timestamp, 0).UTC(),
		})
	}
	return events, cur.Err()
}
