package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionSlots = "slots"
	opTimeout       = 5 * time.Second
)

// SlotStore persists each named slot as a single document holding the
// JSON-serialized collection. Every save replaces the document in full, so
// "last successful persist wins" across restarts.
type SlotStore struct {
	col *mongo.Collection
}

func NewSlotStore(db *mongo.Database) *SlotStore {
	return &SlotStore{col: db.Collection(collectionSlots)}
}

type slotDocument struct {
	Name      string `bson:"_id"`
	Data      []byte `bson:"data"`
	UpdatedAt int64  `bson:"updated_at"`
}

// Load reads and decodes a slot. A missing document or a stored value that no
// longer decodes into the expected shape reports (false, nil) so the caller
// falls back to its default; only backend failures return an error.
func (s *SlotStore) Load(ctx context.Context, slot string, out any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc slotDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": slot}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("load slot %s: %w", slot, err)
	}

	if err := json.Unmarshal(doc.Data, out); err != nil {
		return false, nil
	}
	return true, nil
}

// Save serializes the value and overwrites the slot unconditionally.
func (s *SlotStore) Save(ctx context.Context, slot string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := slotDocument{Name: slot, Data: data, UpdatedAt: time.Now().Unix()}
	_, err = s.col.ReplaceOne(ctx, bson.M{"_id": slot}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}

// Delete removes the slot entirely; a missing slot is not an error.
func (s *SlotStore) Delete(ctx context.Context, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": slot}); err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}
