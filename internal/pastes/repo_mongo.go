package pastes

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const colPastes = "pastes"

// MongoRepo implements Repo using a MongoDB collection. Documents are keyed
// by the paste id via _id, so uniqueness rides on the collection's primary
// index.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo constructs a MongoRepo on the given database.
func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection(colPastes)}
}

// Insert stores a new paste, mapping duplicate-key errors to ErrConflict.
func (r *MongoRepo) Insert(ctx context.Context, paste Paste) error {
	_, err := r.col.InsertOne(ctx, paste)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert paste: %w", err)
	}
	return nil
}

// GetByID returns a paste by id.
func (r *MongoRepo) GetByID(ctx context.Context, id string) (Paste, error) {
	var paste Paste
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&paste)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Paste{}, ErrNotFound
		}
		return Paste{}, fmt.Errorf("find paste %s: %w", id, err)
	}
	return paste, nil
}

// ListRecent returns pastes newest first. Sort and limit are pushed down to
// the server so the whole collection is never loaded.
func (r *MongoRepo) ListRecent(ctx context.Context, limit int) ([]Paste, error) {
	if limit <= 0 {
		return []Paste{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("list recent pastes: %w", err)
	}

	out := []Paste{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode recent pastes: %w", err)
	}
	return out, nil
}

var _ Repo = (*MongoRepo)(nil)
