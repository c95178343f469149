package files

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const colFiles = "files"

// MongoRepo implements Repo using a MongoDB collection keyed by _id.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo constructs a MongoRepo on the given database.
func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection(colFiles)}
}

// Insert stores a new record, mapping duplicate-key errors to ErrConflict.
func (r *MongoRepo) Insert(ctx context.Context, file StoredFile) error {
	_, err := r.col.InsertOne(ctx, file)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert file: %w", err)
	}
	return nil
}

// GetByID returns a record by id.
func (r *MongoRepo) GetByID(ctx context.Context, id string) (StoredFile, error) {
	var file StoredFile
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return StoredFile{}, ErrNotFound
		}
		return StoredFile{}, fmt.Errorf("find file %s: %w", id, err)
	}
	return file, nil
}

// Delete removes a record and reports whether it existed. DeleteOne is
// atomic on the server, so racing deletes yield at most one true.
func (r *MongoRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete file %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

var _ Repo = (*MongoRepo)(nil)
