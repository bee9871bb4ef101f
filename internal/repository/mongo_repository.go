package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotel-desk/service-booking/internal/domain"
)

// SnapshotCollection is the MongoDB collection holding one snapshot document per entity collection.
const SnapshotCollection = "collection_snapshots"

// snapshotDocument stores a whole entity collection. Version grows by one on
// every successful SaveAll.
type snapshotDocument[T any] struct {
	ID      string `bson:"_id"`
	Version int64  `bson:"version"`
	Items   []T    `bson:"items"`
}

// MongoRepository keeps a collection as a single versioned snapshot document.
// Writes started through GetAllVersioned only succeed while the stored version
// is the one that read returned, so a writer that lost a race gets a
// ConflictError instead of overwriting the other writer.
type MongoRepository[T domain.Entity] struct {
	col  *mongo.Collection
	name string
}

// NewMongoRepository creates a repository for the named entity collection.
func NewMongoRepository[T domain.Entity](db *mongo.Database, name string) *MongoRepository[T] {
	return &MongoRepository[T]{col: db.Collection(SnapshotCollection), name: name}
}

// GetAll returns the stored snapshot items; a missing snapshot is an empty collection.
func (r *MongoRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// GetAllVersioned returns the snapshot items together with the snapshot version.
func (r *MongoRepository[T]) GetAllVersioned(ctx context.Context) ([]T, int64, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	return doc.Items, doc.Version, nil
}

// GetByID returns the first record with a matching id.
func (r *MongoRepository[T]) GetByID(ctx context.Context, id int64) (T, bool, error) {
	doc, err := r.load(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	item, ok := domain.FindByID(doc.Items, id)
	return item, ok, nil
}

// SaveAll writes items on top of whatever snapshot is currently stored.
func (r *MongoRepository[T]) SaveAll(ctx context.Context, items []T) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.SaveAllIfVersion(ctx, items, doc.Version)
}

// SaveAllIfVersion writes items as version+1 when the stored snapshot is still at version.
func (r *MongoRepository[T]) SaveAllIfVersion(ctx context.Context, items []T, version int64) error {
	if items == nil {
		items = []T{}
	}

	filter := bson.M{"_id": r.name, "version": version}
	update := bson.M{"$set": bson.M{"items": items, "version": version + 1}}
	opts := options.Update().SetUpsert(true)

	// A version mismatch misses the filter and the upsert collides on _id.
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.conflict()
		}
		return fmt.Errorf("failed to save %s snapshot: %w", r.name, err)
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return r.conflict()
	}
	return nil
}

func (r *MongoRepository[T]) conflict() error {
	return domain.NewConflictError(fmt.Sprintf("%s were modified by another writer", r.name))
}

func (r *MongoRepository[T]) load(ctx context.Context) (snapshotDocument[T], error) {
	var doc snapshotDocument[T]
	err := r.col.FindOne(ctx, bson.M{"_id": r.name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		doc = snapshotDocument[T]{ID: r.name}
	} else if err != nil {
		return snapshotDocument[T]{}, fmt.Errorf("failed to load %s snapshot: %w", r.name, err)
	}
	if doc.Items == nil {
		doc.Items = []T{}
	}
	return doc, nil
}

var _ domain.VersionedRepository[domain.Entity] = (*MongoRepository[domain.Entity])(nil)
