package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateID is returned by CreateWithID when a document already exists
// at the requested id. Callers rely on this for atomic create-if-absent
// guards instead of a check-then-write pair.
var ErrDuplicateID = errors.New("db: document id already exists")

// Repository provides generic CRUD operations for a MongoDB collection.
// Documents are addressed by string ids (generated via NewID or supplied by
// the caller), matching the path-keyed layout of the data model.
type Repository[T any] struct {
	collection *mongo.Collection
}

// NewRepository creates a new generic repository
func NewRepository[T any](db *mongo.Database, collectionName string) *Repository[T] {
	return &Repository[T]{
		collection: db.Collection(collectionName),
	}
}

// NewID generates a collection-unique key for push-style inserts.
func NewID() string {
	return uuid.NewString()
}

func OpenConnection(uri string, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	return client.Database(database), nil
}

// Create inserts a new document
func (r *Repository[T]) Create(ctx context.Context, document T) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, document)
}

// CreateWithID inserts a document whose _id is already set, failing with
// ErrDuplicateID when a document occupies that slot.
func (r *Repository[T]) CreateWithID(ctx context.Context, document T) error {
	_, err := r.collection.InsertOne(ctx, document)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

// FindByID finds a document by its string id
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var result T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindOne finds a single document matching the filter
func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var result T
	err := r.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindAll finds all documents matching the filter
func (r *Repository[T]) FindAll(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// SetFields applies a field-scoped $set to the document at id. Concurrent
// writers touching disjoint fields do not clobber each other, unlike a
// whole-document replace.
func (r *Repository[T]) SetFields(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
}

// SetFieldsFiltered applies a field-scoped $set with array filters, used to
// address a single element inside an embedded array.
func (r *Repository[T]) SetFieldsFiltered(ctx context.Context, id string, fields bson.M, arrayFilters []interface{}) (*mongo.UpdateResult, error) {
	opts := options.Update().SetArrayFilters(options.ArrayFilters{Filters: arrayFilters})
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts)
}

// MaxFields applies $max, writing each field only when the new value exceeds
// the stored one. First writes always store.
func (r *Repository[T]) MaxFields(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$max": fields})
}

// UpdateMany applies a field-scoped $set to every document matching the filter
func (r *Repository[T]) UpdateMany(ctx context.Context, filter bson.M, fields bson.M) (*mongo.UpdateResult, error) {
	return r.collection.UpdateMany(ctx, filter, bson.M{"$set": fields})
}

// DeleteByID deletes the document at id
func (r *Repository[T]) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

// Count counts documents matching the filter
func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

// Exists checks if a document matching the filter exists
func (r *Repository[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
