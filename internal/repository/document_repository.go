package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// OperationObserver records store operation latency.
type OperationObserver interface {
	ObserveStoreOperation(operation string, collection string, duration time.Duration)
}

// DocumentRepository provides generic document operations over named
// collections. The database handle may be nil when connection configuration
// is missing or the store was unreachable at startup; every operation then
// fails with a storage-unavailable error instead of panicking.
type DocumentRepository struct {
	db       *mongo.Database
	observer OperationObserver
}

// NewDocumentRepository constructs the repository. observer may be nil.
func NewDocumentRepository(db *mongo.Database, observer OperationObserver) *DocumentRepository {
	return &DocumentRepository{db: db, observer: observer}
}

// Available reports whether a store handle is present.
func (r *DocumentRepository) Available() bool {
	return r != nil && r.db != nil
}

// Insert stores a document and returns its newly assigned identifier.
func (r *DocumentRepository) Insert(ctx context.Context, collection string, doc map[string]interface{}) (primitive.ObjectID, error) {
	if !r.Available() {
		return primitive.NilObjectID, appErrors.ErrStorageUnavailable
	}
	defer r.observe("insert", collection)()

	res, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to insert document")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, appErrors.Clone(appErrors.ErrInternal, "store returned unexpected identifier type")
	}
	return oid, nil
}

// Find returns documents matching the exact-match filter in insertion order.
// A limit of zero or less means unbounded.
func (r *DocumentRepository) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !r.Available() {
		return nil, appErrors.ErrStorageUnavailable
	}
	defer r.observe("find", collection)()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to query documents")
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to read documents")
	}
	return docs, nil
}

// FindByID fetches a single document by identifier.
func (r *DocumentRepository) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	if !r.Available() {
		return nil, appErrors.ErrStorageUnavailable
	}
	defer r.observe("find_one", collection)()

	var doc bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.ErrNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to fetch document")
	}
	return doc, nil
}

// UpdateByID applies only the supplied fields to the identified document and
// reports how many documents matched.
func (r *DocumentRepository) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) (int64, error) {
	if !r.Available() {
		return 0, appErrors.ErrStorageUnavailable
	}
	defer r.observe("update", collection)()

	res, err := r.db.Collection(collection).UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to update document")
	}
	return res.MatchedCount, nil
}

// DeleteByID removes the identified document and reports how many documents
// were deleted.
func (r *DocumentRepository) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (int64, error) {
	if !r.Available() {
		return 0, appErrors.ErrStorageUnavailable
	}
	defer r.observe("delete", collection)()

	res, err := r.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to delete document")
	}
	return res.DeletedCount, nil
}

// Ping verifies live connectivity to the store.
func (r *DocumentRepository) Ping(ctx context.Context) error {
	if !r.Available() {
		return appErrors.ErrStorageUnavailable
	}
	if err := r.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to reach store")
	}
	return nil
}

// CollectionNames lists the collections present in the database.
func (r *DocumentRepository) CollectionNames(ctx context.Context) ([]string, error) {
	if !r.Available() {
		return nil, appErrors.ErrStorageUnavailable
	}
	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "failed to list collections")
	}
	return names, nil
}

func (r *DocumentRepository) observe(operation, collection string) func() {
	if r.observer == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		r.observer.ObserveStoreOperation(operation, collection, time.Since(start))
	}
}
