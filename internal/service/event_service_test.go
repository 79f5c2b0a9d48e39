package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gyd-platform/department-api/internal/dto"
	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// storeMock records calls and plays back canned results.
type storeMock struct {
	insertID     primitive.ObjectID
	insertErr    error
	insertCalls  int
	insertedDoc  map[string]interface{}
	findDocs     []bson.M
	findErr      error
	findFilter   bson.M
	findLimit    int64
	findByIDDoc  bson.M
	findByIDErr  error
	updateFields bson.M
	updateCalls  int
	matched      int64
	updateErr    error
	deleteCalls  int
	deleted      int64
	deleteErr    error
}

func (m *storeMock) Insert(ctx context.Context, collection string, doc map[string]interface{}) (primitive.ObjectID, error) {
	m.insertCalls++
	m.insertedDoc = doc
	return m.insertID, m.insertErr
}

func (m *storeMock) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	m.findFilter = filter
	m.findLimit = limit
	return m.findDocs, m.findErr
}

func (m *storeMock) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	return m.findByIDDoc, m.findByIDErr
}

func (m *storeMock) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) (int64, error) {
	m.updateCalls++
	m.updateFields = fields
	return m.matched, m.updateErr
}

func (m *storeMock) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (int64, error) {
	m.deleteCalls++
	return m.deleted, m.deleteErr
}

func TestEventServiceCreateReturnsStoredRecord(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &storeMock{
		insertID: oid,
		findByIDDoc: bson.M{
			"_id":   oid,
			"title": "Open Day",
			"date":  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	svc := NewEventService(store, nil, nil)

	record, err := svc.Create(context.Background(), map[string]interface{}{
		"title": "Open Day",
		"date":  "2025-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, oid.Hex(), record["id"])
	assert.Equal(t, "2025-03-01", record["date"])
	assert.Equal(t, "Open Day", record["title"])
	assert.Equal(t, 1, store.insertCalls)
}

func TestEventServiceCreateValidationFailureSkipsStore(t *testing.T) {
	store := &storeMock{}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Create(context.Background(), map[string]interface{}{"location": "Main Hall"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, store.insertCalls)
}

func TestEventServiceUpdateRejectsMalformedIDBeforeStore(t *testing.T) {
	store := &storeMock{}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Update(context.Background(), "definitely-not-an-id", map[string]interface{}{"location": "Main Hall"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrBadRequest.Code, appErr.Code)
	assert.Equal(t, "invalid event id", appErr.Message)
	assert.Zero(t, store.updateCalls)
}

func TestEventServiceUpdateRejectsEmptyPayloadBeforeStore(t *testing.T) {
	store := &storeMock{}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), map[string]interface{}{"title": nil})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrBadRequest.Code, appErrors.FromError(err).Code)
	assert.Zero(t, store.updateCalls)
}

func TestEventServiceUpdateSetsOnlyProvidedFieldsPlusTimestamp(t *testing.T) {
	oid := primitive.NewObjectID()
	stamp := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	store := &storeMock{
		matched: 1,
		findByIDDoc: bson.M{
			"_id":        oid,
			"title":      "Open Day",
			"location":   "Main Hall",
			"updated_at": stamp,
		},
	}
	svc := NewEventService(store, nil, nil)
	svc.now = func() time.Time { return stamp }

	record, err := svc.Update(context.Background(), oid.Hex(), map[string]interface{}{"location": "Main Hall"})
	require.NoError(t, err)

	require.Len(t, store.updateFields, 2)
	assert.Equal(t, "Main Hall", store.updateFields["location"])
	assert.Equal(t, stamp, store.updateFields["updated_at"])
	assert.Equal(t, "Open Day", record["title"])
	assert.Equal(t, "2025-03-02T12:00:00Z", record["updated_at"])
}

func TestEventServiceUpdateNotFound(t *testing.T) {
	store := &storeMock{matched: 0}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), map[string]interface{}{"location": "Main Hall"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "event not found", appErr.Message)
}

func TestEventServiceDelete(t *testing.T) {
	store := &storeMock{deleted: 1}
	svc := NewEventService(store, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), primitive.NewObjectID().Hex()))
	assert.Equal(t, 1, store.deleteCalls)
}

func TestEventServiceDeleteNotFound(t *testing.T) {
	store := &storeMock{deleted: 0}
	svc := NewEventService(store, nil, nil)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEventServiceDeleteRejectsMalformedIDBeforeStore(t *testing.T) {
	store := &storeMock{}
	svc := NewEventService(store, nil, nil)

	err := svc.Delete(context.Background(), "xx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrBadRequest.Code, appErrors.FromError(err).Code)
	assert.Zero(t, store.deleteCalls)
}

func TestEventServiceListPassesLimitThrough(t *testing.T) {
	store := &storeMock{findDocs: []bson.M{{"_id": primitive.NewObjectID(), "title": "A"}}}
	svc := NewEventService(store, nil, nil)

	records, err := svc.List(context.Background(), dto.EventListRequest{Limit: 5})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(5), store.findLimit)
	assert.Empty(t, store.findFilter)
}

func TestEventServiceListSurfacesStoreError(t *testing.T) {
	store := &storeMock{findErr: appErrors.ErrStorageUnavailable}
	svc := NewEventService(store, nil, nil)

	_, err := svc.List(context.Background(), dto.EventListRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStorageUnavailable.Code, appErrors.FromError(err).Code)
}
