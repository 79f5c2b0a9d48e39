package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gyd-platform/department-api/internal/schema"
	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// documentStore is the slice of the repository the CRUD services need.
type documentStore interface {
	Insert(ctx context.Context, collection string, doc map[string]interface{}) (primitive.ObjectID, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) (int64, error)
	DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (int64, error)
}

// resourceService implements the CRUD workflow shared by every collection.
// Handlers never touch it directly; the per-entity services embed it and add
// their filter shapes.
type resourceService struct {
	def    schema.Definition
	label  string
	store  documentStore
	logger *zap.Logger
	now    func() time.Time
}

func newResourceService(def schema.Definition, label string, store documentStore, logger *zap.Logger) resourceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return resourceService{
		def:    def,
		label:  label,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// create validates the full payload, inserts it and reads the stored record
// back so the response carries the assigned identifier. The read-back is a
// second store round trip; the identifier is freshly generated so no other
// caller can race it.
func (s *resourceService) create(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	doc, err := s.def.Validate(payload)
	if err != nil {
		return nil, err
	}

	id, err := s.store.Insert(ctx, s.def.Name, doc)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.FindByID(ctx, s.def.Name, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		zap.String("collection", s.def.Name),
		zap.String("id", id.Hex()),
	)
	return s.def.Serialize(stored), nil
}

// list returns serialized records matching an exact-match filter, oldest
// first, optionally capped by limit.
func (s *resourceService) list(ctx context.Context, filter bson.M, limit int64) ([]map[string]interface{}, error) {
	docs, err := s.store.Find(ctx, s.def.Name, filter, limit)
	if err != nil {
		return nil, err
	}
	return s.def.SerializeAll(docs), nil
}

// update applies the non-null fields of a partial payload plus an updated_at
// stamp, then returns the refreshed record.
func (s *resourceService) update(ctx context.Context, rawID string, payload map[string]interface{}) (map[string]interface{}, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return nil, err
	}

	fields, err := s.def.ValidatePartial(payload)
	if err != nil {
		return nil, err
	}
	fields["updated_at"] = s.now().UTC()

	matched, err := s.store.UpdateByID(ctx, s.def.Name, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.label))
	}

	stored, err := s.store.FindByID(ctx, s.def.Name, id)
	if err != nil {
		return nil, err
	}
	return s.def.Serialize(stored), nil
}

// delete removes a record by identifier.
func (s *resourceService) delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	deleted, err := s.store.DeleteByID(ctx, s.def.Name, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.label))
	}

	s.logger.Info("document deleted",
		zap.String("collection", s.def.Name),
		zap.String("id", id.Hex()),
	)
	return nil
}

// parseID validates a client-supplied identifier before it reaches the store.
func (s *resourceService) parseID(rawID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return primitive.NilObjectID, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("invalid %s id", s.def.Name))
	}
	return id, nil
}
