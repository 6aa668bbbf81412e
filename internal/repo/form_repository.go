package repo

import (
	"context"
	"errors"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FormRepository stores one sub-event form collection (awards nominations,
// session forms, internship forms, ...). Submissions are caller-shaped JSON,
// so documents stay raw; the repository only adds the push id and the
// server-side timestamp.
type FormRepository interface {
	Create(ctx context.Context, fields map[string]interface{}) (string, error)
	Get(ctx context.Context, id string) (bson.M, error)
	All(ctx context.Context) ([]bson.M, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type formRepository struct {
	forms *db.Repository[bson.M]
}

func NewFormRepository(forms *db.Repository[bson.M]) FormRepository {
	return &formRepository{forms: forms}
}

func (r *formRepository) Create(ctx context.Context, fields map[string]interface{}) (string, error) {
	doc := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	doc["_id"] = db.NewID()
	doc["timestamp"] = time.Now().UnixMilli()

	if _, err := r.forms.Create(ctx, doc); err != nil {
		return "", err
	}
	return doc["_id"].(string), nil
}

func (r *formRepository) Get(ctx context.Context, id string) (bson.M, error) {
	doc, err := r.forms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return *doc, nil
}

func (r *formRepository) All(ctx context.Context) ([]bson.M, error) {
	return r.forms.FindAll(ctx, db.Empty())
}

func (r *formRepository) Update(ctx context.Context, id string, fields bson.M) error {
	res, err := r.forms.SetFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *formRepository) Delete(ctx context.Context, id string) error {
	res, err := r.forms.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
