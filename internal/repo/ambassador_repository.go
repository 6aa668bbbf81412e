package repo

import (
	"context"
	"errors"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/db"
	"github.com/isrcorgin/ISRC-Backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AmbassadorRepository manages one curated ambassador collection. The Indian
// and international rosters are separate collections sharing this type.
type AmbassadorRepository interface {
	Create(ctx context.Context, amb model.CampusAmbassador) (string, error)
	Get(ctx context.Context, id string) (*model.CampusAmbassador, error)
	All(ctx context.Context) ([]model.CampusAmbassador, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type ambassadorRepository struct {
	ambassadors *db.Repository[model.CampusAmbassador]
}

func NewAmbassadorRepository(ambassadors *db.Repository[model.CampusAmbassador]) AmbassadorRepository {
	return &ambassadorRepository{ambassadors: ambassadors}
}

func (r *ambassadorRepository) Create(ctx context.Context, amb model.CampusAmbassador) (string, error) {
	amb.ID = db.NewID()
	if _, err := r.ambassadors.Create(ctx, amb); err != nil {
		return "", err
	}
	return amb.ID, nil
}

func (r *ambassadorRepository) Get(ctx context.Context, id string) (*model.CampusAmbassador, error) {
	amb, err := r.ambassadors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return amb, nil
}

func (r *ambassadorRepository) All(ctx context.Context) ([]model.CampusAmbassador, error) {
	return r.ambassadors.FindAll(ctx, db.Empty())
}

func (r *ambassadorRepository) Update(ctx context.Context, id string, fields bson.M) error {
	res, err := r.ambassadors.SetFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ambassadorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.ambassadors.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplicationRepository stores public campus-ambassador applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app model.AmbassadorApplication) (string, error)
	All(ctx context.Context) ([]model.AmbassadorApplication, error)
}

type applicationRepository struct {
	applications *db.Repository[model.AmbassadorApplication]
}

func NewApplicationRepository(applications *db.Repository[model.AmbassadorApplication]) ApplicationRepository {
	return &applicationRepository{applications: applications}
}

func (r *applicationRepository) Create(ctx context.Context, app model.AmbassadorApplication) (string, error) {
	app.ID = db.NewID()
	app.CreatedAt = time.Now().UTC()
	if _, err := r.applications.Create(ctx, app); err != nil {
		return "", err
	}
	return app.ID, nil
}

func (r *applicationRepository) All(ctx context.Context) ([]model.AmbassadorApplication, error) {
	return r.applications.FindAll(ctx, db.Empty())
}
