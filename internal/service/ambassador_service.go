package service

import (
	"context"
	"fmt"
	"io"

	"github.com/isrcorgin/ISRC-Backend/internal/blob"
	"github.com/isrcorgin/ISRC-Backend/internal/imageproc"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AmbassadorForm carries the admin-entered profile fields; the portrait
// arrives separately as a multipart file.
type AmbassadorForm struct {
	Name         string `form:"name"`
	LinkedInLink string `form:"linkedInLink"`
	Place        string `form:"place"`
}

// AmbassadorService maintains one curated ambassador roster plus the public
// application inbox. Two instances run side by side for the Indian and
// international rosters.
type AmbassadorService interface {
	Add(ctx context.Context, form AmbassadorForm, portrait io.Reader) (*model.CampusAmbassador, error)
	List(ctx context.Context) ([]model.CampusAmbassador, error)
	Update(ctx context.Context, id string, form AmbassadorForm, portrait io.Reader) error
	Delete(ctx context.Context, id string) error

	Apply(ctx context.Context, app model.AmbassadorApplication) (string, error)
	Applications(ctx context.Context) ([]model.AmbassadorApplication, error)
}

type ambassadorService struct {
	roster       repo.AmbassadorRepository
	applications repo.ApplicationRepository
	blobs        blob.Store
	imagePrefix  string
	logger       *zap.Logger
}

func NewAmbassadorService(roster repo.AmbassadorRepository, applications repo.ApplicationRepository, blobs blob.Store, imagePrefix string, logger *zap.Logger) AmbassadorService {
	return &ambassadorService{
		roster:       roster,
		applications: applications,
		blobs:        blobs,
		imagePrefix:  imagePrefix,
		logger:       logger,
	}
}

func (s *ambassadorService) Add(ctx context.Context, form AmbassadorForm, portrait io.Reader) (*model.CampusAmbassador, error) {
	url, err := s.storePortrait(ctx, portrait)
	if err != nil {
		return nil, err
	}

	amb := model.CampusAmbassador{
		Name:         form.Name,
		LinkedInLink: form.LinkedInLink,
		Place:        form.Place,
		ImageURL:     url,
	}
	id, err := s.roster.Create(ctx, amb)
	if err != nil {
		// The portrait is already on disk; clean it up so the store does
		// not accumulate unreferenced objects.
		if delErr := s.blobs.Delete(ctx, url); delErr != nil {
			s.logger.Warn("orphaned portrait not deleted", zap.String("url", url), zap.Error(delErr))
		}
		return nil, err
	}
	amb.ID = id
	return &amb, nil
}

func (s *ambassadorService) List(ctx context.Context) ([]model.CampusAmbassador, error) {
	return s.roster.All(ctx)
}

// Update patches only the fields that were supplied. A nil portrait keeps
// the existing image.
func (s *ambassadorService) Update(ctx context.Context, id string, form AmbassadorForm, portrait io.Reader) error {
	existing, err := s.roster.Get(ctx, id)
	if err != nil {
		return err
	}

	fields := bson.M{}
	if form.Name != "" {
		fields["name"] = form.Name
	}
	if form.LinkedInLink != "" {
		fields["linkedInLink"] = form.LinkedInLink
	}
	if form.Place != "" {
		fields["place"] = form.Place
	}

	var newURL string
	if portrait != nil {
		newURL, err = s.storePortrait(ctx, portrait)
		if err != nil {
			return err
		}
		fields["imageUrl"] = newURL
	}

	if len(fields) == 0 {
		return nil
	}
	if err := s.roster.Update(ctx, id, fields); err != nil {
		return err
	}

	if newURL != "" && existing.ImageURL != "" {
		if err := s.blobs.Delete(ctx, existing.ImageURL); err != nil {
			s.logger.Warn("previous portrait not deleted",
				zap.String("url", existing.ImageURL), zap.Error(err))
		}
	}
	return nil
}

func (s *ambassadorService) Delete(ctx context.Context, id string) error {
	existing, err := s.roster.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.roster.Delete(ctx, id); err != nil {
		return err
	}
	if existing.ImageURL != "" {
		if err := s.blobs.Delete(ctx, existing.ImageURL); err != nil {
			s.logger.Warn("portrait not deleted",
				zap.String("url", existing.ImageURL), zap.Error(err))
		}
	}
	return nil
}

func (s *ambassadorService) Apply(ctx context.Context, app model.AmbassadorApplication) (string, error) {
	return s.applications.Create(ctx, app)
}

func (s *ambassadorService) Applications(ctx context.Context) ([]model.AmbassadorApplication, error) {
	return s.applications.All(ctx)
}

func (s *ambassadorService) storePortrait(ctx context.Context, portrait io.Reader) (string, error) {
	optimized, err := imageproc.OptimizeWebP(portrait)
	if err != nil {
		return "", fmt.Errorf("optimizing portrait: %w", err)
	}
	key := s.imagePrefix + "/" + uuid.NewString() + ".webp"
	return s.blobs.Put(ctx, key, optimized)
}
