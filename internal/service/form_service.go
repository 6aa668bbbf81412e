package service

import (
	"context"

	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"go.mongodb.org/mongo-driver/bson"
)

// FormService fronts one sub-event form collection. Submissions are
// caller-shaped JSON; the repository stamps the id and timestamp. One
// instance exists per collection (awards, session, certification,
// internship, generic forms).
type FormService interface {
	Submit(ctx context.Context, fields map[string]interface{}) (string, error)
	Get(ctx context.Context, id string) (bson.M, error)
	All(ctx context.Context) ([]bson.M, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	// PhoneNumbers pulls the number field out of every submission,
	// skipping entries without one.
	PhoneNumbers(ctx context.Context) ([]string, error)
}

type formService struct {
	forms repo.FormRepository
}

func NewFormService(forms repo.FormRepository) FormService {
	return &formService{forms: forms}
}

func (s *formService) Submit(ctx context.Context, fields map[string]interface{}) (string, error) {
	return s.forms.Create(ctx, fields)
}

func (s *formService) Get(ctx context.Context, id string) (bson.M, error) {
	return s.forms.Get(ctx, id)
}

func (s *formService) All(ctx context.Context) ([]bson.M, error) {
	return s.forms.All(ctx)
}

func (s *formService) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	patch := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		patch[k] = v
	}
	if len(patch) == 0 {
		return nil
	}
	return s.forms.Update(ctx, id, patch)
}

func (s *formService) Delete(ctx context.Context, id string) error {
	return s.forms.Delete(ctx, id)
}

func (s *formService) PhoneNumbers(ctx context.Context) ([]string, error) {
	docs, err := s.forms.All(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(docs))
	for _, doc := range docs {
		if number, ok := doc["number"].(string); ok && number != "" {
			numbers = append(numbers, number)
		}
	}
	return numbers, nil
}
