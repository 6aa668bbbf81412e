package repo

import (
	"context"
	"errors"

	"github.com/isrcorgin/ISRC-Backend/internal/db"
	"github.com/isrcorgin/ISRC-Backend/internal/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository keeps the admin-side account mirror, the admin analogue of
// the users collection.
type AdminRepository interface {
	CreateMirror(ctx context.Context, uid, email string) error
	Get(ctx context.Context, uid string) (*model.AdminMirror, error)
}

type adminRepository struct {
	admins *db.Repository[model.AdminMirror]
}

func NewAdminRepository(admins *db.Repository[model.AdminMirror]) AdminRepository {
	return &adminRepository{admins: admins}
}

func (r *adminRepository) CreateMirror(ctx context.Context, uid, email string) error {
	if err := r.admins.CreateWithID(ctx, model.AdminMirror{UID: uid, Email: email}); err != nil {
		if errors.Is(err, db.ErrDuplicateID) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *adminRepository) Get(ctx context.Context, uid string) (*model.AdminMirror, error) {
	admin, err := r.admins.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}
