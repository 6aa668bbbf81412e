package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/db"
	"github.com/isrcorgin/ISRC-Backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CertificateRepository persists the flat certificate collection. Reads
// return raw documents because spreadsheet imports can carry arbitrary
// columns beyond the typed model.
type CertificateRepository interface {
	CreateIssued(ctx context.Context, cert model.Certificate) (string, error)
	// CreateForParticipant writes the certificate at the participant's own id.
	// The insert is the duplicate guard: ErrAlreadyExists means one was
	// already issued, with no check-then-write window.
	CreateForParticipant(ctx context.Context, participantID string, cert model.Certificate) error
	CreateRaw(ctx context.Context, fields map[string]string) (string, error)
	FindByAuthCode(ctx context.Context, authCode string) (bson.M, error)
	FindByAuthCodes(ctx context.Context, authCodes []string) ([]bson.M, error)
	All(ctx context.Context) ([]bson.M, error)
	Delete(ctx context.Context, id string) error
}

type certificateRepository struct {
	certs *db.Repository[bson.M]
}

func NewCertificateRepository(certs *db.Repository[bson.M]) CertificateRepository {
	return &certificateRepository{certs: certs}
}

func certificateDoc(cert model.Certificate) (bson.M, error) {
	raw, err := bson.Marshal(cert)
	if err != nil {
		return nil, fmt.Errorf("marshal certificate: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *certificateRepository) CreateIssued(ctx context.Context, cert model.Certificate) (string, error) {
	cert.ID = db.NewID()
	cert.CreatedAt = time.Now().UTC()
	doc, err := certificateDoc(cert)
	if err != nil {
		return "", err
	}
	if _, err := r.certs.Create(ctx, doc); err != nil {
		return "", err
	}
	return cert.ID, nil
}

func (r *certificateRepository) CreateForParticipant(ctx context.Context, participantID string, cert model.Certificate) error {
	cert.ID = participantID
	cert.CreatedAt = time.Now().UTC()
	doc, err := certificateDoc(cert)
	if err != nil {
		return err
	}
	if err := r.certs.CreateWithID(ctx, doc); err != nil {
		if errors.Is(err, db.ErrDuplicateID) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *certificateRepository) CreateRaw(ctx context.Context, fields map[string]string) (string, error) {
	doc := rawCertificateDoc(fields)
	if _, err := r.certs.Create(ctx, doc); err != nil {
		return "", err
	}
	return doc["_id"].(string), nil
}

// rawCertificateDoc builds the insert document for a spreadsheet row. The id
// is always server-generated; an _id column in the row cannot inject one.
func rawCertificateDoc(fields map[string]string) bson.M {
	doc := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	doc["_id"] = db.NewID()
	doc["createdAt"] = time.Now().UTC()
	return doc
}

func (r *certificateRepository) FindByAuthCode(ctx context.Context, authCode string) (bson.M, error) {
	doc, err := r.certs.FindOne(ctx, db.NewFilter().Eq("authCode", authCode).Build())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return *doc, nil
}

func (r *certificateRepository) FindByAuthCodes(ctx context.Context, authCodes []string) ([]bson.M, error) {
	return r.certs.FindAll(ctx, db.NewFilter().In("authCode", authCodes).Build())
}

func (r *certificateRepository) All(ctx context.Context) ([]bson.M, error) {
	return r.certs.FindAll(ctx, db.Empty())
}

func (r *certificateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.certs.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
