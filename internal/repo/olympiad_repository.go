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

// OlympiadRepository persists olympiad entries keyed by participant uid.
type OlympiadRepository interface {
	// CreateEntry inserts the participant's entry; ErrAlreadyExists enforces
	// the one-submission-per-user rule atomically.
	CreateEntry(ctx context.Context, entry model.OlympiadEntry) error
	Get(ctx context.Context, uid string) (*model.OlympiadEntry, error)
	All(ctx context.Context) ([]model.OlympiadEntry, error)
	AddPayment(ctx context.Context, uid string, rec model.OlympiadPaymentEntry) error
	ConfirmPayment(ctx context.Context, uid, orderID, paymentID string) error
	// StoreMarks keeps the maximum of the stored and submitted score and
	// reports whether the submitted score was stored.
	StoreMarks(ctx context.Context, uid string, marks float64) (bool, error)
	StoreMockMarks(ctx context.Context, uid string, marks float64) (bool, error)
	DisableAttempts(ctx context.Context, uid string, orderIDs []string) error
}

type olympiadRepository struct {
	entries *db.Repository[model.OlympiadEntry]
}

func NewOlympiadRepository(entries *db.Repository[model.OlympiadEntry]) OlympiadRepository {
	return &olympiadRepository{entries: entries}
}

func (r *olympiadRepository) CreateEntry(ctx context.Context, entry model.OlympiadEntry) error {
	if err := r.entries.CreateWithID(ctx, entry); err != nil {
		if errors.Is(err, db.ErrDuplicateID) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *olympiadRepository) Get(ctx context.Context, uid string) (*model.OlympiadEntry, error) {
	entry, err := r.entries.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *olympiadRepository) All(ctx context.Context) ([]model.OlympiadEntry, error) {
	return r.entries.FindAll(ctx, db.Empty())
}

func (r *olympiadRepository) AddPayment(ctx context.Context, uid string, rec model.OlympiadPaymentEntry) error {
	res, err := r.entries.SetFields(ctx, uid, bson.M{
		"payments." + rec.OrderID: rec,
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *olympiadRepository) ConfirmPayment(ctx context.Context, uid, orderID, paymentID string) error {
	prefix := "payments." + orderID + "."
	res, err := r.entries.SetFields(ctx, uid, bson.M{
		prefix + "paymentId":  paymentID,
		prefix + "isPaid":     true,
		prefix + "canAttempt": true,
		prefix + "status":     "paid",
		prefix + "paidAt":     time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *olympiadRepository) StoreMarks(ctx context.Context, uid string, marks float64) (bool, error) {
	res, err := r.entries.MaxFields(ctx, uid, bson.M{"marks": marks})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *olympiadRepository) StoreMockMarks(ctx context.Context, uid string, marks float64) (bool, error) {
	res, err := r.entries.MaxFields(ctx, uid, bson.M{"mockMarks": marks})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *olympiadRepository) DisableAttempts(ctx context.Context, uid string, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}
	fields := bson.M{}
	for _, orderID := range orderIDs {
		fields["payments."+orderID+".canAttempt"] = false
	}
	_, err := r.entries.SetFields(ctx, uid, fields)
	return err
}
