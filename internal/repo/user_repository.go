package repo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/db"
	"github.com/isrcorgin/ISRC-Backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository persists participant documents. All mutations are
// field-scoped so concurrent writers touching different parts of the same
// user cannot clobber each other.
type UserRepository interface {
	CreateMirror(ctx context.Context, uid, email string) error
	Get(ctx context.Context, uid string) (*model.User, error)
	All(ctx context.Context) ([]model.User, error)
	SetTeam(ctx context.Context, uid string, team model.Team, amountDue float64) error
	TeamNameExists(ctx context.Context, name string) (bool, error)
	SetMemberImage(ctx context.Context, uid, memberName, imageURL string) error
	UpdateTeamRoster(ctx context.Context, uid string, mentor model.Mentor, members []model.TeamMember) error
	AddPayment(ctx context.Context, uid string, rec model.PaymentRecord) error
	RecordPaymentOutcome(ctx context.Context, uid, orderID, paymentID, signature string, verified bool) error
	SetAttendance(ctx context.Context, uid string) error
	SetMarks(ctx context.Context, uid string, sheet model.MarksSheet) error
}

type userRepository struct {
	users *db.Repository[model.User]
}

func NewUserRepository(users *db.Repository[model.User]) UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) CreateMirror(ctx context.Context, uid, email string) error {
	user := model.User{
		UID:       uid,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.users.CreateWithID(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateID) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, uid string) (*model.User, error) {
	user, err := r.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) All(ctx context.Context) ([]model.User, error) {
	return r.users.FindAll(ctx, db.Empty())
}

func (r *userRepository) SetTeam(ctx context.Context, uid string, team model.Team, amountDue float64) error {
	res, err := r.users.SetFields(ctx, uid, bson.M{
		"team":           team,
		"teamRegistered": true,
		"paymentStatus":  model.PaymentPending,
		"amountDue":      amountDue,
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) TeamNameExists(ctx context.Context, name string) (bool, error) {
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	return r.users.Exists(ctx, db.NewFilter().Regex("team.teamName", pattern, "i").Build())
}

func (r *userRepository) SetMemberImage(ctx context.Context, uid, memberName, imageURL string) error {
	res, err := r.users.SetFieldsFiltered(ctx, uid,
		bson.M{"team.members.$[m].profileImageUrl": imageURL},
		[]interface{}{bson.M{"m.name": memberName}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%w: no team member named %q", ErrNotFound, memberName)
	}
	return nil
}

func (r *userRepository) UpdateTeamRoster(ctx context.Context, uid string, mentor model.Mentor, members []model.TeamMember) error {
	res, err := r.users.SetFields(ctx, uid, bson.M{
		"team.mentor":  mentor,
		"team.members": members,
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) AddPayment(ctx context.Context, uid string, rec model.PaymentRecord) error {
	res, err := r.users.SetFields(ctx, uid, bson.M{
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

func (r *userRepository) RecordPaymentOutcome(ctx context.Context, uid, orderID, paymentID, signature string, verified bool) error {
	prefix := "payments." + orderID + "."
	fields := bson.M{
		prefix + "paymentId": paymentID,
		prefix + "signature": signature,
		prefix + "verified":  verified,
		prefix + "isPaid":    verified,
	}
	if verified {
		fields["paymentStatus"] = model.PaymentCompleted
		fields["teamRegistered"] = true
		fields["amountDue"] = float64(0)
		fields[prefix+"status"] = "paid"
	} else {
		fields["paymentStatus"] = model.PaymentFailed
	}

	res, err := r.users.SetFields(ctx, uid, fields)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) SetAttendance(ctx context.Context, uid string) error {
	res, err := r.users.SetFields(ctx, uid, bson.M{"attendance": true})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) SetMarks(ctx context.Context, uid string, sheet model.MarksSheet) error {
	res, err := r.users.SetFields(ctx, uid, bson.M{"marks": sheet})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
