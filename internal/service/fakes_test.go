package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/payment"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateMirror(ctx context.Context, uid, email string) error {
	if _, ok := f.users[uid]; ok {
		return repo.ErrAlreadyExists
	}
	f.users[uid] = &model.User{UID: uid, Email: email, CreatedAt: time.Now()}
	return nil
}

func (f *fakeUserRepo) Get(ctx context.Context, uid string) (*model.User, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) All(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetTeam(ctx context.Context, uid string, team model.Team, amountDue float64) error {
	user, ok := f.users[uid]
	if !ok {
		return repo.ErrNotFound
	}
	user.Team = &team
	user.TeamRegistered = true
	user.PaymentStatus = model.PaymentPending
	user.AmountDue = amountDue
	return nil
}

func (f *fakeUserRepo) TeamNameExists(ctx context.Context, name string) (bool, error) {
	for _, u := range f.users {
		if u.Team != nil && strings.EqualFold(u.Team.TeamName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) SetMemberImage(ctx context.Context, uid, memberName, imageURL string) error {
	user, ok := f.users[uid]
	if !ok || user.Team == nil {
		return repo.ErrNotFound
	}
	for i := range user.Team.Members {
		if user.Team.Members[i].Name == memberName {
			user.Team.Members[i].ProfileImageURL = imageURL
			return nil
		}
	}
	return fmt.Errorf("%w: no team member named %q", repo.ErrNotFound, memberName)
}

func (f *fakeUserRepo) UpdateTeamRoster(ctx context.Context, uid string, mentor model.Mentor, members []model.TeamMember) error {
	user, ok := f.users[uid]
	if !ok || user.Team == nil {
		return repo.ErrNotFound
	}
	user.Team.Mentor = mentor
	user.Team.Members = members
	return nil
}

func (f *fakeUserRepo) AddPayment(ctx context.Context, uid string, rec model.PaymentRecord) error {
	user, ok := f.users[uid]
	if !ok {
		return repo.ErrNotFound
	}
	if user.Payments == nil {
		user.Payments = map[string]model.PaymentRecord{}
	}
	user.Payments[rec.OrderID] = rec
	return nil
}

func (f *fakeUserRepo) RecordPaymentOutcome(ctx context.Context, uid, orderID, paymentID, signature string, verified bool) error {
	user, ok := f.users[uid]
	if !ok {
		return repo.ErrNotFound
	}
	rec := user.Payments[orderID]
	rec.PaymentID = paymentID
	rec.Signature = signature
	rec.Verified = verified
	rec.IsPaid = verified
	if verified {
		rec.Status = "paid"
		user.PaymentStatus = model.PaymentCompleted
		user.TeamRegistered = true
		user.AmountDue = 0
	} else {
		user.PaymentStatus = model.PaymentFailed
	}
	user.Payments[orderID] = rec
	return nil
}

func (f *fakeUserRepo) SetAttendance(ctx context.Context, uid string) error {
	user, ok := f.users[uid]
	if !ok {
		return repo.ErrNotFound
	}
	user.Attendance = true
	return nil
}

func (f *fakeUserRepo) SetMarks(ctx context.Context, uid string, sheet model.MarksSheet) error {
	user, ok := f.users[uid]
	if !ok {
		return repo.ErrNotFound
	}
	user.Marks = &sheet
	return nil
}

type fakeAdminRepo struct {
	admins map[string]model.AdminMirror
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]model.AdminMirror{}}
}

func (f *fakeAdminRepo) CreateMirror(ctx context.Context, uid, email string) error {
	if _, ok := f.admins[uid]; ok {
		return repo.ErrAlreadyExists
	}
	f.admins[uid] = model.AdminMirror{UID: uid, Email: email}
	return nil
}

func (f *fakeAdminRepo) Get(ctx context.Context, uid string) (*model.AdminMirror, error) {
	admin, ok := f.admins[uid]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &admin, nil
}

type fakeCertRepo struct {
	issued     []model.Certificate
	byID       map[string]model.Certificate
	raw        []map[string]string
	failNames  map[string]bool
	nextPushID int
}

func newFakeCertRepo() *fakeCertRepo {
	return &fakeCertRepo{byID: map[string]model.Certificate{}, failNames: map[string]bool{}}
}

func (f *fakeCertRepo) CreateIssued(ctx context.Context, cert model.Certificate) (string, error) {
	if f.failNames[cert.Name] {
		return "", fmt.Errorf("write rejected for %s", cert.Name)
	}
	f.nextPushID++
	cert.ID = fmt.Sprintf("cert-%d", f.nextPushID)
	f.issued = append(f.issued, cert)
	return cert.ID, nil
}

func (f *fakeCertRepo) CreateForParticipant(ctx context.Context, participantID string, cert model.Certificate) error {
	if _, ok := f.byID[participantID]; ok {
		return repo.ErrAlreadyExists
	}
	cert.ID = participantID
	f.byID[participantID] = cert
	return nil
}

func (f *fakeCertRepo) CreateRaw(ctx context.Context, fields map[string]string) (string, error) {
	f.raw = append(f.raw, fields)
	return fmt.Sprintf("raw-%d", len(f.raw)), nil
}

func (f *fakeCertRepo) FindByAuthCode(ctx context.Context, authCode string) (bson.M, error) {
	for _, cert := range f.issued {
		if cert.AuthCode == authCode {
			return bson.M{"authCode": cert.AuthCode, "name": cert.Name, "type": cert.Type}, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCertRepo) FindByAuthCodes(ctx context.Context, authCodes []string) ([]bson.M, error) {
	var out []bson.M
	for _, code := range authCodes {
		if doc, err := f.FindByAuthCode(ctx, code); err == nil {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeCertRepo) All(ctx context.Context) ([]bson.M, error) {
	out := make([]bson.M, 0, len(f.issued))
	for _, cert := range f.issued {
		out = append(out, bson.M{"authCode": cert.AuthCode, "name": cert.Name})
	}
	return out, nil
}

func (f *fakeCertRepo) Delete(ctx context.Context, id string) error {
	for i, cert := range f.issued {
		if cert.ID == id {
			f.issued = append(f.issued[:i], f.issued[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeFormRepo struct {
	docs []bson.M
}

func (f *fakeFormRepo) Create(ctx context.Context, fields map[string]interface{}) (string, error) {
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	id := fmt.Sprintf("form-%d", len(f.docs)+1)
	doc["_id"] = id
	doc["timestamp"] = time.Now().UnixMilli()
	f.docs = append(f.docs, doc)
	return id, nil
}

func (f *fakeFormRepo) Get(ctx context.Context, id string) (bson.M, error) {
	for _, doc := range f.docs {
		if doc["_id"] == id {
			return doc, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeFormRepo) All(ctx context.Context) ([]bson.M, error) {
	return f.docs, nil
}

func (f *fakeFormRepo) Update(ctx context.Context, id string, fields bson.M) error {
	for _, doc := range f.docs {
		if doc["_id"] == id {
			for k, v := range fields {
				doc[k] = v
			}
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeFormRepo) Delete(ctx context.Context, id string) error {
	for i, doc := range f.docs {
		if doc["_id"] == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeGateway struct {
	orders int
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountPaise int64, currency string) (*payment.Order, error) {
	f.orders++
	return &payment.Order{
		ID:       fmt.Sprintf("order_test_%d", f.orders),
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  fmt.Sprintf("receipt%d", f.orders),
		Status:   "created",
	}, nil
}

type fakeOlympiadRepo struct {
	entries map[string]*model.OlympiadEntry
}

func newFakeOlympiadRepo() *fakeOlympiadRepo {
	return &fakeOlympiadRepo{entries: map[string]*model.OlympiadEntry{}}
}

func (f *fakeOlympiadRepo) CreateEntry(ctx context.Context, entry model.OlympiadEntry) error {
	if _, ok := f.entries[entry.UID]; ok {
		return repo.ErrAlreadyExists
	}
	f.entries[entry.UID] = &entry
	return nil
}

func (f *fakeOlympiadRepo) Get(ctx context.Context, uid string) (*model.OlympiadEntry, error) {
	entry, ok := f.entries[uid]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return entry, nil
}

func (f *fakeOlympiadRepo) All(ctx context.Context) ([]model.OlympiadEntry, error) {
	out := make([]model.OlympiadEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeOlympiadRepo) AddPayment(ctx context.Context, uid string, rec model.OlympiadPaymentEntry) error {
	entry, ok := f.entries[uid]
	if !ok {
		return repo.ErrNotFound
	}
	if entry.Payments == nil {
		entry.Payments = map[string]model.OlympiadPaymentEntry{}
	}
	entry.Payments[rec.OrderID] = rec
	return nil
}

func (f *fakeOlympiadRepo) ConfirmPayment(ctx context.Context, uid, orderID, paymentID string) error {
	entry, ok := f.entries[uid]
	if !ok {
		return repo.ErrNotFound
	}
	rec, ok := entry.Payments[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	now := time.Now()
	rec.PaymentID = paymentID
	rec.IsPaid = true
	rec.CanAttempt = true
	rec.Status = "paid"
	rec.PaidAt = &now
	entry.Payments[orderID] = rec
	return nil
}

func (f *fakeOlympiadRepo) StoreMarks(ctx context.Context, uid string, marks float64) (bool, error) {
	entry, ok := f.entries[uid]
	if !ok {
		return false, repo.ErrNotFound
	}
	if entry.Marks == nil || marks > *entry.Marks {
		entry.Marks = &marks
		return true, nil
	}
	return false, nil
}

func (f *fakeOlympiadRepo) StoreMockMarks(ctx context.Context, uid string, marks float64) (bool, error) {
	entry, ok := f.entries[uid]
	if !ok {
		return false, repo.ErrNotFound
	}
	if entry.MockMarks == nil || marks > *entry.MockMarks {
		entry.MockMarks = &marks
		return true, nil
	}
	return false, nil
}

func (f *fakeOlympiadRepo) DisableAttempts(ctx context.Context, uid string, orderIDs []string) error {
	entry, ok := f.entries[uid]
	if !ok {
		return repo.ErrNotFound
	}
	for _, orderID := range orderIDs {
		rec, ok := entry.Payments[orderID]
		if !ok {
			continue
		}
		rec.CanAttempt = false
		entry.Payments[orderID] = rec
	}
	return nil
}
