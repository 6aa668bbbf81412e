package service

import (
	"context"
	"errors"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/certificate"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/payment"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"go.uber.org/zap"
)

// OlympiadService runs the olympiad event: registration, its own payment
// loop, attempt gating and the keep-max marks flow.
type OlympiadService interface {
	// SubmitForm records the participant's entry once; a second submission
	// is rejected with repo.ErrAlreadyExists.
	SubmitForm(ctx context.Context, uid string, form map[string]interface{}) error
	IsRegistered(ctx context.Context, uid string) (bool, error)
	Profile(ctx context.Context, uid string) (*model.OlympiadEntry, error)
	AllEntries(ctx context.Context) ([]model.OlympiadEntry, error)
	Standard(ctx context.Context, uid string) (string, error)
	CreateOrder(ctx context.Context, uid string, amountRupees float64) (*payment.Order, error)
	ConfirmPayment(ctx context.Context, uid string, conf PaymentConfirmation) error
	// CanAttempt reports whether any paid, unconsumed attempt exists.
	CanAttempt(ctx context.Context, uid string) (bool, error)
	// StoreMarks keeps the higher of the stored and submitted score, then
	// burns every open attempt so the next try needs a fresh payment.
	StoreMarks(ctx context.Context, uid string, marks float64) (bool, error)
	StoreMockMarks(ctx context.Context, uid string, marks float64) (bool, error)
	MockRank(marks float64) (int, error)
}

type olympiadService struct {
	entries   repo.OlympiadRepository
	gateway   payment.Gateway
	keySecret string
	logger    *zap.Logger
}

func NewOlympiadService(entries repo.OlympiadRepository, gateway payment.Gateway, keySecret string, logger *zap.Logger) OlympiadService {
	return &olympiadService{
		entries:   entries,
		gateway:   gateway,
		keySecret: keySecret,
		logger:    logger,
	}
}

func (s *olympiadService) SubmitForm(ctx context.Context, uid string, form map[string]interface{}) error {
	entry := model.OlympiadEntry{
		UID:          uid,
		Form:         form,
		IsRegistered: true,
		CreatedAt:    time.Now().UTC(),
	}
	if std, ok := form["std"].(string); ok {
		entry.Standard = std
	}
	return s.entries.CreateEntry(ctx, entry)
}

func (s *olympiadService) IsRegistered(ctx context.Context, uid string) (bool, error) {
	entry, err := s.entries.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return entry.IsRegistered, nil
}

func (s *olympiadService) Profile(ctx context.Context, uid string) (*model.OlympiadEntry, error) {
	return s.entries.Get(ctx, uid)
}

func (s *olympiadService) AllEntries(ctx context.Context) ([]model.OlympiadEntry, error) {
	return s.entries.All(ctx)
}

func (s *olympiadService) Standard(ctx context.Context, uid string) (string, error) {
	entry, err := s.entries.Get(ctx, uid)
	if err != nil {
		return "", err
	}
	return entry.Standard, nil
}

func (s *olympiadService) CreateOrder(ctx context.Context, uid string, amountRupees float64) (*payment.Order, error) {
	amountPaise := int64(amountRupees * 100)
	order, err := s.gateway.CreateOrder(ctx, amountPaise, "INR")
	if err != nil {
		return nil, err
	}

	rec := model.OlympiadPaymentEntry{
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Receipt:   order.Receipt,
		Status:    "created",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.entries.AddPayment(ctx, uid, rec); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *olympiadService) ConfirmPayment(ctx context.Context, uid string, conf PaymentConfirmation) error {
	if !payment.VerifySignature(conf.OrderID, conf.PaymentID, conf.Signature, s.keySecret) {
		s.logger.Warn("olympiad payment signature rejected",
			zap.String("uid", uid), zap.String("orderId", conf.OrderID))
		return ErrBadSignature
	}
	return s.entries.ConfirmPayment(ctx, uid, conf.OrderID, conf.PaymentID)
}

func (s *olympiadService) CanAttempt(ctx context.Context, uid string) (bool, error) {
	entry, err := s.entries.Get(ctx, uid)
	if err != nil {
		return false, err
	}
	for _, p := range entry.Payments {
		if p.IsPaid && p.CanAttempt {
			return true, nil
		}
	}
	return false, nil
}

func (s *olympiadService) StoreMarks(ctx context.Context, uid string, marks float64) (bool, error) {
	improved, err := s.entries.StoreMarks(ctx, uid, marks)
	if err != nil {
		return false, err
	}

	entry, err := s.entries.Get(ctx, uid)
	if err != nil {
		return false, err
	}
	var spent []string
	for orderID, p := range entry.Payments {
		if p.IsPaid && p.CanAttempt {
			spent = append(spent, orderID)
		}
	}
	if err := s.entries.DisableAttempts(ctx, uid, spent); err != nil {
		return false, err
	}
	return improved, nil
}

func (s *olympiadService) StoreMockMarks(ctx context.Context, uid string, marks float64) (bool, error) {
	return s.entries.StoreMockMarks(ctx, uid, marks)
}

func (s *olympiadService) MockRank(marks float64) (int, error) {
	return certificate.MockRank(marks)
}
