package service

import (
	"context"
	"errors"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/payment"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"go.uber.org/zap"
)

// ErrBadSignature marks a payment confirmation whose HMAC did not match.
// The failed attempt is still recorded against the user before it surfaces.
var ErrBadSignature = errors.New("payment signature mismatch")

// PaymentConfirmation is the gateway callback payload the frontend relays
// after checkout completes.
type PaymentConfirmation struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// PaymentService mints registration orders and settles their confirmations.
type PaymentService interface {
	// CreateOrder mints a gateway order for the rupee amount and records it
	// under the user before returning.
	CreateOrder(ctx context.Context, uid string, amountRupees float64) (*payment.Order, error)
	// Confirm verifies the gateway signature, marks the payment outcome on
	// the user and, on success, issues the team member certificates.
	Confirm(ctx context.Context, uid string, conf PaymentConfirmation) ([]model.IssuanceResult, error)
}

type paymentService struct {
	gateway   payment.Gateway
	users     repo.UserRepository
	certs     CertificateService
	keySecret string
	logger    *zap.Logger
}

func NewPaymentService(gateway payment.Gateway, users repo.UserRepository, certs CertificateService, keySecret string, logger *zap.Logger) PaymentService {
	return &paymentService{
		gateway:   gateway,
		users:     users,
		certs:     certs,
		keySecret: keySecret,
		logger:    logger,
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, uid string, amountRupees float64) (*payment.Order, error) {
	amountPaise := int64(amountRupees * 100)
	order, err := s.gateway.CreateOrder(ctx, amountPaise, "INR")
	if err != nil {
		return nil, err
	}

	rec := model.PaymentRecord{
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Receipt:   order.Receipt,
		Status:    "created",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.AddPayment(ctx, uid, rec); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *paymentService) Confirm(ctx context.Context, uid string, conf PaymentConfirmation) ([]model.IssuanceResult, error) {
	verified := payment.VerifySignature(conf.OrderID, conf.PaymentID, conf.Signature, s.keySecret)

	if err := s.users.RecordPaymentOutcome(ctx, uid, conf.OrderID, conf.PaymentID, conf.Signature, verified); err != nil {
		return nil, err
	}
	if !verified {
		s.logger.Warn("payment signature rejected",
			zap.String("uid", uid), zap.String("orderId", conf.OrderID))
		return nil, ErrBadSignature
	}

	user, err := s.users.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	results, err := s.certs.IssueTeamCertificates(ctx, user)
	if err != nil {
		// Payment is already settled; certificate trouble is reported but
		// never rolls the payment back.
		s.logger.Error("post-payment certificate issuance failed",
			zap.String("uid", uid), zap.Error(err))
		return nil, nil
	}
	return results, nil
}
