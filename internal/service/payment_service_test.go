package service

import (
	"context"
	"errors"
	"testing"

	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/payment"

	"go.uber.org/zap"
)

const testKeySecret = "test-key-secret"

func registeredUser(users *fakeUserRepo) *model.User {
	_ = users.CreateMirror(context.Background(), "u1", "mentor@example.com")
	_ = users.SetTeam(context.Background(), "u1", model.Team{
		TeamName: "Circuit Breakers",
		CompetitionTopic: model.CompetitionTopic{
			Topic: "Robotics 13 to 18",
		},
		Members: []model.TeamMember{
			{Name: "Asha", AuthCode: "AC1"},
			{Name: "Meera", AuthCode: "AC2"},
		},
	}, 500)
	return users.users["u1"]
}

func TestConfirmVerifiedPaymentSettlesAndIssues(t *testing.T) {
	users := newFakeUserRepo()
	registeredUser(users)
	certs := newFakeCertRepo()
	certSvc := NewCertificateService(certs, &fakeFormRepo{}, zap.NewNop())
	svc := NewPaymentService(&fakeGateway{}, users, certSvc, testKeySecret, zap.NewNop())

	ctx := context.Background()
	order, err := svc.CreateOrder(ctx, "u1", 500)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Amount != 50000 {
		t.Errorf("expected 50000 paise, got %d", order.Amount)
	}
	if order.Currency != "INR" {
		t.Errorf("expected INR, got %q", order.Currency)
	}
	if rec, ok := users.users["u1"].Payments[order.ID]; !ok || rec.IsPaid {
		t.Fatalf("order should be persisted unpaid, got %+v", rec)
	}

	conf := PaymentConfirmation{
		OrderID:   order.ID,
		PaymentID: "pay_1",
		Signature: payment.SignPayment(order.ID, "pay_1", testKeySecret),
	}
	results, err := svc.Confirm(ctx, "u1", conf)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	user := users.users["u1"]
	if user.PaymentStatus != model.PaymentCompleted {
		t.Errorf("expected completed status, got %q", user.PaymentStatus)
	}
	if user.AmountDue != 0 {
		t.Errorf("expected zero amount due, got %v", user.AmountDue)
	}
	if !user.Payments[order.ID].Verified {
		t.Error("payment record should be marked verified")
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 issuance results, got %d", len(results))
	}
	if len(certs.issued) != 2 {
		t.Fatalf("expected 2 certificates, got %d", len(certs.issued))
	}
	for _, cert := range certs.issued {
		if cert.Topic != "Robotics" {
			t.Errorf("topic not cleaned: %q", cert.Topic)
		}
		if cert.Type != model.CertificateTypeTeamMember {
			t.Errorf("wrong certificate type: %q", cert.Type)
		}
	}
}

func TestConfirmRejectsBadSignature(t *testing.T) {
	users := newFakeUserRepo()
	registeredUser(users)
	certs := newFakeCertRepo()
	certSvc := NewCertificateService(certs, &fakeFormRepo{}, zap.NewNop())
	svc := NewPaymentService(&fakeGateway{}, users, certSvc, testKeySecret, zap.NewNop())

	ctx := context.Background()
	order, err := svc.CreateOrder(ctx, "u1", 500)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	conf := PaymentConfirmation{
		OrderID:   order.ID,
		PaymentID: "pay_1",
		Signature: "deadbeef",
	}
	if _, err := svc.Confirm(ctx, "u1", conf); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}

	user := users.users["u1"]
	if user.PaymentStatus != model.PaymentFailed {
		t.Errorf("expected failed status, got %q", user.PaymentStatus)
	}
	if user.Payments[order.ID].Verified {
		t.Error("record must not be verified")
	}
	if len(certs.issued) != 0 {
		t.Errorf("no certificates should be issued, got %d", len(certs.issued))
	}
}
