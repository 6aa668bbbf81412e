package service

import (
	"context"
	"errors"
	"testing"

	"github.com/isrcorgin/ISRC-Backend/internal/payment"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"go.uber.org/zap"
)

func olympiadServiceForTest() (OlympiadService, *fakeOlympiadRepo) {
	entries := newFakeOlympiadRepo()
	svc := NewOlympiadService(entries, &fakeGateway{}, testKeySecret, zap.NewNop())
	return svc, entries
}

func TestSubmitFormRejectsSecondSubmission(t *testing.T) {
	svc, _ := olympiadServiceForTest()
	ctx := context.Background()

	form := map[string]interface{}{"name": "Kiran", "std": "9"}
	if err := svc.SubmitForm(ctx, "u1", form); err != nil {
		t.Fatalf("first submission: %v", err)
	}
	if err := svc.SubmitForm(ctx, "u1", form); !errors.Is(err, repo.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	registered, err := svc.IsRegistered(ctx, "u1")
	if err != nil || !registered {
		t.Fatalf("expected registered entry, got %v %v", registered, err)
	}
	std, err := svc.Standard(ctx, "u1")
	if err != nil || std != "9" {
		t.Fatalf("expected std 9, got %q %v", std, err)
	}
}

func TestStoreMarksKeepsMaxAndBurnsAttempts(t *testing.T) {
	svc, entries := olympiadServiceForTest()
	ctx := context.Background()

	if err := svc.SubmitForm(ctx, "u1", map[string]interface{}{"name": "Kiran"}); err != nil {
		t.Fatal(err)
	}

	order, err := svc.CreateOrder(ctx, "u1", 200)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	conf := PaymentConfirmation{
		OrderID:   order.ID,
		PaymentID: "pay_1",
		Signature: payment.SignPayment(order.ID, "pay_1", testKeySecret),
	}
	if err := svc.ConfirmPayment(ctx, "u1", conf); err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}

	if ok, _ := svc.CanAttempt(ctx, "u1"); !ok {
		t.Fatal("paid attempt should be open")
	}

	stored, err := svc.StoreMarks(ctx, "u1", 60)
	if err != nil || !stored {
		t.Fatalf("first score should be stored, got %v %v", stored, err)
	}
	if ok, _ := svc.CanAttempt(ctx, "u1"); ok {
		t.Error("attempt should be consumed after marks are recorded")
	}

	stored, err = svc.StoreMarks(ctx, "u1", 40)
	if err != nil {
		t.Fatal(err)
	}
	if stored {
		t.Error("lower score must not replace the stored maximum")
	}
	if *entries.entries["u1"].Marks != 60 {
		t.Errorf("expected stored marks 60, got %v", *entries.entries["u1"].Marks)
	}

	stored, err = svc.StoreMarks(ctx, "u1", 75)
	if err != nil || !stored {
		t.Fatalf("higher score should be stored, got %v %v", stored, err)
	}
}

func TestConfirmPaymentRejectsBadSignature(t *testing.T) {
	svc, _ := olympiadServiceForTest()
	ctx := context.Background()

	if err := svc.SubmitForm(ctx, "u1", map[string]interface{}{"name": "Kiran"}); err != nil {
		t.Fatal(err)
	}
	order, err := svc.CreateOrder(ctx, "u1", 200)
	if err != nil {
		t.Fatal(err)
	}

	conf := PaymentConfirmation{OrderID: order.ID, PaymentID: "pay_1", Signature: "bogus"}
	if err := svc.ConfirmPayment(ctx, "u1", conf); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
	if ok, _ := svc.CanAttempt(ctx, "u1"); ok {
		t.Error("unverified payment must not open an attempt")
	}
}
