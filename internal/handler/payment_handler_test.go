package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isrcorgin/ISRC-Backend/internal/middleware"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/payment"
	"github.com/isrcorgin/ISRC-Backend/internal/service"

	"github.com/gin-gonic/gin"
)

type fakePaymentService struct {
	lastUID    string
	lastAmount float64
	confirmErr error
}

func (f *fakePaymentService) CreateOrder(ctx context.Context, uid string, amountRupees float64) (*payment.Order, error) {
	f.lastUID = uid
	f.lastAmount = amountRupees
	return &payment.Order{ID: "order_1", Amount: int64(amountRupees * 100), Currency: "INR", Receipt: "r1"}, nil
}

func (f *fakePaymentService) Confirm(ctx context.Context, uid string, conf service.PaymentConfirmation) ([]model.IssuanceResult, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return []model.IssuanceResult{
		{Subject: "Asha", Status: model.IssuanceIssued, AuthCode: "AC1"},
	}, nil
}

func paymentRouter(svc service.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPaymentHandler(svc)
	withUID := func(c *gin.Context) { c.Set(middleware.ContextUID, "u1") }
	router.POST("/api/payment", withUID, h.CreateOrder)
	router.POST("/api/verify", withUID, h.Confirm)
	return router
}

func TestCreateOrderRequiresAmount(t *testing.T) {
	router := paymentRouter(&fakePaymentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payment", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "BAD_REQUEST_ERROR" {
		t.Errorf("expected gateway-shaped error code, got %q", body.Error.Code)
	}
}

func TestCreateOrderReturnsMintedOrder(t *testing.T) {
	svc := &fakePaymentService{}
	router := paymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payment", bytes.NewBufferString(`{"amount": 500}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if svc.lastUID != "u1" || svc.lastAmount != 500 {
		t.Errorf("service called with uid=%q amount=%v", svc.lastUID, svc.lastAmount)
	}

	var body struct {
		ID     string `json:"id"`
		Amount int64  `json:"amount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.ID != "order_1" || body.Amount != 50000 {
		t.Errorf("unexpected order body: %+v", body)
	}
}

func TestConfirmMapsBadSignatureTo400(t *testing.T) {
	router := paymentRouter(&fakePaymentService{confirmErr: service.ErrBadSignature})

	payload := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"bogus"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/verify", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestConfirmReturnsIssuanceResults(t *testing.T) {
	router := paymentRouter(&fakePaymentService{})

	payload := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/verify", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		Certificates []model.IssuanceResult `json:"certificates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Certificates) != 1 || body.Certificates[0].Status != model.IssuanceIssued {
		t.Errorf("unexpected certificates payload: %+v", body.Certificates)
	}
}
