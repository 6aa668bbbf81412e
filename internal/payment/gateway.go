package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the gateway's view of a minted payment order.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// Gateway mints payment orders with the upstream provider. Implementations
// must not persist anything; a gateway failure leaves no local record.
type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency string) (*Order, error)
}

// RazorpayGateway is the production Gateway over the Razorpay orders API.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency string) (*Order, error) {
	receipt, err := newReceipt()
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	order := &Order{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}
	return order, nil
}

// newReceipt returns a random hex receipt string, 10 bytes of entropy.
func newReceipt() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
