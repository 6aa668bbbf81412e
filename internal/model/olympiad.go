package model

import "time"

// OlympiadEntry is one participant's document in the olympiad event
// namespace: their submitted form, best scores and payment attempts.
// The document id is the participant uid, which is what makes the
// duplicate-submission guard a simple id collision.
type OlympiadEntry struct {
	UID          string                          `json:"uid" bson:"_id"`
	Form         map[string]interface{}          `json:"form" bson:"form"`
	IsRegistered bool                            `json:"isRegistered" bson:"isRegistered"`
	Standard     string                          `json:"std,omitempty" bson:"std,omitempty"`
	Marks        *float64                        `json:"marks,omitempty" bson:"marks,omitempty"`
	MockMarks    *float64                        `json:"mockMarks,omitempty" bson:"mockMarks,omitempty"`
	Payments     map[string]OlympiadPaymentEntry `json:"payments,omitempty" bson:"payments,omitempty"`
	CreatedAt    time.Time                       `json:"createdAt" bson:"createdAt"`
}

// OlympiadPaymentEntry mirrors PaymentRecord with the event-specific
// canAttempt gate, which flips false once marks are recorded.
type OlympiadPaymentEntry struct {
	OrderID    string     `json:"orderId" bson:"orderId"`
	PaymentID  string     `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	Amount     int64      `json:"amount" bson:"amount"`
	Currency   string     `json:"currency" bson:"currency"`
	Receipt    string     `json:"receipt" bson:"receipt"`
	Status     string     `json:"status" bson:"status"`
	IsPaid     bool       `json:"isPaid" bson:"isPaid"`
	CanAttempt bool       `json:"canAttempt" bson:"canAttempt"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	PaidAt     *time.Time `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
}
