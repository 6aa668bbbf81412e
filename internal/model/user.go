package model

import "time"

// User represents a registered participant document. The document id is the
// identity-provider uid, so one document per account.
type User struct {
	UID            string                   `json:"uid" bson:"_id"`
	Email          string                   `json:"email" bson:"email"`
	Team           *Team                    `json:"team,omitempty" bson:"team,omitempty"`
	TeamRegistered bool                     `json:"teamRegistered" bson:"teamRegistered"`
	PaymentStatus  string                   `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	AmountDue      float64                  `json:"amountDue" bson:"amountDue"`
	Attendance     bool                     `json:"attendance" bson:"attendance"`
	Payments       map[string]PaymentRecord `json:"payments,omitempty" bson:"payments,omitempty"`
	Marks          *MarksSheet              `json:"marks,omitempty" bson:"marks,omitempty"`
	CreatedAt      time.Time                `json:"createdAt" bson:"createdAt"`
}

// Payment status values for User.PaymentStatus.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Team holds the registration form data nested under the user.
type Team struct {
	TeamName         string           `json:"teamName" bson:"teamName"`
	Country          string           `json:"country" bson:"country"`
	CompetitionTopic CompetitionTopic `json:"competitionTopic" bson:"competitionTopic"`
	Mentor           Mentor           `json:"mentor" bson:"mentor"`
	Members          []TeamMember     `json:"members" bson:"members"`
}

type CompetitionTopic struct {
	AgeGroup string `json:"ageGroup" bson:"ageGroup"`
	Topic    string `json:"topic" bson:"topic"`
	Category string `json:"category" bson:"category"`
}

type Mentor struct {
	Name  string `json:"name" bson:"name"`
	Age   string `json:"age" bson:"age"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// TeamMember is embedded in Team.Members; members are not independently
// addressable outside their user document.
type TeamMember struct {
	Name            string `json:"name" bson:"name"`
	AuthCode        string `json:"authCode" bson:"authCode"`
	ProfileImageURL string `json:"profileImageUrl,omitempty" bson:"profileImageUrl,omitempty"`
}

// PaymentRecord is one gateway order attempt, keyed by order id inside the
// user's payments map. Records are only ever added, never removed.
type PaymentRecord struct {
	OrderID   string    `json:"orderId" bson:"orderId"`
	PaymentID string    `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	Signature string    `json:"signature,omitempty" bson:"signature,omitempty"`
	Amount    int64     `json:"amount" bson:"amount"`
	Currency  string    `json:"currency" bson:"currency"`
	Receipt   string    `json:"receipt" bson:"receipt"`
	Status    string    `json:"status" bson:"status"`
	IsPaid    bool      `json:"isPaid" bson:"isPaid"`
	Verified  bool      `json:"verified" bson:"verified"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// MarksSheet stores the judging rubric entered by reviewers plus the derived
// totals. Section maps go from rubric item name to score.
type MarksSheet struct {
	Innovation          map[string]float64 `json:"innovation,omitempty" bson:"innovation,omitempty"`
	Technical           map[string]float64 `json:"technical,omitempty" bson:"technical,omitempty"`
	Applicability       map[string]float64 `json:"applicability,omitempty" bson:"applicability,omitempty"`
	Presentation        map[string]float64 `json:"presentation,omitempty" bson:"presentation,omitempty"`
	Challenge           map[string]float64 `json:"challenge,omitempty" bson:"challenge,omitempty"`
	DesignFunctionality map[string]float64 `json:"designFunctionality,omitempty" bson:"designFunctionality,omitempty"`
	Totals              *MarksTotals       `json:"totals,omitempty" bson:"totals,omitempty"`
}

type MarksTotals struct {
	SectionTotals map[string]float64 `json:"sectionTotals" bson:"sectionTotals"`
	OverallTotal  float64            `json:"overallTotal" bson:"overallTotal"`
}
