package model

import "time"

// Certificate types. Team-member certificates come out of the payment
// confirmation workflow, session certificates out of the session-form bulk
// generator; the rest are entered through the admin panel.
const (
	CertificateTypeTeamMember = "tm"
	CertificateTypeSession    = "sec"
)

// Certificate is a flat lookup record verified by auth code. Depending on the
// issuing route only a subset of the fields is present, so everything beyond
// the auth code is optional. Spreadsheet imports may carry columns outside
// this set; those rows are stored and served as raw documents by the
// repository instead.
type Certificate struct {
	ID               string    `json:"id,omitempty" bson:"_id,omitempty"`
	AuthCode         string    `json:"authCode" bson:"authCode"`
	Type             string    `json:"type,omitempty" bson:"type,omitempty"`
	Name             string    `json:"name,omitempty" bson:"name,omitempty"`
	TeamName         string    `json:"teamName,omitempty" bson:"teamName,omitempty"`
	Topic            string    `json:"topic,omitempty" bson:"topic,omitempty"`
	Whatsapp         string    `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	CampusAmbassador string    `json:"campusAmbassador,omitempty" bson:"campusAmbassador,omitempty"`
	Date             string    `json:"date,omitempty" bson:"date,omitempty"`
	School           string    `json:"school,omitempty" bson:"school,omitempty"`
	AcademicYear     string    `json:"academicYear,omitempty" bson:"academicYear,omitempty"`
	AwardedOn        string    `json:"awardedOn,omitempty" bson:"awardedOn,omitempty"`
	Year             string    `json:"year,omitempty" bson:"year,omitempty"`
	Description      string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// IssuanceStatus values for per-item issuance results.
const (
	IssuanceIssued  = "issued"
	IssuanceSkipped = "skipped"
	IssuanceFailed  = "failed"
)

// IssuanceResult reports the outcome for a single member or participant in a
// bulk issuance run, so callers can tell full from partial success.
type IssuanceResult struct {
	Subject  string `json:"subject"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	AuthCode string `json:"authCode,omitempty"`
}
