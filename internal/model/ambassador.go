package model

import "time"

// CampusAmbassador is an admin-managed profile shown on the public site.
// The portrait lives in the blob store; only its URL is kept here.
type CampusAmbassador struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	LinkedInLink string `json:"linkedInLink" bson:"linkedInLink"`
	Place        string `json:"place" bson:"place"`
	ImageURL     string `json:"imageUrl" bson:"imageUrl"`
}

// AmbassadorApplication is the public sign-up form for prospective campus
// ambassadors, distinct from the admin-curated profiles above.
type AmbassadorApplication struct {
	ID            string    `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	State         string    `json:"state" bson:"state"`
	City          string    `json:"city" bson:"city"`
	College       string    `json:"college" bson:"college"`
	YearOfStudy   string    `json:"yearOfStudy" bson:"yearOfStudy"`
	DegreeProgram string    `json:"degreeProgram" bson:"degreeProgram"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
