package model

import "time"

// Identity namespaces. Participants and admins are separate credential
// spaces even when the same email appears in both.
const (
	NamespaceUsers = "users"
	NamespaceAdmin = "admin"
)

// Account is an identity-provider credential record. Password hashes never
// leave this package boundary in API responses.
type Account struct {
	UID           string    `json:"uid" bson:"_id"`
	Namespace     string    `json:"namespace" bson:"namespace"`
	Email         string    `json:"email" bson:"email"`
	PasswordHash  string    `json:"-" bson:"passwordHash"`
	EmailVerified bool      `json:"emailVerified" bson:"emailVerified"`
	VerifyToken   string    `json:"-" bson:"verifyToken,omitempty"`
	ResetToken    string    `json:"-" bson:"resetToken,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// AdminMirror is the admin-side projection kept under the admin collection,
// matching the users-collection mirror for participants.
type AdminMirror struct {
	UID   string `json:"uid" bson:"_id"`
	Email string `json:"email" bson:"email"`
}
