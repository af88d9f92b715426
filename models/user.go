package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User holds the structure for the users collection in mongo.
// Users are members of the firm, not clients.
type User struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details UserDetails        `json:"user" bson:"user"`
	Version int32              `json:"__v" bson:"__v"`
}

// UserDetails holds the structure for the inner user details
type UserDetails struct {
	FirmID string `json:"firmID" bson:"firmID"`

	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`

	// Password is a bcrypt hash; never returned in plain responses
	Password string `json:"-" bson:"password"`

	// Role: "admin", "lawyer", "paralegal". The admin role is what
	// permits a forced stage transition past the blocking gate.
	Role string `json:"role" bson:"role"`

	Active bool `json:"active" bson:"active"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin reports whether the user may bypass transition blockers
func (u UserDetails) IsAdmin() bool {
	return u.Role == "admin"
}
