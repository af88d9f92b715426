package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Court holds the structure for the courts collection in mongo.
// Courts are the forum master data for the firm.
type Court struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details CourtDetails       `json:"court" bson:"court"`
	Version int32              `json:"__v" bson:"__v"`
}

// CourtDetails holds the structure for the inner court details
type CourtDetails struct {
	FirmID string `json:"firmID" bson:"firmID"`

	Name string `json:"name" bson:"name"`

	// ForumType: "District Court", "Tribunal", "High Court", "Supreme Court", "Commissionerate"
	ForumType string `json:"forumType" bson:"forumType"`

	Bench string `json:"bench,omitempty" bson:"bench,omitempty"`
	City  string `json:"city,omitempty" bson:"city,omitempty"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
