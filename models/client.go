package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Client holds the structure for the clients collection in mongo
type Client struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details ClientDetails      `json:"client" bson:"client"`
	Version int32              `json:"__v" bson:"__v"`
}

// ClientDetails holds the structure for the inner client details.
// GSTIN and address are stored as entered; master-data validation
// happens outside this service.
type ClientDetails struct {
	FirmID string `json:"firmID" bson:"firmID"`

	Name  string `json:"name" bson:"name"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`

	GSTIN   string `json:"gstin,omitempty" bson:"gstin,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
