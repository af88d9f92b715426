package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document holds the structure for the documents collection in mongo.
// Only metadata lives here; the binary is stored in Cloudinary.
type Document struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details DocumentDetails    `json:"document" bson:"document"`
	Version int32              `json:"__v" bson:"__v"`
}

// DocumentDetails holds the structure for the inner document details
type DocumentDetails struct {
	CaseID string `json:"caseID" bson:"caseID"`
	FirmID string `json:"firmID" bson:"firmID"`

	Title string `json:"title" bson:"title"`

	// Cloudinary references
	PublicID  string `json:"publicID" bson:"publicID"`
	SecureURL string `json:"secureURL" bson:"secureURL"`
	Format    string `json:"format,omitempty" bson:"format,omitempty"`
	SizeBytes int64  `json:"sizeBytes,omitempty" bson:"sizeBytes,omitempty"`

	UploadedByID   string `json:"uploadedByID" bson:"uploadedByID"`
	UploadedByName string `json:"uploadedByName" bson:"uploadedByName"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
