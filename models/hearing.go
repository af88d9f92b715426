package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Hearing holds the structure for the hearings collection in mongo
type Hearing struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details HearingDetails     `json:"hearing" bson:"hearing"`
	Version int32              `json:"__v" bson:"__v"`
}

// HearingDetails holds the structure for the inner hearing details.
// Dates and times are firm-local strings; no time zone conversion is
// performed anywhere in the system.
type HearingDetails struct {
	CaseID  string `json:"caseID" bson:"caseID"`
	CourtID string `json:"courtID" bson:"courtID"`
	FirmID  string `json:"firmID" bson:"firmID"`

	Title string `json:"title" bson:"title"`

	// Date is the calendar date, "YYYY-MM-DD"
	Date string `json:"date" bson:"date"`
	// StartTime is the wall-clock start, 24-hour "HH:mm"
	StartTime string `json:"startTime" bson:"startTime"`

	// Status: "scheduled", "completed", "adjourned", "cancelled"
	Status string `json:"status" bson:"status"`

	LawyerID   string `json:"lawyerID" bson:"lawyerID"`
	LawyerName string `json:"lawyerName" bson:"lawyerName"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
