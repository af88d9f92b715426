package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Deadline holds the structure for the deadlines collection in mongo
type Deadline struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details DeadlineDetails    `json:"deadline" bson:"deadline"`
	Version int32              `json:"__v" bson:"__v"`
}

// DeadlineDetails holds the structure for the inner deadline details.
// DueDate is derived from BaseDate + PeriodDays at creation time and
// stored so list queries can sort and filter on it.
type DeadlineDetails struct {
	CaseID string `json:"caseID" bson:"caseID"`
	FirmID string `json:"firmID" bson:"firmID"`

	Title string `json:"title" bson:"title"`

	BaseDate        string `json:"baseDate" bson:"baseDate"` // "YYYY-MM-DD"
	PeriodDays      int    `json:"periodDays" bson:"periodDays"`
	WorkingDaysOnly bool   `json:"workingDaysOnly" bson:"workingDaysOnly"`

	DueDate string `json:"dueDate" bson:"dueDate"` // "YYYY-MM-DD"

	// Status: "open", "completed"
	Status string `json:"status" bson:"status"`

	AssigneeID   string `json:"assigneeID,omitempty" bson:"assigneeID,omitempty"`
	AssigneeName string `json:"assigneeName,omitempty" bson:"assigneeName,omitempty"`

	CompletedAt primitive.DateTime `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	EscalatedAt primitive.DateTime `json:"escalatedAt,omitempty" bson:"escalatedAt,omitempty"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
