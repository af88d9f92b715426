package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Task holds the structure for the tasks collection in mongo
type Task struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details TaskDetails        `json:"task" bson:"task"`
	Version int32              `json:"__v" bson:"__v"`
}

// TaskDetails holds the structure for the inner task details
type TaskDetails struct {
	CaseID string `json:"caseID" bson:"caseID"`
	FirmID string `json:"firmID" bson:"firmID"`

	// Stage the task belongs to; a case cannot move Forward out of a
	// stage while tasks at that stage are not Completed
	Stage string `json:"stage" bson:"stage"`

	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Status: "Pending", "InProgress", "Completed"
	Status string `json:"status" bson:"status"`

	DueDate string `json:"dueDate,omitempty" bson:"dueDate,omitempty"` // "YYYY-MM-DD"

	AssigneeID   string `json:"assigneeID" bson:"assigneeID"`
	AssigneeName string `json:"assigneeName" bson:"assigneeName"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
