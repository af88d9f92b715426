package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Case holds the structure for the cases collection in mongo
type Case struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details CaseDetails        `json:"case" bson:"case"`
	Version int32              `json:"__v" bson:"__v"`
}

// CaseDetails holds the structure for the inner case details
type CaseDetails struct {
	CaseNumber string `json:"caseNumber" bson:"caseNumber"`
	Title      string `json:"title" bson:"title"`

	// Firm and client ownership
	FirmID   string `json:"firmID" bson:"firmID"`
	ClientID string `json:"clientID" bson:"clientID"`

	// Lifecycle stage, always one of the canonical stage names
	Stage string `json:"stage" bson:"stage"`

	// Status: "active", "on_hold", "closed"
	Status string `json:"status" bson:"status"`

	// Assigned lawyer
	LawyerID   string `json:"lawyerID" bson:"lawyerID"`
	LawyerName string `json:"lawyerName" bson:"lawyerName"`

	Description string `json:"description" bson:"description"`

	// Audit trail; stage transitions are part of the legal audit trail
	History []CaseHistoryEntry `json:"history" bson:"history"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// CaseHistoryEntry records a single event in the case lifecycle
type CaseHistoryEntry struct {
	Action         string             `json:"action" bson:"action"` // "created", "stage_transition", "closed", "reopened"
	TransitionType string             `json:"transitionType,omitempty" bson:"transitionType,omitempty"`
	FromStage      string             `json:"fromStage,omitempty" bson:"fromStage,omitempty"`
	ToStage        string             `json:"toStage,omitempty" bson:"toStage,omitempty"`
	UserID         string             `json:"userID" bson:"userID"`
	UserName       string             `json:"userName" bson:"userName"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Timestamp      primitive.DateTime `json:"timestamp" bson:"timestamp"`
}
