package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lawdesk/legal-practice-api/api"
	"github.com/lawdesk/legal-practice-api/config"
	"github.com/lawdesk/legal-practice-api/databases"
	"github.com/lawdesk/legal-practice-api/deadlines"
	"github.com/lawdesk/legal-practice-api/models"
)

// Deadline exported for testing purposes
type Deadline struct {
	DB databases.DeadlineDatabase
}

type computeDeadlineRequest struct {
	BaseDate        string `json:"baseDate"`
	PeriodDays      int    `json:"periodDays"`
	WorkingDaysOnly bool   `json:"workingDaysOnly"`
}

// deadlineWithRAG wraps the stored deadline with its current urgency
// classification, computed at read time
type deadlineWithRAG struct {
	models.Deadline
	RAG deadlines.RAG `json:"rag"`
}

// ComputeDeadlineHandler computes a due date without persisting it
func (d Deadline) ComputeDeadlineHandler(w http.ResponseWriter, r *http.Request) {
	var req computeDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	comp, err := deadlines.Compute(req.BaseDate, req.PeriodDays, req.WorkingDaysOnly)
	if err != nil {
		config.ErrorStatus("failed to compute deadline", http.StatusBadRequest, w, err)
		return
	}

	b, err := json.Marshal(comp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateDeadlineHandler creates a deadline, deriving the due date from
// the base date and statutory period
func (d Deadline) CreateDeadlineHandler(w http.ResponseWriter, r *http.Request) {
	var deadline models.Deadline
	if err := json.NewDecoder(r.Body).Decode(&deadline.Details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	comp, err := deadlines.Compute(deadline.Details.BaseDate, deadline.Details.PeriodDays, deadline.Details.WorkingDaysOnly)
	if err != nil {
		config.ErrorStatus("failed to compute deadline", http.StatusBadRequest, w, err)
		return
	}

	deadline.ID = primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now())
	deadline.Details.DueDate = comp.DueDate
	deadline.Details.Status = "open"
	deadline.Details.CreatedAt = now
	deadline.Details.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err = d.DB.InsertOne(ctx, deadline)
	if err != nil {
		config.ErrorStatus("failed to create deadline", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Deadline created successfully",
		"id":      deadline.ID.Hex(),
		"dueDate": deadline.Details.DueDate,
	})
}

// DeadlineByIDHandler returns a deadline by ID with its RAG status
func (d Deadline) DeadlineByIDHandler(w http.ResponseWriter, r *http.Request) {
	deadlineID := mux.Vars(r)["deadline_id"]

	dID, err := primitive.ObjectIDFromHex(deadlineID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.FindOne(ctx, bson.M{"_id": dID})
	if err != nil {
		config.ErrorStatus("failed to get deadline by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(deadlineWithRAG{
		Deadline: *dbResp,
		RAG:      deadlines.Classify(dbResp.Details.DueDate, time.Now()),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeadlineHandler returns all deadlines, filterable by case, firm, and
// status, each decorated with its RAG classification
func (d Deadline) DeadlineHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if caseID := r.URL.Query().Get("case_id"); caseID != "" {
		filter["deadline.caseID"] = caseID
	}
	if firmID := r.URL.Query().Get("firm_id"); firmID != "" {
		filter["deadline.firmID"] = firmID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["deadline.status"] = status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get deadlines", http.StatusNotFound, w, err)
		return
	}

	now := time.Now()
	out := make([]deadlineWithRAG, 0, len(dbResp))
	for _, dl := range dbResp {
		out = append(out, deadlineWithRAG{
			Deadline: dl,
			RAG:      deadlines.Classify(dl.Details.DueDate, now),
		})
	}

	b, err := json.Marshal(out)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CompleteDeadlineHandler marks a deadline completed
func (d Deadline) CompleteDeadlineHandler(w http.ResponseWriter, r *http.Request) {
	deadlineID := mux.Vars(r)["deadline_id"]

	dID, err := primitive.ObjectIDFromHex(deadlineID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{"$set": bson.M{
		"deadline.status":      "completed",
		"deadline.completedAt": now,
		"deadline.updatedAt":   now,
	}}

	if err := d.DB.UpdateOne(ctx, bson.M{"_id": dID}, update); err != nil {
		config.ErrorStatus("failed to complete deadline", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Deadline completed successfully"})
}

// DeleteDeadlineHandler deletes a deadline by ID
func (d Deadline) DeleteDeadlineHandler(w http.ResponseWriter, r *http.Request) {
	deadlineID := mux.Vars(r)["deadline_id"]

	dID, err := primitive.ObjectIDFromHex(deadlineID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := d.DB.DeleteOne(ctx, bson.M{"_id": dID}); err != nil {
		config.ErrorStatus("failed to delete deadline", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Deadline deleted successfully"})
}
