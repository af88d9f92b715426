package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/lawdesk/legal-practice-api/api"
	"github.com/lawdesk/legal-practice-api/config"
	"github.com/lawdesk/legal-practice-api/databases"
	"github.com/lawdesk/legal-practice-api/lifecycle"
	"github.com/lawdesk/legal-practice-api/models"
)

// Task exported for testing purposes
type Task struct {
	DB databases.TaskDatabase
}

// CreateTaskHandler creates a task
func (t Task) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task.Details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	task.ID = primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now())
	task.Details.CreatedAt = now
	task.Details.UpdatedAt = now
	if task.Details.Status == "" {
		task.Details.Status = "Pending"
	}
	task.Details.Stage = string(lifecycle.NormalizeStage(task.Details.Stage))

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := t.DB.InsertOne(ctx, task)
	if err != nil {
		config.ErrorStatus("failed to create task", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Task created successfully",
		"id":      task.ID.Hex(),
	})
}

// TaskByIDHandler returns a task by ID
func (t Task) TaskByIDHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	tID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := t.DB.FindOne(ctx, bson.M{"_id": tID})
	if err != nil {
		config.ErrorStatus("failed to get task by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// TaskHandler returns all tasks, paginated and filterable by case and
// stage
func (t Task) TaskHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if caseID := r.URL.Query().Get("case_id"); caseID != "" {
		filter["task.caseID"] = caseID
	}
	if stage := r.URL.Query().Get("stage"); stage != "" {
		filter["task.stage"] = string(lifecycle.NormalizeStage(stage))
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["task.status"] = status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := t.DB.Find(ctx, filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get tasks", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Task{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateTaskHandler updates a task by ID
func (t Task) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	tID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var details models.TaskDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	update := bson.M{"$set": bson.M{
		"task.title":        details.Title,
		"task.description":  details.Description,
		"task.status":       details.Status,
		"task.dueDate":      details.DueDate,
		"task.assigneeID":   details.AssigneeID,
		"task.assigneeName": details.AssigneeName,
		"task.updatedAt":    primitive.NewDateTimeFromTime(time.Now()),
	}}

	if err := t.DB.UpdateOne(ctx, bson.M{"_id": tID}, update); err != nil {
		config.ErrorStatus("failed to update task", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Task updated successfully"})
}

// DeleteTaskHandler deletes a task by ID
func (t Task) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	tID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := t.DB.DeleteOne(ctx, bson.M{"_id": tID}); err != nil {
		config.ErrorStatus("failed to delete task", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Task deleted successfully"})
}
