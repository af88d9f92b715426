package handlers

import (
	"context"
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

var (
	// Page denotes the starting Page for pagination results
	Page = 0
)

func getPage(Page int, r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", Page)
	} else {
		var err error
		Page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if Page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", Page))
			return 0
		}
	}
	return Page
}

// Case exported for testing purposes
type Case struct {
	DB  databases.CaseDatabase
	TDB databases.TaskDatabase
	HDB databases.HearingDatabase
	UDB databases.UserDatabase
}

type transitionRequest struct {
	ToStage        string `json:"toStage"`
	TransitionType string `json:"transitionType"`
	UserID         string `json:"userID"`
	UserName       string `json:"userName"`
	Notes          string `json:"notes"`
	ForceOverride  bool   `json:"forceOverride"`
}

type transitionResponse struct {
	CaseID         string               `json:"caseID"`
	FromStage      string               `json:"fromStage"`
	ToStage        string               `json:"toStage"`
	TransitionType string               `json:"transitionType"`
	Overridden     bool                 `json:"overridden"`
	Gate           lifecycle.GateResult `json:"gate"`
}

// CreateCaseHandler creates a new case
func (c Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var courtCase models.Case
	if err := json.NewDecoder(r.Body).Decode(&courtCase.Details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	courtCase.ID = primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now())
	courtCase.Details.CreatedAt = now
	courtCase.Details.UpdatedAt = now
	courtCase.Details.Status = "active"
	courtCase.Details.Stage = string(lifecycle.NormalizeStage(courtCase.Details.Stage))

	// Initialize history with creation entry
	courtCase.Details.History = []models.CaseHistoryEntry{
		{
			Action:    "created",
			UserID:    courtCase.Details.LawyerID,
			UserName:  courtCase.Details.LawyerName,
			Timestamp: now,
		},
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := c.DB.InsertOne(ctx, courtCase)
	if err != nil {
		config.ErrorStatus("failed to create case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Case created successfully",
		"id":      courtCase.ID.Hex(),
		"stage":   courtCase.Details.Stage,
	})
}

// CaseByIDHandler returns a case by ID
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
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

// CaseHandler returns all cases, paginated
func (c Case) CaseHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if firmID := r.URL.Query().Get("firm_id"); firmID != "" {
		filter["case.firmID"] = firmID
	}
	if clientID := r.URL.Query().Get("client_id"); clientID != "" {
		filter["case.clientID"] = clientID
	}
	if stage := r.URL.Query().Get("stage"); stage != "" {
		filter["case.stage"] = string(lifecycle.NormalizeStage(stage))
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.Find(ctx, filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusNotFound, w, err)
		return
	}
	// Because the frontend requires that the data elements inside models.Case exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Case{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateCaseHandler updates the mutable case fields. Stage is excluded
// here on purpose; stage moves only through TransitionCaseHandler so
// the gate and the audit trail cannot be skipped.
func (c Case) UpdateCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var details models.CaseDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	update := bson.M{"$set": bson.M{
		"case.title":       details.Title,
		"case.clientID":    details.ClientID,
		"case.status":      details.Status,
		"case.lawyerID":    details.LawyerID,
		"case.lawyerName":  details.LawyerName,
		"case.description": details.Description,
		"case.updatedAt":   primitive.NewDateTimeFromTime(time.Now()),
	}}

	if err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, update); err != nil {
		config.ErrorStatus("failed to update case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Case updated successfully"})
}

// DeleteCaseHandler deletes a case by ID
func (c Case) DeleteCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.DB.DeleteOne(ctx, bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("failed to delete case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Case deleted successfully"})
}

// TransitionOptionsHandler returns the stages a case may move to for
// the requested transition type
func (c Case) TransitionOptionsHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	transitionType, ok := lifecycle.ParseTransitionType(r.URL.Query().Get("type"))
	if !ok {
		config.ErrorStatus("invalid transition type", http.StatusBadRequest, w, fmt.Errorf("unknown type %q", r.URL.Query().Get("type")))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	current := lifecycle.NormalizeStage(dbResp.Details.Stage)
	stages := lifecycle.AvailableStages(current, transitionType)

	b, err := json.Marshal(map[string]interface{}{
		"currentStage":    current,
		"transitionType":  transitionType,
		"availableStages": stages,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// BlockersHandler previews what would block a transition without
// performing it, so the frontend can disable or annotate the button
func (c Case) BlockersHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	transitionType, ok := lifecycle.ParseTransitionType(r.URL.Query().Get("type"))
	if !ok {
		config.ErrorStatus("invalid transition type", http.StatusBadRequest, w, fmt.Errorf("unknown type %q", r.URL.Query().Get("type")))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	gate, err := c.evaluateGate(r, dbResp, transitionType)
	if err != nil {
		config.ErrorStatus("failed to evaluate blockers", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(gate)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// TransitionCaseHandler moves a case to a new stage. Forward moves are
// gated on open work; a blocked transition returns 409 with the gate
// detail unless an admin forces it with an override.
func (c Case) TransitionCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	transitionType, ok := lifecycle.ParseTransitionType(req.TransitionType)
	if !ok {
		config.ErrorStatus("invalid transition type", http.StatusBadRequest, w, fmt.Errorf("unknown type %q", req.TransitionType))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	current := lifecycle.NormalizeStage(dbResp.Details.Stage)
	toStage := lifecycle.Stage(req.ToStage)

	if !stageAllowed(toStage, lifecycle.AvailableStages(current, transitionType)) {
		config.ErrorStatus("stage not reachable from current stage", http.StatusUnprocessableEntity, w,
			fmt.Errorf("cannot move from %q to %q via %s", current, toStage, transitionType))
		return
	}

	gate, err := c.evaluateGate(r, dbResp, transitionType)
	if err != nil {
		config.ErrorStatus("failed to evaluate blockers", http.StatusInternalServerError, w, err)
		return
	}

	notes := req.Notes
	overridden := false
	if gate.Blocked {
		if !req.ForceOverride {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(transitionResponse{
				CaseID:         caseID,
				FromStage:      string(current),
				ToStage:        string(toStage),
				TransitionType: string(transitionType),
				Gate:           gate,
			})
			return
		}

		admin, err := c.isAdmin(ctx, req.UserID)
		if err != nil {
			config.ErrorStatus("failed to get user by ID", http.StatusNotFound, w, err)
			return
		}
		if !admin {
			config.ErrorStatus("override requires admin role", http.StatusForbidden, w,
				fmt.Errorf("user %s is not an admin", req.UserID))
			return
		}
		notes = lifecycle.OverrideNote(notes, len(gate.IncompleteTasks), len(gate.PendingHearings))
		overridden = true
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	historyEntry := models.CaseHistoryEntry{
		Action:         "stage_transition",
		TransitionType: string(transitionType),
		FromStage:      string(current),
		ToStage:        string(toStage),
		UserID:         req.UserID,
		UserName:       req.UserName,
		Notes:          notes,
		Timestamp:      now,
	}

	update := bson.M{
		"$set": bson.M{
			"case.stage":     string(toStage),
			"case.updatedAt": now,
		},
		"$push": bson.M{"case.history": historyEntry},
	}

	if err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, update); err != nil {
		config.ErrorStatus("failed to transition case", http.StatusInternalServerError, w, err)
		return
	}

	EmitStageTransition(caseID, dbResp.Details.CaseNumber, string(current), string(toStage), string(transitionType))

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transitionResponse{
		CaseID:         caseID,
		FromStage:      string(current),
		ToStage:        string(toStage),
		TransitionType: string(transitionType),
		Overridden:     overridden,
		Gate:           gate,
	})
}

// evaluateGate loads the open work snapshots for the case and runs the
// blocking rule against them
func (c Case) evaluateGate(r *http.Request, courtCase *models.Case, transitionType lifecycle.TransitionType) (lifecycle.GateResult, error) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseID := courtCase.ID.Hex()

	taskResp, err := c.TDB.Find(ctx, bson.M{"task.caseID": caseID})
	if err != nil {
		return lifecycle.GateResult{}, err
	}
	hearingResp, err := c.HDB.Find(ctx, bson.M{"hearing.caseID": caseID})
	if err != nil {
		return lifecycle.GateResult{}, err
	}

	tasks := make([]lifecycle.Task, 0, len(taskResp))
	for _, t := range taskResp {
		tasks = append(tasks, lifecycle.Task{
			ID:     t.ID.Hex(),
			CaseID: t.Details.CaseID,
			Stage:  lifecycle.NormalizeStage(t.Details.Stage),
			Title:  t.Details.Title,
			Status: t.Details.Status,
		})
	}
	hearings := make([]lifecycle.Hearing, 0, len(hearingResp))
	for _, h := range hearingResp {
		hearings = append(hearings, lifecycle.Hearing{
			ID:     h.ID.Hex(),
			CaseID: h.Details.CaseID,
			Title:  h.Details.Title,
			Date:   h.Details.Date,
			Status: h.Details.Status,
		})
	}

	current := lifecycle.NormalizeStage(courtCase.Details.Stage)
	return lifecycle.EvaluateBlockers(caseID, current, transitionType, tasks, hearings), nil
}

func (c Case) isAdmin(ctx context.Context, userID string) (bool, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, err
	}
	user, err := c.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		return false, err
	}
	return user.Details.IsAdmin(), nil
}

func stageAllowed(toStage lifecycle.Stage, available []lifecycle.Stage) bool {
	for _, s := range available {
		if s == toStage {
			return true
		}
	}
	return false
}
