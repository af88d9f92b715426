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
	"github.com/lawdesk/legal-practice-api/models"
	"github.com/lawdesk/legal-practice-api/scheduling"
)

// Hearing exported for testing purposes
type Hearing struct {
	DB   databases.HearingDatabase
	CDB  databases.CaseDatabase
	CoDB databases.CourtDatabase
}

type hearingCreateResponse struct {
	ID        string            `json:"id"`
	Message   string            `json:"message"`
	Conflicts scheduling.Result `json:"conflicts"`
}

// CreateHearingHandler creates a hearing and returns any calendar
// conflicts alongside it. Conflicts warn, they never block creation;
// the scheduling decision stays with the lawyer.
func (h Hearing) CreateHearingHandler(w http.ResponseWriter, r *http.Request) {
	var hearing models.Hearing
	if err := json.NewDecoder(r.Body).Decode(&hearing.Details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	hearing.ID = primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now())
	hearing.Details.CreatedAt = now
	hearing.Details.UpdatedAt = now
	if hearing.Details.Status == "" {
		hearing.Details.Status = "scheduled"
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	conflicts, err := h.detectConflicts(ctx, scheduling.Hearing{
		ID:        hearing.ID.Hex(),
		CaseID:    hearing.Details.CaseID,
		CourtID:   hearing.Details.CourtID,
		Title:     hearing.Details.Title,
		Date:      hearing.Details.Date,
		StartTime: hearing.Details.StartTime,
	}, hearing.Details.FirmID)
	if err != nil {
		config.ErrorStatus("failed to check hearing conflicts", http.StatusInternalServerError, w, err)
		return
	}

	_, err = h.DB.InsertOne(ctx, hearing)
	if err != nil {
		config.ErrorStatus("failed to create hearing", http.StatusInternalServerError, w, err)
		return
	}

	if conflicts.HasConflicts {
		EmitConflictWarning(hearing.Details.LawyerID, conflicts)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(hearingCreateResponse{
		ID:        hearing.ID.Hex(),
		Message:   "Hearing created successfully",
		Conflicts: conflicts,
	})
}

// ConflictCheckHandler runs the conflict detector for a proposed
// hearing without persisting anything
func (h Hearing) ConflictCheckHandler(w http.ResponseWriter, r *http.Request) {
	var raw scheduling.LegacyHearing
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	proposed := scheduling.HearingFromLegacy(raw)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	conflicts, err := h.detectConflicts(ctx, proposed, r.URL.Query().Get("firm_id"))
	if err != nil {
		config.ErrorStatus("failed to check hearing conflicts", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(conflicts)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// HearingByIDHandler returns a hearing by ID
func (h Hearing) HearingByIDHandler(w http.ResponseWriter, r *http.Request) {
	hearingID := mux.Vars(r)["hearing_id"]

	hID, err := primitive.ObjectIDFromHex(hearingID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.FindOne(ctx, bson.M{"_id": hID})
	if err != nil {
		config.ErrorStatus("failed to get hearing by ID", http.StatusNotFound, w, err)
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

// HearingHandler returns all hearings, paginated and filterable by
// case, date, or firm
func (h Hearing) HearingHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if caseID := r.URL.Query().Get("case_id"); caseID != "" {
		filter["hearing.caseID"] = caseID
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["hearing.date"] = date
	}
	if firmID := r.URL.Query().Get("firm_id"); firmID != "" {
		filter["hearing.firmID"] = firmID
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.Find(ctx, filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get hearings", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Hearing{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateHearingHandler updates a hearing by ID and reruns the conflict
// check for the new slot
func (h Hearing) UpdateHearingHandler(w http.ResponseWriter, r *http.Request) {
	hearingID := mux.Vars(r)["hearing_id"]

	hID, err := primitive.ObjectIDFromHex(hearingID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var details models.HearingDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	conflicts, err := h.detectConflicts(ctx, scheduling.Hearing{
		ID:        hearingID,
		CaseID:    details.CaseID,
		CourtID:   details.CourtID,
		Title:     details.Title,
		Date:      details.Date,
		StartTime: details.StartTime,
	}, details.FirmID)
	if err != nil {
		config.ErrorStatus("failed to check hearing conflicts", http.StatusInternalServerError, w, err)
		return
	}

	update := bson.M{"$set": bson.M{
		"hearing.title":      details.Title,
		"hearing.date":       details.Date,
		"hearing.startTime":  details.StartTime,
		"hearing.status":     details.Status,
		"hearing.courtID":    details.CourtID,
		"hearing.lawyerID":   details.LawyerID,
		"hearing.lawyerName": details.LawyerName,
		"hearing.notes":      details.Notes,
		"hearing.updatedAt":  primitive.NewDateTimeFromTime(time.Now()),
	}}

	if err := h.DB.UpdateOne(ctx, bson.M{"_id": hID}, update); err != nil {
		config.ErrorStatus("failed to update hearing", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(hearingCreateResponse{
		ID:        hearingID,
		Message:   "Hearing updated successfully",
		Conflicts: conflicts,
	})
}

// DeleteHearingHandler deletes a hearing by ID
func (h Hearing) DeleteHearingHandler(w http.ResponseWriter, r *http.Request) {
	hearingID := mux.Vars(r)["hearing_id"]

	hID, err := primitive.ObjectIDFromHex(hearingID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.DeleteOne(ctx, bson.M{"_id": hID}); err != nil {
		config.ErrorStatus("failed to delete hearing", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Hearing deleted successfully"})
}

// detectConflicts loads the same-day hearings plus the case and court
// lookups needed to decorate any overlaps, then runs the detector
func (h Hearing) detectConflicts(ctx context.Context, proposed scheduling.Hearing, firmID string) (scheduling.Result, error) {
	if proposed.Date == "" {
		return scheduling.DetectConflicts(proposed, nil, nil, nil), nil
	}

	filter := bson.M{
		"hearing.date":   proposed.Date,
		"hearing.status": "scheduled",
	}
	if firmID != "" {
		filter["hearing.firmID"] = firmID
	}

	sameDay, err := h.DB.Find(ctx, filter)
	if err != nil {
		return scheduling.Result{}, err
	}

	existing := make([]scheduling.Hearing, 0, len(sameDay))
	caseIDs := make([]primitive.ObjectID, 0, len(sameDay))
	courtIDs := make([]primitive.ObjectID, 0, len(sameDay))
	for _, m := range sameDay {
		existing = append(existing, scheduling.Hearing{
			ID:        m.ID.Hex(),
			CaseID:    m.Details.CaseID,
			CourtID:   m.Details.CourtID,
			Title:     m.Details.Title,
			Date:      m.Details.Date,
			StartTime: m.Details.StartTime,
		})
		if id, err := primitive.ObjectIDFromHex(m.Details.CaseID); err == nil {
			caseIDs = append(caseIDs, id)
		}
		if id, err := primitive.ObjectIDFromHex(m.Details.CourtID); err == nil {
			courtIDs = append(courtIDs, id)
		}
	}

	var caseRefs []scheduling.CaseRef
	if len(caseIDs) > 0 {
		caseResp, err := h.CDB.Find(ctx, bson.M{"_id": bson.M{"$in": caseIDs}})
		if err != nil {
			return scheduling.Result{}, err
		}
		for _, cs := range caseResp {
			caseRefs = append(caseRefs, scheduling.CaseRef{
				ID:         cs.ID.Hex(),
				CaseNumber: cs.Details.CaseNumber,
				Title:      cs.Details.Title,
			})
		}
	}

	var courtRefs []scheduling.CourtRef
	if len(courtIDs) > 0 {
		courtResp, err := h.CoDB.Find(ctx, bson.M{"_id": bson.M{"$in": courtIDs}})
		if err != nil {
			return scheduling.Result{}, err
		}
		for _, co := range courtResp {
			courtRefs = append(courtRefs, scheduling.CourtRef{
				ID:   co.ID.Hex(),
				Name: co.Details.Name,
			})
		}
	}

	return scheduling.DetectConflicts(proposed, existing, caseRefs, courtRefs), nil
}
