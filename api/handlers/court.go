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
	"github.com/lawdesk/legal-practice-api/models"
)

// Court exported for testing purposes
type Court struct {
	DB databases.CourtDatabase
}

// CreateCourtHandler creates a court
func (c Court) CreateCourtHandler(w http.ResponseWriter, r *http.Request) {
	var court models.Court
	if err := json.NewDecoder(r.Body).Decode(&court.Details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	court.ID = primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now())
	court.Details.CreatedAt = now
	court.Details.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := c.DB.InsertOne(ctx, court)
	if err != nil {
		config.ErrorStatus("failed to create court", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Court created successfully",
		"id":      court.ID.Hex(),
	})
}

// CourtByIDHandler returns a court by ID
func (c Court) CourtByIDHandler(w http.ResponseWriter, r *http.Request) {
	courtID := mux.Vars(r)["court_id"]

	cID, err := primitive.ObjectIDFromHex(courtID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get court by ID", http.StatusNotFound, w, err)
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

// CourtHandler returns all courts for a firm
func (c Court) CourtHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if firmID := r.URL.Query().Get("firm_id"); firmID != "" {
		filter["court.firmID"] = firmID
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get courts", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Court{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateCourtHandler updates a court by ID
func (c Court) UpdateCourtHandler(w http.ResponseWriter, r *http.Request) {
	courtID := mux.Vars(r)["court_id"]

	cID, err := primitive.ObjectIDFromHex(courtID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var details models.CourtDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	update := bson.M{"$set": bson.M{
		"court.name":      details.Name,
		"court.forumType": details.ForumType,
		"court.bench":     details.Bench,
		"court.city":      details.City,
		"court.updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}}

	if err := c.DB.UpdateOne(ctx, bson.M{"_id": cID}, update); err != nil {
		config.ErrorStatus("failed to update court", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Court updated successfully"})
}

// DeleteCourtHandler deletes a court by ID
func (c Court) DeleteCourtHandler(w http.ResponseWriter, r *http.Request) {
	courtID := mux.Vars(r)["court_id"]

	cID, err := primitive.ObjectIDFromHex(courtID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.DB.DeleteOne(ctx, bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("failed to delete court", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Court deleted successfully"})
}
