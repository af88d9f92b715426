package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lawdesk/legal-practice-api/api/handlers"
	"github.com/lawdesk/legal-practice-api/databases"
	"github.com/lawdesk/legal-practice-api/databases/mocks"
	"github.com/lawdesk/legal-practice-api/models"
)

func TestHearing_HearingByIDHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/hearing/1234", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"hearing_id": "1234"})
	req.Header.Set("Authorization", "Bearer abc123")

	h := handlers.Hearing{
		DB: mocks.NewHearingDatabase(t),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HearingByIDHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get objectID from Hex", Error: "the provided hex string is not a valid ObjectID"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestHearing_HearingByIDHandlerFailedToFindOne(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/hearing/608cafe595eb9dc05379ffff", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"hearing_id": "608cafe595eb9dc05379ffff"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "hearings").Return(conn)

	h := handlers.Hearing{
		DB: databases.NewHearingDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HearingByIDHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusNotFound)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get hearing by ID", Error: "mongo: no documents in result"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestHearing_ConflictCheckHandler(t *testing.T) {
	hID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379eeee")

	hearingDB := mocks.NewHearingDatabase(t)
	hearingDB.On("Find", mock.Anything, mock.Anything).Return([]models.Hearing{
		{
			ID: hID,
			Details: models.HearingDetails{
				CaseID:    "case-legacy-1",
				CourtID:   "court-legacy-1",
				Title:     "Stay application",
				Date:      "2026-09-01",
				StartTime: "10:00",
				Status:    "scheduled",
			},
		},
	}, nil)

	body := []byte(`{"case_id": "case-legacy-2", "courtId": "court-legacy-1", "date": "2026-09-01", "start_time": "10:30"}`)
	req, err := http.NewRequest("POST", "/api/v1/hearings/conflict-check", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	h := handlers.Hearing{
		DB:   hearingDB,
		CDB:  mocks.NewCaseDatabase(t),
		CoDB: mocks.NewCourtDatabase(t),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.ConflictCheckHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		HasConflicts bool `json:"hasConflicts"`
		Conflicts    []struct {
			CaseNumber     string `json:"caseNumber"`
			CourtName      string `json:"courtName"`
			EndTime        string `json:"endTime"`
			OverlapMinutes int    `json:"overlapMinutes"`
			Severity       string `json:"severity"`
		} `json:"conflicts"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.HasConflicts)
	assert.Len(t, resp.Conflicts, 1)
	// legacy ids are not ObjectIDs, so no lookup rows exist to decorate with
	assert.Equal(t, "Unknown", resp.Conflicts[0].CaseNumber)
	assert.Equal(t, "Unknown", resp.Conflicts[0].CourtName)
	assert.Equal(t, "11:00", resp.Conflicts[0].EndTime)
	assert.Equal(t, 30, resp.Conflicts[0].OverlapMinutes)
	assert.Equal(t, "critical", resp.Conflicts[0].Severity)
}

func TestHearing_ConflictCheckHandlerDecorated(t *testing.T) {
	hID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379eeee")
	caseID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379cccc")
	courtID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379dddd")

	hearingDB := mocks.NewHearingDatabase(t)
	hearingDB.On("Find", mock.Anything, mock.Anything).Return([]models.Hearing{
		{
			ID: hID,
			Details: models.HearingDetails{
				CaseID:    caseID.Hex(),
				CourtID:   courtID.Hex(),
				Title:     "Final arguments",
				Date:      "2026-09-01",
				StartTime: "14:00",
				Status:    "scheduled",
			},
		},
	}, nil)

	caseDB := mocks.NewCaseDatabase(t)
	caseDB.On("Find", mock.Anything, mock.Anything).Return([]models.Case{
		{
			ID:      caseID,
			Details: models.CaseDetails{CaseNumber: "GST/2024/0041", Title: "Acme Traders v. Commissioner"},
		},
	}, nil)

	courtDB := mocks.NewCourtDatabase(t)
	courtDB.On("Find", mock.Anything, mock.Anything).Return([]models.Court{
		{
			ID:      courtID,
			Details: models.CourtDetails{Name: "ITAT Delhi Bench B"},
		},
	}, nil)

	body := []byte(`{"caseId": "608cafe595eb9dc05379abcd", "courtId": "608cafe595eb9dc05379ffff", "date": "2026-09-01", "startTime": "14:45"}`)
	req, err := http.NewRequest("POST", "/api/v1/hearings/conflict-check?firm_id=firm1", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	h := handlers.Hearing{DB: hearingDB, CDB: caseDB, CoDB: courtDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.ConflictCheckHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		HasConflicts bool `json:"hasConflicts"`
		Conflicts    []struct {
			CaseNumber string `json:"caseNumber"`
			CaseTitle  string `json:"caseTitle"`
			CourtName  string `json:"courtName"`
			Severity   string `json:"severity"`
		} `json:"conflicts"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.HasConflicts)
	assert.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "GST/2024/0041", resp.Conflicts[0].CaseNumber)
	assert.Equal(t, "Acme Traders v. Commissioner", resp.Conflicts[0].CaseTitle)
	assert.Equal(t, "ITAT Delhi Bench B", resp.Conflicts[0].CourtName)
	// different forum, so a warning rather than a critical conflict
	assert.Equal(t, "warning", resp.Conflicts[0].Severity)
}

func TestHearing_ConflictCheckHandlerNoDate(t *testing.T) {
	body := []byte(`{"caseId": "608cafe595eb9dc05379abcd", "courtId": "608cafe595eb9dc05379ffff", "startTime": "14:45"}`)
	req, err := http.NewRequest("POST", "/api/v1/hearings/conflict-check", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	h := handlers.Hearing{
		DB:   mocks.NewHearingDatabase(t),
		CDB:  mocks.NewCaseDatabase(t),
		CoDB: mocks.NewCourtDatabase(t),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.ConflictCheckHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		HasConflicts bool `json:"hasConflicts"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.HasConflicts)
}
