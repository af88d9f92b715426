package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lawdesk/legal-practice-api/api/handlers"
	"github.com/lawdesk/legal-practice-api/databases/mocks"
	"github.com/lawdesk/legal-practice-api/models"
)

func TestDeadline_ComputeDeadlineHandler(t *testing.T) {
	// 2026-09-04 is a Friday; five working days later is the next Friday
	body := []byte(`{"baseDate": "2026-09-04", "periodDays": 5, "workingDaysOnly": true}`)
	req, err := http.NewRequest("POST", "/api/v1/deadlines/compute", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	d := handlers.Deadline{DB: mocks.NewDeadlineDatabase(t)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(d.ComputeDeadlineHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		DueDate string `json:"dueDate"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-11", resp.DueDate)
}

func TestDeadline_ComputeDeadlineHandlerInvalidDate(t *testing.T) {
	body := []byte(`{"baseDate": "04/09/2026", "periodDays": 5}`)
	req, err := http.NewRequest("POST", "/api/v1/deadlines/compute", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	d := handlers.Deadline{DB: mocks.NewDeadlineDatabase(t)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(d.ComputeDeadlineHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeadline_DeadlineHandlerRAGDecoration(t *testing.T) {
	nearID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379aaaa")
	farID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379bbbb")

	near := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	far := time.Now().AddDate(0, 0, 30).Format("2006-01-02")

	deadlineDB := mocks.NewDeadlineDatabase(t)
	deadlineDB.On("Find", mock.Anything, mock.Anything).Return([]models.Deadline{
		{ID: nearID, Details: models.DeadlineDetails{Title: "File appeal", DueDate: near, Status: "open"}},
		{ID: farID, Details: models.DeadlineDetails{Title: "Submit paper book", DueDate: far, Status: "open"}},
	}, nil)

	req, err := http.NewRequest("GET", "/api/v1/deadlines?status=open", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	d := handlers.Deadline{DB: deadlineDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(d.DeadlineHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []struct {
		Deadline struct {
			Title string `json:"title"`
		} `json:"deadline"`
		RAG string `json:"rag"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "red", resp[0].RAG)
	assert.Equal(t, "green", resp[1].RAG)
}

func TestDeadline_CreateDeadlineHandler(t *testing.T) {
	deadlineDB := mocks.NewDeadlineDatabase(t)
	deadlineDB.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)

	body := []byte(`{"caseID": "608cafe595eb9dc05379b7f4", "title": "Reply to show cause notice", "baseDate": "2026-09-01", "periodDays": 30}`)
	req, err := http.NewRequest("POST", "/api/v1/deadline", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	d := handlers.Deadline{DB: deadlineDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(d.CreateDeadlineHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-01", resp["dueDate"])
}
