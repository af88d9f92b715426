package handlers_test

import (
	"bytes"
	"encoding/json"
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

type MockDatabaseHelper struct {
	mock.Mock
}

// Client provides a mock function.
func (_m *MockDatabaseHelper) Client() databases.ClientHelper {
	ret := _m.Called()

	var r0 databases.ClientHelper
	if rf, ok := ret.Get(0).(func() databases.ClientHelper); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.ClientHelper)
		}
	}

	return r0
}

// Collection provides a mock function.
func (_m *MockDatabaseHelper) Collection(name string) databases.CollectionHelper {
	ret := _m.Called(name)

	var r0 databases.CollectionHelper
	if rf, ok := ret.Get(0).(func(string) databases.CollectionHelper); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.CollectionHelper)
		}
	}

	return r0
}

func TestCase_CaseByIDHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/case/1234", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "1234"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{
		DB: mocks.NewCaseDatabase(t),
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.CaseByIDHandler)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusBadRequest)
	}

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get objectID from Hex", Error: "the provided hex string is not a valid ObjectID"}}
	b, _ := json.Marshal(expected)
	if rr.Body.String() != string(b) {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}

func TestCase_TransitionCaseHandlerInvalidType(t *testing.T) {
	body := []byte(`{"toStage": "Adjudication", "transitionType": "sideways"}`)
	req, err := http.NewRequest("POST", "/api/v1/case/608cafe595eb9dc05379b7f4/transition", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{
		DB:  mocks.NewCaseDatabase(t),
		TDB: mocks.NewTaskDatabase(t),
		HDB: mocks.NewHearingDatabase(t),
		UDB: mocks.NewUserDatabase(t),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.TransitionCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCase_TransitionCaseHandlerUnreachableStage(t *testing.T) {
	cID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379b7f4")
	caseDB := mocks.NewCaseDatabase(t)
	caseDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Case{
		ID:      cID,
		Details: models.CaseDetails{CaseNumber: "GST/2024/0041", Stage: "Assessment"},
	}, nil)

	body := []byte(`{"toStage": "Supreme Court", "transitionType": "forward"}`)
	req, err := http.NewRequest("POST", "/api/v1/case/608cafe595eb9dc05379b7f4/transition", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{
		DB:  caseDB,
		TDB: mocks.NewTaskDatabase(t),
		HDB: mocks.NewHearingDatabase(t),
		UDB: mocks.NewUserDatabase(t),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.TransitionCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCase_TransitionCaseHandlerBlocked(t *testing.T) {
	cID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379b7f4")
	tID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379aaaa")

	caseDB := mocks.NewCaseDatabase(t)
	caseDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Case{
		ID:      cID,
		Details: models.CaseDetails{CaseNumber: "GST/2024/0041", Stage: "Assessment"},
	}, nil)

	taskDB := mocks.NewTaskDatabase(t)
	taskDB.On("Find", mock.Anything, mock.Anything).Return([]models.Task{
		{
			ID: tID,
			Details: models.TaskDetails{
				CaseID: "608cafe595eb9dc05379b7f4",
				Stage:  "Assessment",
				Title:  "Draft reply to notice",
				Status: "Pending",
			},
		},
	}, nil)

	hearingDB := mocks.NewHearingDatabase(t)
	hearingDB.On("Find", mock.Anything, mock.Anything).Return([]models.Hearing{}, nil)

	body := []byte(`{"toStage": "Adjudication", "transitionType": "forward"}`)
	req, err := http.NewRequest("POST", "/api/v1/case/608cafe595eb9dc05379b7f4/transition", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{
		DB:  caseDB,
		TDB: taskDB,
		HDB: hearingDB,
		UDB: mocks.NewUserDatabase(t),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.TransitionCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp struct {
		FromStage string `json:"fromStage"`
		ToStage   string `json:"toStage"`
		Gate      struct {
			Blocked         bool `json:"blocked"`
			IncompleteTasks []struct {
				Title string `json:"title"`
			} `json:"incompleteTasks"`
		} `json:"gate"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Assessment", resp.FromStage)
	assert.Equal(t, "Adjudication", resp.ToStage)
	assert.True(t, resp.Gate.Blocked)
	assert.Len(t, resp.Gate.IncompleteTasks, 1)
	assert.Equal(t, "Draft reply to notice", resp.Gate.IncompleteTasks[0].Title)
}

func TestCase_TransitionCaseHandlerOverrideRequiresAdmin(t *testing.T) {
	cID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379b7f4")
	tID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379aaaa")
	uID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379bbbb")

	caseDB := mocks.NewCaseDatabase(t)
	caseDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Case{
		ID:      cID,
		Details: models.CaseDetails{CaseNumber: "GST/2024/0041", Stage: "Assessment"},
	}, nil)

	taskDB := mocks.NewTaskDatabase(t)
	taskDB.On("Find", mock.Anything, mock.Anything).Return([]models.Task{
		{
			ID: tID,
			Details: models.TaskDetails{
				CaseID: "608cafe595eb9dc05379b7f4",
				Stage:  "Assessment",
				Title:  "Draft reply to notice",
				Status: "Pending",
			},
		},
	}, nil)

	hearingDB := mocks.NewHearingDatabase(t)
	hearingDB.On("Find", mock.Anything, mock.Anything).Return([]models.Hearing{}, nil)

	userDB := mocks.NewUserDatabase(t)
	userDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.User{
		ID:      uID,
		Details: models.UserDetails{Role: "lawyer"},
	}, nil)

	body := []byte(`{"toStage": "Adjudication", "transitionType": "forward", "userID": "608cafe595eb9dc05379bbbb", "forceOverride": true}`)
	req, err := http.NewRequest("POST", "/api/v1/case/608cafe595eb9dc05379b7f4/transition", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{DB: caseDB, TDB: taskDB, HDB: hearingDB, UDB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.TransitionCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCase_TransitionCaseHandlerAdminOverride(t *testing.T) {
	cID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379b7f4")
	tID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379aaaa")
	uID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379bbbb")

	caseDB := mocks.NewCaseDatabase(t)
	caseDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Case{
		ID:      cID,
		Details: models.CaseDetails{CaseNumber: "GST/2024/0041", Stage: "Assessment"},
	}, nil)
	caseDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	taskDB := mocks.NewTaskDatabase(t)
	taskDB.On("Find", mock.Anything, mock.Anything).Return([]models.Task{
		{
			ID: tID,
			Details: models.TaskDetails{
				CaseID: "608cafe595eb9dc05379b7f4",
				Stage:  "Assessment",
				Title:  "Draft reply to notice",
				Status: "Pending",
			},
		},
	}, nil)

	hearingDB := mocks.NewHearingDatabase(t)
	hearingDB.On("Find", mock.Anything, mock.Anything).Return([]models.Hearing{}, nil)

	userDB := mocks.NewUserDatabase(t)
	userDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.User{
		ID:      uID,
		Details: models.UserDetails{Role: "admin"},
	}, nil)

	body := []byte(`{"toStage": "Adjudication", "transitionType": "forward", "userID": "608cafe595eb9dc05379bbbb", "forceOverride": true}`)
	req, err := http.NewRequest("POST", "/api/v1/case/608cafe595eb9dc05379b7f4/transition", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{DB: caseDB, TDB: taskDB, HDB: hearingDB, UDB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.TransitionCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Overridden bool `json:"overridden"`
		Gate       struct {
			Blocked bool `json:"blocked"`
		} `json:"gate"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Overridden)
	assert.True(t, resp.Gate.Blocked)
}

func TestCase_TransitionCaseHandlerCleanForward(t *testing.T) {
	cID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379b7f4")

	caseDB := mocks.NewCaseDatabase(t)
	caseDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Case{
		ID:      cID,
		Details: models.CaseDetails{CaseNumber: "GST/2024/0041", Stage: "Assessment"},
	}, nil)
	caseDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	taskDB := mocks.NewTaskDatabase(t)
	taskDB.On("Find", mock.Anything, mock.Anything).Return([]models.Task{}, nil)

	hearingDB := mocks.NewHearingDatabase(t)
	hearingDB.On("Find", mock.Anything, mock.Anything).Return([]models.Hearing{}, nil)

	body := []byte(`{"toStage": "Adjudication", "transitionType": "forward", "userID": "608cafe595eb9dc05379bbbb", "userName": "A. Rao"}`)
	req, err := http.NewRequest("POST", "/api/v1/case/608cafe595eb9dc05379b7f4/transition", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{
		DB:  caseDB,
		TDB: taskDB,
		HDB: hearingDB,
		UDB: mocks.NewUserDatabase(t),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.TransitionCaseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		FromStage  string `json:"fromStage"`
		ToStage    string `json:"toStage"`
		Overridden bool   `json:"overridden"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Assessment", resp.FromStage)
	assert.Equal(t, "Adjudication", resp.ToStage)
	assert.False(t, resp.Overridden)
}

func TestCase_TransitionOptionsHandler(t *testing.T) {
	cID, _ := primitive.ObjectIDFromHex("608cafe595eb9dc05379b7f4")

	caseDB := mocks.NewCaseDatabase(t)
	caseDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Case{
		ID:      cID,
		Details: models.CaseDetails{Stage: "High Court"},
	}, nil)

	req, err := http.NewRequest("GET", "/api/v1/case/608cafe595eb9dc05379b7f4/transitions?type=forward", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{DB: caseDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.TransitionOptionsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		CurrentStage    string   `json:"currentStage"`
		AvailableStages []string `json:"availableStages"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "High Court", resp.CurrentStage)
	assert.Equal(t, []string{"Supreme Court"}, resp.AvailableStages)
}
