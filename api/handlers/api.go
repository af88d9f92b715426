package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lawdesk/legal-practice-api/api"
	"github.com/lawdesk/legal-practice-api/api/scheduler"
	"github.com/lawdesk/legal-practice-api/config"
	"github.com/lawdesk/legal-practice-api/databases"
	"github.com/lawdesk/legal-practice-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	DB       databases.CollectionHelper
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	c := Case{
		DB:  databases.NewCaseDatabase(a.dbHelper),
		TDB: databases.NewTaskDatabase(a.dbHelper),
		HDB: databases.NewHearingDatabase(a.dbHelper),
		UDB: databases.NewUserDatabase(a.dbHelper),
	}
	h := Hearing{
		DB:   databases.NewHearingDatabase(a.dbHelper),
		CDB:  databases.NewCaseDatabase(a.dbHelper),
		CoDB: databases.NewCourtDatabase(a.dbHelper),
	}
	t := Task{DB: databases.NewTaskDatabase(a.dbHelper)}
	co := Court{DB: databases.NewCourtDatabase(a.dbHelper)}
	cl := Client{DB: databases.NewClientDatabase(a.dbHelper)}
	doc := Document{DB: databases.NewDocumentDatabase(a.dbHelper)}
	dl := Deadline{DB: databases.NewDeadlineDatabase(a.dbHelper)}
	adm := Admin{UDB: databases.NewUserDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/case", api.Middleware(http.HandlerFunc(c.CreateCaseHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.CaseByIDHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.UpdateCaseHandler))).Methods("PUT")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.DeleteCaseHandler))).Methods("DELETE")
	apiCreate.Handle("/case/{case_id}/transitions", api.Middleware(http.HandlerFunc(c.TransitionOptionsHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}/blockers", api.Middleware(http.HandlerFunc(c.BlockersHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}/transition", api.Middleware(http.HandlerFunc(c.TransitionCaseHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/documents", api.Middleware(http.HandlerFunc(doc.DocumentsByCaseIDHandler))).Methods("GET")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CaseHandler))).Methods("GET")

	apiCreate.Handle("/hearing", api.Middleware(http.HandlerFunc(h.CreateHearingHandler))).Methods("POST")
	apiCreate.Handle("/hearing/{hearing_id}", api.Middleware(http.HandlerFunc(h.HearingByIDHandler))).Methods("GET")
	apiCreate.Handle("/hearing/{hearing_id}", api.Middleware(http.HandlerFunc(h.UpdateHearingHandler))).Methods("PUT")
	apiCreate.Handle("/hearing/{hearing_id}", api.Middleware(http.HandlerFunc(h.DeleteHearingHandler))).Methods("DELETE")
	apiCreate.Handle("/hearings", api.Middleware(http.HandlerFunc(h.HearingHandler))).Methods("GET")
	apiCreate.Handle("/hearings/conflict-check", api.Middleware(http.HandlerFunc(h.ConflictCheckHandler))).Methods("POST")

	apiCreate.Handle("/task", api.Middleware(http.HandlerFunc(t.CreateTaskHandler))).Methods("POST")
	apiCreate.Handle("/task/{task_id}", api.Middleware(http.HandlerFunc(t.TaskByIDHandler))).Methods("GET")
	apiCreate.Handle("/task/{task_id}", api.Middleware(http.HandlerFunc(t.UpdateTaskHandler))).Methods("PUT")
	apiCreate.Handle("/task/{task_id}", api.Middleware(http.HandlerFunc(t.DeleteTaskHandler))).Methods("DELETE")
	apiCreate.Handle("/tasks", api.Middleware(http.HandlerFunc(t.TaskHandler))).Methods("GET")

	apiCreate.Handle("/court", api.Middleware(http.HandlerFunc(co.CreateCourtHandler))).Methods("POST")
	apiCreate.Handle("/court/{court_id}", api.Middleware(http.HandlerFunc(co.CourtByIDHandler))).Methods("GET")
	apiCreate.Handle("/court/{court_id}", api.Middleware(http.HandlerFunc(co.UpdateCourtHandler))).Methods("PUT")
	apiCreate.Handle("/court/{court_id}", api.Middleware(http.HandlerFunc(co.DeleteCourtHandler))).Methods("DELETE")
	apiCreate.Handle("/courts", api.Middleware(http.HandlerFunc(co.CourtHandler))).Methods("GET")

	apiCreate.Handle("/client", api.Middleware(http.HandlerFunc(cl.CreateClientHandler))).Methods("POST")
	apiCreate.Handle("/client/{client_id}", api.Middleware(http.HandlerFunc(cl.ClientByIDHandler))).Methods("GET")
	apiCreate.Handle("/client/{client_id}", api.Middleware(http.HandlerFunc(cl.UpdateClientHandler))).Methods("PUT")
	apiCreate.Handle("/client/{client_id}", api.Middleware(http.HandlerFunc(cl.DeleteClientHandler))).Methods("DELETE")
	apiCreate.Handle("/clients", api.Middleware(http.HandlerFunc(cl.ClientHandler))).Methods("GET")

	apiCreate.Handle("/document", api.Middleware(http.HandlerFunc(doc.CreateDocumentHandler))).Methods("POST")
	apiCreate.Handle("/document/{document_id}", api.Middleware(http.HandlerFunc(doc.DocumentByIDHandler))).Methods("GET")
	apiCreate.Handle("/document/{document_id}", api.Middleware(http.HandlerFunc(doc.DeleteDocumentHandler))).Methods("DELETE")
	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(doc.GenerateSignature))).Methods("POST")

	apiCreate.Handle("/deadline", api.Middleware(http.HandlerFunc(dl.CreateDeadlineHandler))).Methods("POST")
	apiCreate.Handle("/deadline/{deadline_id}", api.Middleware(http.HandlerFunc(dl.DeadlineByIDHandler))).Methods("GET")
	apiCreate.Handle("/deadline/{deadline_id}/complete", api.Middleware(http.HandlerFunc(dl.CompleteDeadlineHandler))).Methods("PUT")
	apiCreate.Handle("/deadline/{deadline_id}", api.Middleware(http.HandlerFunc(dl.DeleteDeadlineHandler))).Methods("DELETE")
	apiCreate.Handle("/deadlines", api.Middleware(http.HandlerFunc(dl.DeadlineHandler))).Methods("GET")
	apiCreate.Handle("/deadlines/compute", api.Middleware(http.HandlerFunc(dl.ComputeDeadlineHandler))).Methods("POST")

	apiCreate.Handle("/admin/login", http.HandlerFunc(adm.AdminLoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/users", RequireAdminJWT(http.HandlerFunc(adm.CreateUserHandler))).Methods("POST")
	apiCreate.Handle("/admin/users/{user_id}/deactivate", RequireAdminJWT(http.HandlerFunc(adm.DeactivateUserHandler))).Methods("PUT")

	// websocket endpoint sits outside the auth middleware, clients pass
	// their userId as a query param
	r.HandleFunc("/ws/notifications", HandleNotificationsWebSocket)

	// swagger docs hosted at "/"
	r.PathPrefix("/").Handler(http.StripPrefix("/", http.FileServer(http.Dir("./docs/"))))
	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("legal-practice-api has connected to the database")

	// start background jobs (hearing reminders, deadline escalations)
	s := scheduler.NewScheduler(
		databases.NewHearingDatabase(a.dbHelper),
		databases.NewDeadlineDatabase(a.dbHelper),
		databases.NewCaseDatabase(a.dbHelper),
		databases.NewCourtDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper),
		databases.NewSchedulerLockDatabase(a.dbHelper),
	)
	s.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
