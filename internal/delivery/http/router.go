package http

import (
	"net/http"

	"medical-appointment-assistant/internal/delivery/http/handler"
	"medical-appointment-assistant/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	appointmentHandler   *handler.AppointmentHandler
	doctorHandler        *handler.DoctorHandler
	catalogHandler       *handler.CatalogHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	webhookHandler       *handler.WebhookHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	loggingMiddleware    *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	catalogHandler *handler.CatalogHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	webhookHandler *handler.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		appointmentHandler:   appointmentHandler,
		doctorHandler:        doctorHandler,
		catalogHandler:       catalogHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		webhookHandler:       webhookHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		loggingMiddleware:    loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Action server endpoint called by the dialogue engine
	r.router.HandleFunc("/webhook", r.webhookHandler.RunAction).Methods(http.MethodPost)
	r.router.HandleFunc("/actions", r.webhookHandler.ListActions).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public clinic information
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/procedures", r.catalogHandler.GetProcedures).Methods(http.MethodGet)
	api.HandleFunc("/tests", r.catalogHandler.GetTests).Methods(http.MethodGet)
	api.HandleFunc("/prices", r.catalogHandler.GetPrices).Methods(http.MethodGet)

	// Patient routes (protected)
	patient := api.NewRoute().Subrouter()
	patient.Use(r.authMiddleware.Authenticate)

	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/latest", r.appointmentHandler.GetLatestAppointment).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.ModifyAppointment).Methods(http.MethodPatch)
	patient.HandleFunc("/appointments/{id:[0-9]+}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	patient.HandleFunc("/medical-records", r.medicalRecordHandler.GetMyRecords).Methods(http.MethodGet)
	patient.HandleFunc("/activity", r.auditLogHandler.GetMyActivity).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
