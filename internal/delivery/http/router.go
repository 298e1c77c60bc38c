package http

import (
	"net/http"

	"clinic-api/internal/delivery/http/handler"
	"clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	availabilityHandler  *handler.AvailabilityHandler
	patientHandler       *handler.PatientHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	notificationHandler  *handler.NotificationHandler
	settingsHandler      *handler.SettingsHandler
	dashboardHandler     *handler.DashboardHandler
	adminHandler         *handler.AdminHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	availabilityHandler *handler.AvailabilityHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	notificationHandler *handler.NotificationHandler,
	settingsHandler *handler.SettingsHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		availabilityHandler:  availabilityHandler,
		patientHandler:       patientHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		notificationHandler:  notificationHandler,
		settingsHandler:      settingsHandler,
		dashboardHandler:     dashboardHandler,
		adminHandler:         adminHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Slot browsing is public so patients can check availability first
	api.HandleFunc("/availability/slots", r.availabilityHandler.GetSlots).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Routes for any authenticated user
	authed := api.PathPrefix("").Subrouter()
	authed.Use(r.authMiddleware.Authenticate)

	authed.HandleFunc("/notifications", r.notificationHandler.ListNotifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkAsRead).Methods(http.MethodPatch)
	authed.HandleFunc("/notifications/{id}", r.notificationHandler.DeleteNotification).Methods(http.MethodDelete)

	authed.HandleFunc("/settings", r.settingsHandler.GetSettings).Methods(http.MethodGet)
	authed.HandleFunc("/settings", r.settingsHandler.UpdateSettings).Methods(http.MethodPut)

	authed.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	authed.HandleFunc("/appointments/me", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	authed.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Staff routes (doctor or admin)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireDoctorOrAdmin)

	staff.HandleFunc("/availability/me", r.availabilityHandler.GetMySchedule).Methods(http.MethodGet)
	staff.HandleFunc("/availability/me", r.availabilityHandler.SetMySchedule).Methods(http.MethodPut)
	staff.HandleFunc("/availability/me/blocked", r.availabilityHandler.ListBlockedTimes).Methods(http.MethodGet)
	staff.HandleFunc("/availability/me/blocked", r.availabilityHandler.AddBlockedTime).Methods(http.MethodPost)
	staff.HandleFunc("/availability/me/blocked/{id}", r.availabilityHandler.RemoveBlockedTime).Methods(http.MethodDelete)

	staff.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	staff.HandleFunc("/patients/{id}/notes", r.medicalRecordHandler.CreateNote).Methods(http.MethodPost)
	staff.HandleFunc("/patients/{id}/notes", r.medicalRecordHandler.ListNotes).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}/notes/{noteId}", r.medicalRecordHandler.UpdateNote).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}/notes/{noteId}", r.medicalRecordHandler.DeleteNote).Methods(http.MethodDelete)

	staff.HandleFunc("/patients/{id}/vitals", r.medicalRecordHandler.CreateVitalSign).Methods(http.MethodPost)
	staff.HandleFunc("/patients/{id}/vitals", r.medicalRecordHandler.ListVitalSigns).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}/vitals/{vitalId}", r.medicalRecordHandler.UpdateVitalSign).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}/vitals/{vitalId}", r.medicalRecordHandler.DeleteVitalSign).Methods(http.MethodDelete)

	staff.HandleFunc("/patients/{id}/files", r.medicalRecordHandler.UploadFile).Methods(http.MethodPost)
	staff.HandleFunc("/patients/{id}/files", r.medicalRecordHandler.ListFiles).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}/files/{fileId}", r.medicalRecordHandler.DeleteFile).Methods(http.MethodDelete)

	staff.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	staff.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users", r.adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", r.adminHandler.UpdateUserRole).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.adminHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
