package http

import (
	"net/http"

	"medicore/internal/delivery/http/handler"
	"medicore/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	visitHandler        *handler.VisitHandler
	prescriptionHandler *handler.PrescriptionHandler
	surgeryHandler      *handler.SurgeryHandler
	billingHandler      *handler.BillingHandler
	statsHandler        *handler.StatsHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	visitHandler *handler.VisitHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	surgeryHandler *handler.SurgeryHandler,
	billingHandler *handler.BillingHandler,
	statsHandler *handler.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		visitHandler:        visitHandler,
		prescriptionHandler: prescriptionHandler,
		surgeryHandler:      surgeryHandler,
		billingHandler:      billingHandler,
		statsHandler:        statsHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
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
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management: listing and deactivation are admin only, reads
	// and updates of a single account are self-or-admin (enforced in
	// the handler)
	users := api.PathPrefix("/auth/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Handle("", middleware.RequireAdmin(
		http.HandlerFunc(r.authHandler.ListUsers))).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.authHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.authHandler.UpdateUser).Methods(http.MethodPut)
	users.Handle("/{id}", middleware.RequireAdmin(
		http.HandlerFunc(r.authHandler.DeactivateUser))).Methods(http.MethodDelete)

	// Everything below requires a valid session
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/active", r.patientHandler.ListActive).Methods(http.MethodGet)
	protected.HandleFunc("/patients/search", r.patientHandler.Search).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	protected.Handle("/patients/{id}", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.patientHandler.Deactivate))).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/upcoming", r.appointmentHandler.ListUpcoming).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	protected.Handle("/appointments/{id}", middleware.RequireAdmin(
		http.HandlerFunc(r.appointmentHandler.Delete))).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPost)

	// Visits
	protected.Handle("/visits", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.visitHandler.Create))).Methods(http.MethodPost)
	protected.HandleFunc("/visits", r.visitHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/visits/upcoming", r.visitHandler.ListUpcoming).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{id}", r.visitHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{id}", r.visitHandler.Update).Methods(http.MethodPut)
	protected.Handle("/visits/{id}", middleware.RequireAdmin(
		http.HandlerFunc(r.visitHandler.Delete))).Methods(http.MethodDelete)
	protected.HandleFunc("/visits/{id}/complete", r.visitHandler.Complete).Methods(http.MethodPost)
	protected.Handle("/visits/{id}/diagnoses", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.visitHandler.AddDiagnosis))).Methods(http.MethodPost)
	protected.Handle("/visits/{id}/treatments", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.visitHandler.AddTreatment))).Methods(http.MethodPost)
	protected.HandleFunc("/visits/{id}/vital-signs", r.visitHandler.SetVitalSigns).Methods(http.MethodPut)

	// Prescriptions
	protected.Handle("/prescriptions", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.prescriptionHandler.Create))).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions", r.prescriptionHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/active", r.prescriptionHandler.ListActive).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)
	protected.Handle("/prescriptions/{id}", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.prescriptionHandler.Delete))).Methods(http.MethodDelete)
	protected.HandleFunc("/prescriptions/{id}/complete", r.prescriptionHandler.Complete).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions/{id}/cancel", r.prescriptionHandler.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions/{id}/medications", r.prescriptionHandler.ListMedications).Methods(http.MethodGet)
	protected.Handle("/prescriptions/{id}/medications", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.prescriptionHandler.AddMedication))).Methods(http.MethodPost)
	protected.Handle("/medications/{id}", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.prescriptionHandler.UpdateMedication))).Methods(http.MethodPut)
	protected.Handle("/medications/{id}", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.prescriptionHandler.DeleteMedication))).Methods(http.MethodDelete)

	// Surgeries
	protected.Handle("/surgeries", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.surgeryHandler.Create))).Methods(http.MethodPost)
	protected.HandleFunc("/surgeries", r.surgeryHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/surgeries/upcoming", r.surgeryHandler.ListUpcoming).Methods(http.MethodGet)
	protected.HandleFunc("/surgeries/recent", r.surgeryHandler.ListRecent).Methods(http.MethodGet)
	protected.HandleFunc("/surgeries/patient/{id}", r.surgeryHandler.ListByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/surgeries/surgeon/{id}", r.surgeryHandler.ListBySurgeon).Methods(http.MethodGet)
	protected.HandleFunc("/surgeries/{id}", r.surgeryHandler.GetByID).Methods(http.MethodGet)
	protected.Handle("/surgeries/{id}", middleware.RequireAdminOrDoctor(
		http.HandlerFunc(r.surgeryHandler.Update))).Methods(http.MethodPut)
	protected.Handle("/surgeries/{id}", middleware.RequireAdmin(
		http.HandlerFunc(r.surgeryHandler.Delete))).Methods(http.MethodDelete)

	// Billing
	protected.HandleFunc("/billing", r.billingHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/billing", r.billingHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/billing/patient/{id}", r.billingHandler.ListByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/billing/{id}", r.billingHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/billing/{id}", r.billingHandler.Update).Methods(http.MethodPut)
	protected.Handle("/billing/{id}", middleware.RequireAdmin(
		http.HandlerFunc(r.billingHandler.Delete))).Methods(http.MethodDelete)
	protected.HandleFunc("/billing/{id}/pay", r.billingHandler.Pay).Methods(http.MethodPut)
	protected.HandleFunc("/billing/{id}/cancel", r.billingHandler.Cancel).Methods(http.MethodPut)
	protected.HandleFunc("/billing/{id}/overdue", r.billingHandler.MarkOverdue).Methods(http.MethodPut)

	// Stats
	protected.HandleFunc("/stats/summary", r.statsHandler.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/stats/monthly", r.statsHandler.Monthly).Methods(http.MethodGet)
	protected.HandleFunc("/stats/charts", r.statsHandler.Charts).Methods(http.MethodGet)
	protected.Handle("/stats/refresh", middleware.RequireAdmin(
		http.HandlerFunc(r.statsHandler.Refresh))).Methods(http.MethodPost)
	protected.HandleFunc("/stats/dashboard", r.statsHandler.ListDashboardStats).Methods(http.MethodGet)
	protected.Handle("/stats/dashboard", middleware.RequireAdmin(
		http.HandlerFunc(r.statsHandler.CreateDashboardStat))).Methods(http.MethodPost)
	protected.Handle("/stats/dashboard/{id}", middleware.RequireAdmin(
		http.HandlerFunc(r.statsHandler.UpdateDashboardStat))).Methods(http.MethodPut)
	protected.Handle("/stats/dashboard/{id}", middleware.RequireAdmin(
		http.HandlerFunc(r.statsHandler.DeleteDashboardStat))).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
