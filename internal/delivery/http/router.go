package http

import (
	"fmt"
	"net/http"

	"patient-appointment-api/internal/delivery/http/handler"
	"patient-appointment-api/internal/delivery/http/middleware"
	"patient-appointment-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	patientHandler      *handler.PatientHandler
	docsHandler         *handler.DocsHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	docsHandler *handler.DocsHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		patientHandler:      patientHandler,
		docsHandler:         docsHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check (root level, outside /api)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Appointment routes
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Patient routes (read-only; patients are seeded, not created via API)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// API documentation
	api.HandleFunc("/docs", r.docsHandler.GetOpenAPISpec).Methods(http.MethodGet)

	// Method catch-alls, registered after the allowed methods. A known
	// path with a different method answers 405 here instead of falling
	// through to the 404 handler, and OPTIONS gets a matched route so the
	// CORS middleware can answer preflight.
	for _, path := range []string{"/appointments", "/appointments/{id}", "/patients", "/patients/{id}", "/docs"} {
		api.HandleFunc(path, r.methodNotAllowed)
	}

	// Middleware chain
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)
	if r.rateLimitMiddleware != nil {
		r.router.Use(r.rateLimitMiddleware.Handle)
	}

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok", "service": "patient-appointment-api"}`))
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed",
		fmt.Sprintf("Method %s is not allowed on this resource", req.Method))
}
