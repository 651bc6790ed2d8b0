package routers

import (
	"time"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/delivery/http/controllers"
	"bimar-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	doctorController *controllers.DoctorController,
	adminController *controllers.AdminController,
	patientController *controllers.PatientController,
	diagnosisController *controllers.DiagnosisController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, mw, doctorController)
		})
		r.Route("/admins", func(r chi.Router) {
			attachAdminRoutes(r, mw, adminController)
		})
		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, mw, patientController, diagnosisController)
		})
	})
}
