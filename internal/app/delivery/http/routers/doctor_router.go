package routers

import (
	"bimar-service/internal/app/delivery/http/controllers"
	"bimar-service/internal/app/delivery/http/middlewares"
	"bimar-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, ctrl *controllers.DoctorController) {
	router.Post("/register", ctrl.Register)
	router.Post("/login", ctrl.Login)
	router.Post("/forgot-password", ctrl.ForgotPassword)
	router.Post("/verify-otp", ctrl.VerifyOTP)
	router.Post("/reset-password", ctrl.ResetPassword)
	router.Get("/", ctrl.ListActive)

	// A rejected doctor cannot log in, so the application edit endpoints take
	// no session; both handlers refuse any status other than rejected.
	router.Get("/{doctor_id}/application", ctrl.RequestEdit)
	router.Put("/{doctor_id}/application", ctrl.Resubmit)

	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireRole(constvars.BimarRoleDoctor))

		r.Post("/logout", ctrl.Logout)
		r.Get("/profile", ctrl.GetProfile)
		r.Patch("/profile", ctrl.UpdateProfile)
		r.Delete("/profile", ctrl.Delete)

		r.Post("/clinics", ctrl.AddClinic)
		r.Patch("/clinics/{clinic_id}", ctrl.UpdateClinic)
		r.Delete("/clinics/{clinic_id}", ctrl.DeleteClinic)
	})
}
