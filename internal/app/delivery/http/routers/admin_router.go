package routers

import (
	"bimar-service/internal/app/delivery/http/controllers"
	"bimar-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// attachAdminRoutes puts every credentialing operation behind the admin role
// check. The first admin account is seeded out of band.
func attachAdminRoutes(router chi.Router, mw *middlewares.Middlewares, ctrl *controllers.AdminController) {
	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireAdmin)

		r.Post("/register", ctrl.RegisterAdmin)
		r.Get("/doctors", ctrl.ListDoctors)
		r.Get("/patients", ctrl.ListPatients)

		r.Patch("/doctors/{doctor_id}/activate", ctrl.ActivateDoctor)
		r.Patch("/doctors/{doctor_id}/reject", ctrl.RejectDoctor)
		r.Patch("/doctors/{doctor_id}/ban", ctrl.BanDoctor)
		r.Patch("/doctors/{doctor_id}/suspend", ctrl.SuspendDoctor)
	})
}
