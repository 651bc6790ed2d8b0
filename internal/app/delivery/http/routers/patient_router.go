package routers

import (
	"bimar-service/internal/app/delivery/http/controllers"
	"bimar-service/internal/app/delivery/http/middlewares"
	"bimar-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, mw *middlewares.Middlewares, patientCtrl *controllers.PatientController, diagnosisCtrl *controllers.DiagnosisController) {
	router.Post("/register", patientCtrl.Register)
	router.Post("/login", patientCtrl.Login)

	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireRole(constvars.BimarRolePatient))

		r.Post("/logout", patientCtrl.Logout)

		r.Post("/medical-record", patientCtrl.CreateMedicalRecord)
		r.Get("/medical-record", patientCtrl.GetMedicalRecord)
		r.Patch("/medical-record", patientCtrl.UpdateMedicalRecord)
		r.Delete("/medical-record", patientCtrl.DeleteMedicalRecord)

		r.Post("/diagnosis", diagnosisCtrl.CreateEncounter)
		r.Get("/diagnosis", diagnosisCtrl.GetEncounters)
	})

	// Prescription and consultation writes are clinician operations.
	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireRole(constvars.BimarRoleDoctor))

		r.Post("/{patient_id}/prescriptions", diagnosisCtrl.CreatePrescription)
		r.Put("/prescriptions/{prescription_id}", diagnosisCtrl.UpdatePrescription)
		r.Delete("/prescriptions/{prescription_id}", diagnosisCtrl.DeletePrescription)
		r.Put("/consultations/{consultation_id}", diagnosisCtrl.UpdateConsultation)
		r.Delete("/consultations/{consultation_id}", diagnosisCtrl.DeleteConsultation)
	})
}
