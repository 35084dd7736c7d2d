package routers

import (
	"denials-tracker-service/internal/app/delivery/http/middlewares"
	"denials-tracker-service/internal/app/services/core/denials"
	"denials-tracker-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController, denialController *denials.DenialController) {
	router.With(middlewares.OptionalAuthenticate).Get("/", patientController.Search)
	router.Get("/resolve", patientController.ResolveExact)
	router.Post("/", patientController.Create)

	router.Route("/{patientID}/denials", func(r chi.Router) {
		r.Get("/", denialController.ListForPatient)
		r.Get("/view", denialController.Render)
		r.With(middlewares.OptionalAuthenticate).Post("/", denialController.Upsert)
	})
}
