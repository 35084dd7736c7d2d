package routers

import (
	"denials-tracker-service/internal/app/delivery/http/middlewares"
	"denials-tracker-service/internal/app/services/core/session"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *session.SessionController) {
	router.With(middlewares.Authenticate).Post("/patient", sessionController.SelectPatient)
}
