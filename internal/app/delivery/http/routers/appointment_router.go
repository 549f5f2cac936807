package routers

import (
	"newconsult-service/internal/app/delivery/http/controllers"
	"newconsult-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Get("/{appointment_id}", appointmentController.FindAppointmentByID)
	router.With(middlewares.Authenticate).Patch("/{appointment_id}/status", appointmentController.UpdateAppointmentStatus)
}
