package routers

import (
	"newconsult-service/internal/app/delivery/http/controllers"
	"newconsult-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(router chi.Router, middlewares *middlewares.Middlewares, messageController *controllers.MessageController) {
	router.With(middlewares.Authenticate).Post("/", messageController.SendMessage)
	router.With(middlewares.Authenticate).Get("/unread-count", messageController.GetUnreadCount)
	router.With(middlewares.Authenticate).Get("/{appointment_id}", messageController.ListMessagesByAppointment)
	router.With(middlewares.Authenticate).Post("/{appointment_id}/read", messageController.MarkMessagesRead)
}
