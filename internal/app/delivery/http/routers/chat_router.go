package routers

import (
	"newconsult-service/internal/app/delivery/http/controllers"
	"newconsult-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *controllers.ChatController) {
	router.With(middlewares.Authenticate).Get("/chat/{appointment_id}", chatController.JoinChannel)
}
