package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"newconsult-service/internal/app/config"
	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/app/services/core/chat"
	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/exceptions"
	"newconsult-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type ChatController struct {
	Log                  *zap.Logger
	SessionService       contracts.SessionService
	AppointmentDirectory contracts.AppointmentDirectory
	ChannelRegistry      contracts.ChannelRegistry
	MessageUsecase       contracts.MessageUsecase
	ChatConfig           config.Chat

	upgrader websocket.Upgrader
}

var (
	chatControllerInstance *ChatController
	onceChatController     sync.Once
)

func NewChatController(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	appointmentDirectory contracts.AppointmentDirectory,
	channelRegistry contracts.ChannelRegistry,
	messageUsecase contracts.MessageUsecase,
	chatConfig config.Chat,
) *ChatController {
	onceChatController.Do(func() {
		instance := &ChatController{
			Log:                  logger,
			SessionService:       sessionService,
			AppointmentDirectory: appointmentDirectory,
			ChannelRegistry:      channelRegistry,
			MessageUsecase:       messageUsecase,
			ChatConfig:           chatConfig,
			upgrader: websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			},
		}
		chatControllerInstance = instance
	})
	return chatControllerInstance
}

// JoinChannel authorizes the caller against the appointment before the
// websocket upgrade, then hands the socket to its read and write pumps.
func (ctrl *ChatController) JoinChannel(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	appointmentID := chi.URLParam(r, "appointment_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := ctrl.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointment, err := ctrl.AppointmentDirectory.FindByID(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if appointment == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAppointmentNotFound(nil))
		return
	}
	if !appointment.IsParticipant(session.UserID) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAppointmentParticipant(nil))
		return
	}

	conn, err := ctrl.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctrl.Log.Error("websocket upgrade failed",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return
	}

	client := chat.NewClient(conn, appointmentID, session.UserID, ctrl.ChannelRegistry, ctrl.MessageUsecase, ctrl.ChatConfig, ctrl.Log)
	ctrl.ChannelRegistry.Join(appointmentID, client)

	go client.WritePump()
	client.ReadPump(sessionData)
}
