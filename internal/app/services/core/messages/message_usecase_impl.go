package messages

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
	"newconsult-service/internal/pkg/exceptions"
	"newconsult-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const attachmentURLExpiry = 15 * time.Minute

type messageUsecase struct {
	MessageRepository        contracts.MessageRepository
	AppointmentDirectory     contracts.AppointmentDirectory
	SessionService           contracts.SessionService
	ChannelRegistry          contracts.ChannelRegistry
	RelayDispatcher          contracts.RelayDispatcher
	StorageService           contracts.StorageService
	NotificationQueueService contracts.NotificationQueueService
	Log                      *zap.Logger

	// appointmentLocks serializes append-then-publish per appointment so
	// relay order always matches store order.
	appointmentLocksMutex sync.Mutex
	appointmentLocks      map[string]*sync.Mutex
}

var (
	messageUsecaseInstance contracts.MessageUsecase
	onceMessageUsecase     sync.Once
)

func NewMessageUsecase(
	messageRepository contracts.MessageRepository,
	appointmentDirectory contracts.AppointmentDirectory,
	sessionService contracts.SessionService,
	channelRegistry contracts.ChannelRegistry,
	relayDispatcher contracts.RelayDispatcher,
	storageService contracts.StorageService,
	notificationQueueService contracts.NotificationQueueService,
	logger *zap.Logger,
) contracts.MessageUsecase {
	onceMessageUsecase.Do(func() {
		instance := &messageUsecase{
			MessageRepository:        messageRepository,
			AppointmentDirectory:     appointmentDirectory,
			SessionService:           sessionService,
			ChannelRegistry:          channelRegistry,
			RelayDispatcher:          relayDispatcher,
			StorageService:           storageService,
			NotificationQueueService: notificationQueueService,
			appointmentLocks:         make(map[string]*sync.Mutex),
			Log:                      logger,
		}
		messageUsecaseInstance = instance
	})
	return messageUsecaseInstance
}

func (uc *messageUsecase) SendMessage(ctx context.Context, request *requests.SendMessage) (*responses.Message, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.findAuthorizedAppointment(ctx, request.AppointmentID, session.UserID)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, exceptions.ErrEmptyMessageContent(nil)
	}

	attachments, err := uc.uploadAttachments(ctx, request.AppointmentID, request.Attachments)
	if err != nil {
		return nil, err
	}

	messageType := request.MessageType
	if messageType == "" {
		messageType = constvars.MessageTypeText
	}

	now := time.Now()
	message := &models.Message{
		AppointmentID: request.AppointmentID,
		SenderID:      session.UserID,
		ReceiverID:    appointment.OtherParticipant(session.UserID),
		Content:       content,
		MessageType:   messageType,
		Attachments:   attachments,
		IsRead:        false,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	stored, response, err := uc.appendAndRelay(ctx, message)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("message stored and relayed",
		zap.String(constvars.LoggingMessageIDKey, stored.ID),
		zap.String(constvars.LoggingAppointmentIDKey, stored.AppointmentID),
		zap.String(constvars.LoggingUserIDKey, stored.SenderID),
	)

	// Sending implies the sender has the conversation open, so anything
	// addressed to them is considered read. Failures never fail the send.
	if _, err := uc.MessageRepository.MarkAllRead(ctx, request.AppointmentID, session.UserID); err != nil {
		uc.Log.Warn("failed to mark sender-side messages read",
			zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
			zap.Error(err),
		)
	}

	uc.notifyOfflineReceiver(ctx, stored)

	return response, nil
}

// appendAndRelay stores the message and fans it out to the appointment
// channel under the appointment's ordering lock. The lock is released by
// defer so a panicking connection teardown mid-publish cannot strand it.
func (uc *messageUsecase) appendAndRelay(ctx context.Context, message *models.Message) (*models.Message, *responses.Message, error) {
	lock := uc.lockForAppointment(message.AppointmentID)
	lock.Lock()
	defer lock.Unlock()

	stored, err := uc.MessageRepository.CreateMessage(ctx, message)
	if err != nil {
		return nil, nil, err
	}

	response := uc.mapMessageToResponse(ctx, stored)
	uc.RelayDispatcher.Publish(stored.AppointmentID, responses.ChatEvent{
		Type:    constvars.ChatEventNewMessage,
		Message: *response,
	})
	return stored, response, nil
}

func (uc *messageUsecase) ListMessagesByAppointment(ctx context.Context, request *requests.ListMessagesByAppointment) ([]responses.Message, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	if _, err := uc.findAuthorizedAppointment(ctx, request.AppointmentID, session.UserID); err != nil {
		return nil, err
	}

	messages, err := uc.MessageRepository.FindByAppointmentID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Message, 0, len(messages))
	for i := range messages {
		response = append(response, *uc.mapMessageToResponse(ctx, &messages[i]))
	}
	return response, nil
}

func (uc *messageUsecase) MarkMessagesRead(ctx context.Context, request *requests.MarkMessagesRead) (*responses.MarkMessagesRead, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	if _, err := uc.findAuthorizedAppointment(ctx, request.AppointmentID, session.UserID); err != nil {
		return nil, err
	}

	markedCount, err := uc.MessageRepository.MarkAllRead(ctx, request.AppointmentID, session.UserID)
	if err != nil {
		return nil, err
	}
	return &responses.MarkMessagesRead{MarkedCount: markedCount}, nil
}

func (uc *messageUsecase) GetUnreadCount(ctx context.Context, request *requests.GetUnreadCount) (*responses.UnreadCount, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	unreadCount, err := uc.MessageRepository.CountUnreadByReceiver(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return &responses.UnreadCount{UnreadCount: unreadCount}, nil
}

func (uc *messageUsecase) findAuthorizedAppointment(ctx context.Context, appointmentID, userID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentDirectory.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if !appointment.IsParticipant(userID) {
		return nil, exceptions.ErrNotAppointmentParticipant(nil)
	}
	return appointment, nil
}

func (uc *messageUsecase) lockForAppointment(appointmentID string) *sync.Mutex {
	uc.appointmentLocksMutex.Lock()
	defer uc.appointmentLocksMutex.Unlock()

	lock, ok := uc.appointmentLocks[appointmentID]
	if !ok {
		lock = &sync.Mutex{}
		uc.appointmentLocks[appointmentID] = lock
	}
	return lock
}

func (uc *messageUsecase) uploadAttachments(ctx context.Context, appointmentID string, attachments []requests.Attachment) ([]models.Attachment, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	uploaded := make([]models.Attachment, 0, len(attachments))
	for _, attachment := range attachments {
		data, err := base64.StdEncoding.DecodeString(attachment.Data)
		if err != nil {
			return nil, exceptions.WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAttachmentData, constvars.ErrDevInvalidAttachmentData)
		}

		objectName := utils.GenerateAttachmentObjectName(appointmentID, attachment.FileName)
		if err := uc.StorageService.UploadObject(ctx, objectName, bytes.NewReader(data), int64(len(data)), attachment.ContentType); err != nil {
			return nil, err
		}
		uploaded = append(uploaded, models.Attachment{
			FileName:    attachment.FileName,
			ObjectName:  objectName,
			ContentType: attachment.ContentType,
		})
	}
	return uploaded, nil
}

// notifyOfflineReceiver enqueues an unread notification when the receiver
// has no live connection in the channel. Best effort.
func (uc *messageUsecase) notifyOfflineReceiver(ctx context.Context, message *models.Message) {
	if uc.ChannelRegistry.HasParticipant(message.AppointmentID, message.ReceiverID) {
		return
	}

	notification := &contracts.UnreadNotification{
		MessageID:     message.ID,
		AppointmentID: message.AppointmentID,
		SenderID:      message.SenderID,
		ReceiverID:    message.ReceiverID,
		Preview:       buildPreview(message.Content),
	}
	if err := uc.NotificationQueueService.PublishUnreadNotification(ctx, notification); err != nil {
		uc.Log.Warn("failed to publish unread notification",
			zap.String(constvars.LoggingMessageIDKey, message.ID),
			zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
			zap.Error(err),
		)
	}
}

// buildPreview truncates on a rune boundary so the notification payload
// stays valid UTF-8.
func buildPreview(content string) string {
	const previewLimit = 120
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	return string(runes[:previewLimit])
}

func (uc *messageUsecase) mapMessageToResponse(ctx context.Context, message *models.Message) *responses.Message {
	var attachments []responses.Attachment
	for _, attachment := range message.Attachments {
		url, err := uc.StorageService.PresignedGetURL(ctx, attachment.ObjectName, attachmentURLExpiry)
		if err != nil {
			uc.Log.Warn("failed to presign attachment url",
				zap.String(constvars.LoggingMessageIDKey, message.ID),
				zap.Error(err),
			)
		}
		attachments = append(attachments, responses.Attachment{
			FileName: attachment.FileName,
			URL:      url,
		})
	}

	return &responses.Message{
		ID:            message.ID,
		AppointmentID: message.AppointmentID,
		SenderID:      message.SenderID,
		ReceiverID:    message.ReceiverID,
		Content:       message.Content,
		MessageType:   message.MessageType,
		Attachments:   attachments,
		IsRead:        message.IsRead,
		CreatedAt:     message.CreatedAt.Format(time.RFC3339),
	}
}
