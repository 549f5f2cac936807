package contracts

import (
	"context"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) ([]models.Message, error)
	MarkAllRead(ctx context.Context, appointmentID, receiverID string) (markedCount int64, err error)
	CountUnreadByReceiver(ctx context.Context, receiverID string) (int64, error)
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, request *requests.SendMessage) (*responses.Message, error)
	ListMessagesByAppointment(ctx context.Context, request *requests.ListMessagesByAppointment) ([]responses.Message, error)
	MarkMessagesRead(ctx context.Context, request *requests.MarkMessagesRead) (*responses.MarkMessagesRead, error)
	GetUnreadCount(ctx context.Context, request *requests.GetUnreadCount) (*responses.UnreadCount, error)
}
