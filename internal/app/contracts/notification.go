package contracts

import "context"

// UnreadNotification is published when a message is stored while its
// receiver has no live connection in the appointment channel.
type UnreadNotification struct {
	MessageID     string `json:"message_id"`
	AppointmentID string `json:"appointment_id"`
	SenderID      string `json:"sender_id"`
	ReceiverID    string `json:"receiver_id"`
	Preview       string `json:"preview"`
}

type NotificationQueueService interface {
	PublishUnreadNotification(ctx context.Context, notification *UnreadNotification) error
}
