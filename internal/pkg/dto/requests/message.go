package requests

type SendMessage struct {
	AppointmentID string       `json:"appointment_id" validate:"required"`
	Content       string       `json:"content" validate:"required"`
	MessageType   string       `json:"message_type,omitempty" validate:"omitempty,oneof=text"`
	Attachments   []Attachment `json:"attachments,omitempty"`
	SessionData   string
}

type Attachment struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type,omitempty"`
	Data        string `json:"data" validate:"required,base64"`
}

type ListMessagesByAppointment struct {
	AppointmentID string
	SessionData   string
}

type MarkMessagesRead struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	SessionData   string
}

type GetUnreadCount struct {
	SessionData string
}
