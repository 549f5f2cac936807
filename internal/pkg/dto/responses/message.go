package responses

type Message struct {
	ID            string       `json:"id"`
	AppointmentID string       `json:"appointment_id"`
	SenderID      string       `json:"sender_id"`
	ReceiverID    string       `json:"receiver_id"`
	Content       string       `json:"content"`
	MessageType   string       `json:"message_type"`
	Attachments   []Attachment `json:"attachments,omitempty"`
	IsRead        bool         `json:"is_read"`
	CreatedAt     string       `json:"created_at"`
}

type Attachment struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
}

// ChatEvent is the envelope pushed over an appointment channel.
type ChatEvent struct {
	Type    string  `json:"type"`
	Message Message `json:"message"`
}

type MarkMessagesRead struct {
	MarkedCount int64 `json:"marked_count"`
}

type UnreadCount struct {
	UnreadCount int64 `json:"unread_count"`
}
