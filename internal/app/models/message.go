package models

type Message struct {
	ID            string       `bson:"_id,omitempty"`
	AppointmentID string       `bson:"appointmentId"`
	SenderID      string       `bson:"senderId"`
	ReceiverID    string       `bson:"receiverId"`
	Content       string       `bson:"content"`
	MessageType   string       `bson:"messageType"`
	Attachments   []Attachment `bson:"attachments,omitempty"`
	IsRead        bool         `bson:"isRead"`

	TimeModel `bson:",inline"`
}

type Attachment struct {
	FileName    string `bson:"fileName"`
	ObjectName  string `bson:"objectName"`
	ContentType string `bson:"contentType,omitempty"`
}
