package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"
	ProfileSuccess  = "get profile successfully"

	// User messages
	ListCounselorsSuccess = "get counselors successfully"

	// Appointment messages
	CreateAppointmentSuccess = "appointment booked successfully"
	ListAppointmentsSuccess  = "get appointments successfully"
	GetAppointmentSuccess    = "get appointment successfully"
	UpdateAppointmentSuccess = "appointment updated successfully"

	// Message messages
	SendMessageSuccess    = "message sent successfully"
	ListMessagesSuccess   = "get messages successfully"
	MarkMessagesSuccess   = "messages marked as read"
	GetUnreadCountSuccess = "get unread count successfully"

	// Payment messages
	ProcessPaymentSuccess = "payment processed successfully"
	ListPaymentsSuccess   = "get payments successfully"
)
