package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "NWCNSLT_SVC_"
)

const (
	UserTypeClient    = "client"
	UserTypeCounselor = "counselor"
)

const (
	AppointmentStatusScheduled  = "scheduled"
	AppointmentStatusConfirmed  = "confirmed"
	AppointmentStatusInProgress = "in-progress"
	AppointmentStatusCompleted  = "completed"
	AppointmentStatusCancelled  = "cancelled"
)

const (
	SessionTypeChat     = "chat"
	SessionTypeVideo    = "video"
	SessionTypeInPerson = "in-person"
)

const (
	MessageTypeText = "text"
)

const (
	ChatEventNewMessage = "new_message"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)
