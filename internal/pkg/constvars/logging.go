package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingUserIDKey        = "user_id"
	LoggingConnectionIDKey  = "connection_id"
	LoggingMessageIDKey     = "message_id"
)
