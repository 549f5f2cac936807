package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"numeric":   "must be a number",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_type": "must be either 'client' or 'counselor'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please contact admin"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientNotAuthorized                 = "you are not authorized"
	ErrClientNotLoggedIn                   = "you are not logged in, please login"
	ErrClientNotParticipant                = "you are not a participant of this appointment"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientCounselorNotFound             = "counselor not found"
	ErrClientEmptyMessageContent           = "message content cannot be empty"
	ErrClientAttachmentTooLarge            = "attachment exceeds the maximum upload size"
	ErrClientInvalidAttachmentData         = "attachment data must be base64 encoded"
)

// Error messages for devs
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevInvalidInput              = "Invalid input"
	ErrDevCannotParseJSON           = "Cannot parse JSON data"
	ErrDevCannotMarshalJSON         = "Cannot marshal JSON data"
	ErrDevMissingRequestID          = "Request ID not found in request context"
	ErrDevMissingSessionData        = "Session data not found in request context"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded while processing request"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or has expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to generate JWT token"
	ErrDevFailedToHashPassword      = "Failed to hash password"
	ErrDevInvalidCredentials        = "Invalid credentials supplied"
	ErrDevEmailAlreadyExists        = "Email already exists in users collection"
	ErrDevUserNotExists             = "User does not exist"
	ErrDevAppointmentNotExists      = "Appointment does not exist"
	ErrDevNotAppointmentParticipant = "Caller is neither the client nor the counselor of the appointment"
	ErrDevEmptyMessageContent       = "Message content is empty after trimming"
	ErrDevInvalidAttachmentData     = "Attachment data is not valid base64"

	ErrDevDBFailedToFindDocument    = "Database failed to find document"
	ErrDevDBFailedToInsertDocument  = "Database failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "Database failed to update document"
	ErrDevDBFailedToDeleteDocument  = "Database failed to delete document"
	ErrDevDBFailedToIterateDocument = "Database failed to iterate documents"
	ErrDevDBFailedToCountDocuments  = "Database failed to count documents"
	ErrDevDBStringNotObjectID       = "String cannot be converted to ObjectID"

	ErrDevRedisFailedToSetKey    = "Redis failed to set key"
	ErrDevRedisFailedToGetKey    = "Redis failed to get key"
	ErrDevRedisFailedToDeleteKey = "Redis failed to delete key"

	ErrDevMinioFailedToCreateObject = "Minio failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "Minio failed to generate presigned URL"

	ErrDevQueueFailedToPublish = "Queue failed to publish message"
)
