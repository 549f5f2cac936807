package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionAppointments = "appointments"
	MongoCollectionMessages     = "messages"
)
