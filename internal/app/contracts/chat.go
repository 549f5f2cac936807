package contracts

// Connection is a single live endpoint joined to an appointment's chat
// channel. Deliver must not block: implementations queue the payload and
// report false when the connection can no longer accept writes.
type Connection interface {
	ID() string
	UserID() string
	Deliver(payload []byte) bool
}

// ChannelRegistry tracks which connections are currently in which
// appointment's chat channel. Entries are created on first join and
// removed when their connection set empties.
type ChannelRegistry interface {
	Join(appointmentID string, conn Connection)
	Leave(appointmentID string, conn Connection)
	Connections(appointmentID string) []Connection
	HasParticipant(appointmentID, userID string) bool
}

// RelayDispatcher pushes a freshly stored message to every connection of
// its appointment channel, the origin included. Delivery is best effort;
// the message store remains the source of truth.
type RelayDispatcher interface {
	Publish(appointmentID string, event interface{})
}
