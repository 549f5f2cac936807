package chat

import (
	"sync"

	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

var (
	channelRegistryInstance *ChannelRegistry
	onceChannelRegistry     sync.Once
)

// ChannelRegistry keeps the live connections of every appointment channel.
// An entry exists only while it has at least one connection.
type ChannelRegistry struct {
	Logger *zap.Logger

	mu       sync.RWMutex
	channels map[string]map[string]contracts.Connection
}

func NewChannelRegistry(logger *zap.Logger) contracts.ChannelRegistry {
	onceChannelRegistry.Do(func() {
		channelRegistryInstance = &ChannelRegistry{
			Logger:   logger,
			channels: make(map[string]map[string]contracts.Connection),
		}
	})
	return channelRegistryInstance
}

func (r *ChannelRegistry) Join(appointmentID string, conn contracts.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	channel, ok := r.channels[appointmentID]
	if !ok {
		channel = make(map[string]contracts.Connection)
		r.channels[appointmentID] = channel
	}
	if _, joined := channel[conn.ID()]; joined {
		return
	}
	channel[conn.ID()] = conn

	r.Logger.Info("connection joined channel",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingConnectionIDKey, conn.ID()),
		zap.String(constvars.LoggingUserIDKey, conn.UserID()),
		zap.Int("channel_size", len(channel)),
	)
}

func (r *ChannelRegistry) Leave(appointmentID string, conn contracts.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	channel, ok := r.channels[appointmentID]
	if !ok {
		return
	}
	if _, joined := channel[conn.ID()]; !joined {
		return
	}
	delete(channel, conn.ID())
	if len(channel) == 0 {
		delete(r.channels, appointmentID)
	}

	r.Logger.Info("connection left channel",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingConnectionIDKey, conn.ID()),
		zap.Int("channel_size", len(channel)),
	)
}

func (r *ChannelRegistry) Connections(appointmentID string) []contracts.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channel, ok := r.channels[appointmentID]
	if !ok {
		return nil
	}
	connections := make([]contracts.Connection, 0, len(channel))
	for _, conn := range channel {
		connections = append(connections, conn)
	}
	return connections
}

func (r *ChannelRegistry) HasParticipant(appointmentID, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conn := range r.channels[appointmentID] {
		if conn.UserID() == userID {
			return true
		}
	}
	return false
}
