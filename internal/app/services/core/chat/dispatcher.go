package chat

import (
	"sync"

	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	relayDispatcherInstance *RelayDispatcher
	onceRelayDispatcher     sync.Once
)

// RelayDispatcher fans a stored message out to every live connection of
// its appointment channel, the origin included. A connection that cannot
// keep up is detached from the channel; it re-reads history on reconnect.
type RelayDispatcher struct {
	ChannelRegistry contracts.ChannelRegistry
	Logger          *zap.Logger
}

func NewRelayDispatcher(channelRegistry contracts.ChannelRegistry, logger *zap.Logger) contracts.RelayDispatcher {
	onceRelayDispatcher.Do(func() {
		relayDispatcherInstance = &RelayDispatcher{
			ChannelRegistry: channelRegistry,
			Logger:          logger,
		}
	})
	return relayDispatcherInstance
}

func (d *RelayDispatcher) Publish(appointmentID string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		d.Logger.Error("failed to marshal channel event",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return
	}

	for _, conn := range d.ChannelRegistry.Connections(appointmentID) {
		if delivered := conn.Deliver(payload); !delivered {
			d.ChannelRegistry.Leave(appointmentID, conn)
			d.Logger.Warn("detached slow connection from channel",
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.String(constvars.LoggingConnectionIDKey, conn.ID()),
			)
		}
	}
}
