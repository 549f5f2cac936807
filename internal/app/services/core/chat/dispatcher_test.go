package chat

import (
	"testing"

	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestDispatcher(registry *ChannelRegistry) *RelayDispatcher {
	return &RelayDispatcher{
		ChannelRegistry: registry,
		Logger:          zap.NewNop(),
	}
}

func TestRelayDispatcher_Publish(t *testing.T) {
	event := responses.ChatEvent{
		Type: constvars.ChatEventNewMessage,
		Message: responses.Message{
			ID:            "message-1",
			AppointmentID: "appointment-1",
			SenderID:      "user-1",
			ReceiverID:    "user-2",
			Content:       "hello",
			MessageType:   constvars.MessageTypeText,
		},
	}

	t.Run("Publish delivers to every connection including the origin", func(t *testing.T) {
		registry := newTestRegistry()
		dispatcher := newTestDispatcher(registry)

		sender := &fakeConnection{id: "conn-1", userID: "user-1"}
		receiver := &fakeConnection{id: "conn-2", userID: "user-2"}
		registry.Join("appointment-1", sender)
		registry.Join("appointment-1", receiver)

		dispatcher.Publish("appointment-1", event)

		assert.Len(t, sender.payloads, 1, "origin connection must receive its own message")
		assert.Len(t, receiver.payloads, 1)

		var decoded responses.ChatEvent
		assert.NoError(t, json.Unmarshal(receiver.payloads[0], &decoded))
		assert.Equal(t, constvars.ChatEventNewMessage, decoded.Type)
		assert.Equal(t, "message-1", decoded.Message.ID)
	})

	t.Run("Publish delivers exactly once per connection", func(t *testing.T) {
		registry := newTestRegistry()
		dispatcher := newTestDispatcher(registry)

		conn := &fakeConnection{id: "conn-1", userID: "user-1"}
		registry.Join("appointment-1", conn)
		registry.Join("appointment-1", conn)

		dispatcher.Publish("appointment-1", event)

		assert.Len(t, conn.payloads, 1)
	})

	t.Run("Publish detaches a connection that cannot accept writes", func(t *testing.T) {
		registry := newTestRegistry()
		dispatcher := newTestDispatcher(registry)

		healthy := &fakeConnection{id: "conn-1", userID: "user-1"}
		stalled := &fakeConnection{id: "conn-2", userID: "user-2", full: true}
		registry.Join("appointment-1", healthy)
		registry.Join("appointment-1", stalled)

		dispatcher.Publish("appointment-1", event)

		assert.Len(t, healthy.payloads, 1)
		assert.Empty(t, stalled.payloads)
		assert.False(t, registry.HasParticipant("appointment-1", "user-2"), "stalled connection must be detached")
	})

	t.Run("Publish to an empty channel is a no-op", func(t *testing.T) {
		registry := newTestRegistry()
		dispatcher := newTestDispatcher(registry)

		dispatcher.Publish("appointment-1", event)
	})
}
