package chat

import (
	"testing"

	"newconsult-service/internal/app/contracts"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeConnection struct {
	id       string
	userID   string
	payloads [][]byte
	full     bool
}

func (f *fakeConnection) ID() string {
	return f.id
}

func (f *fakeConnection) UserID() string {
	return f.userID
}

func (f *fakeConnection) Deliver(payload []byte) bool {
	if f.full {
		return false
	}
	f.payloads = append(f.payloads, payload)
	return true
}

func newTestRegistry() *ChannelRegistry {
	return &ChannelRegistry{
		Logger:   zap.NewNop(),
		channels: make(map[string]map[string]contracts.Connection),
	}
}

func TestChannelRegistry_Join(t *testing.T) {
	registry := newTestRegistry()

	conn := &fakeConnection{id: "conn-1", userID: "user-1"}

	t.Run("Join adds the connection to the channel", func(t *testing.T) {
		registry.Join("appointment-1", conn)

		connections := registry.Connections("appointment-1")
		assert.Len(t, connections, 1)
		assert.True(t, registry.HasParticipant("appointment-1", "user-1"))
	})

	t.Run("Join is idempotent for the same connection", func(t *testing.T) {
		registry.Join("appointment-1", conn)
		registry.Join("appointment-1", conn)

		connections := registry.Connections("appointment-1")
		assert.Len(t, connections, 1, "joining twice must not duplicate the connection")
	})

	t.Run("Two connections of the same user both stay registered", func(t *testing.T) {
		secondTab := &fakeConnection{id: "conn-2", userID: "user-1"}
		registry.Join("appointment-1", secondTab)

		connections := registry.Connections("appointment-1")
		assert.Len(t, connections, 2)
	})
}

func TestChannelRegistry_Leave(t *testing.T) {
	registry := newTestRegistry()

	first := &fakeConnection{id: "conn-1", userID: "user-1"}
	second := &fakeConnection{id: "conn-2", userID: "user-2"}
	registry.Join("appointment-1", first)
	registry.Join("appointment-1", second)

	t.Run("Leave removes only the given connection", func(t *testing.T) {
		registry.Leave("appointment-1", first)

		connections := registry.Connections("appointment-1")
		assert.Len(t, connections, 1)
		assert.False(t, registry.HasParticipant("appointment-1", "user-1"))
		assert.True(t, registry.HasParticipant("appointment-1", "user-2"))
	})

	t.Run("Leave of the last connection removes the channel entry", func(t *testing.T) {
		registry.Leave("appointment-1", second)

		assert.Nil(t, registry.Connections("appointment-1"))
	})

	t.Run("Leave of an unknown connection is a no-op", func(t *testing.T) {
		registry.Leave("appointment-1", first)
		registry.Leave("no-such-appointment", first)

		assert.Nil(t, registry.Connections("appointment-1"))
	})
}

func TestChannelRegistry_HasParticipant(t *testing.T) {
	registry := newTestRegistry()

	registry.Join("appointment-1", &fakeConnection{id: "conn-1", userID: "user-1"})

	assert.True(t, registry.HasParticipant("appointment-1", "user-1"))
	assert.False(t, registry.HasParticipant("appointment-1", "user-2"))
	assert.False(t, registry.HasParticipant("appointment-2", "user-1"))
}
