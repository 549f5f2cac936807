package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Deliver(t *testing.T) {
	t.Run("queues while the connection is live", func(t *testing.T) {
		client := &Client{send: make(chan []byte, 1)}

		assert.True(t, client.Deliver([]byte("hello")))
		assert.Equal(t, []byte("hello"), <-client.send)
	})

	t.Run("reports false on a full buffer", func(t *testing.T) {
		client := &Client{send: make(chan []byte, 1)}

		assert.True(t, client.Deliver([]byte("first")))
		assert.False(t, client.Deliver([]byte("second")))
	})

	t.Run("drops instead of panicking after teardown", func(t *testing.T) {
		client := &Client{send: make(chan []byte, 1)}
		client.closeSend()

		// A dispatcher snapshot taken just before the disconnect may still
		// call Deliver on this connection.
		assert.NotPanics(t, func() {
			assert.False(t, client.Deliver([]byte("late")))
		})
	})

	t.Run("teardown is idempotent", func(t *testing.T) {
		client := &Client{send: make(chan []byte, 1)}

		assert.NotPanics(t, func() {
			client.closeSend()
			client.closeSend()
		})
	})
}
