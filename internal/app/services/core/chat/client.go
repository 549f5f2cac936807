package chat

import (
	"context"
	"sync"
	"time"

	"newconsult-service/internal/app/config"
	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	inboundFrameTypePing     = "ping"
	inboundFrameTypeMarkRead = "mark_read"
)

type inboundFrame struct {
	Type string `json:"type"`
}

// Client is one websocket connection joined to an appointment channel. It
// owns the socket: ReadPump is the only reader, WritePump the only writer.
type Client struct {
	connectionID  string
	userID        string
	appointmentID string

	conn            *websocket.Conn
	send            chan []byte
	sendMutex       sync.Mutex
	sendClosed      bool
	channelRegistry contracts.ChannelRegistry
	messageUsecase  contracts.MessageUsecase
	chatConfig      config.Chat
	logger          *zap.Logger
}

func NewClient(
	conn *websocket.Conn,
	appointmentID, userID string,
	channelRegistry contracts.ChannelRegistry,
	messageUsecase contracts.MessageUsecase,
	chatConfig config.Chat,
	logger *zap.Logger,
) *Client {
	return &Client{
		connectionID:    utils.GenerateConnectionID(),
		userID:          userID,
		appointmentID:   appointmentID,
		conn:            conn,
		send:            make(chan []byte, chatConfig.SendBufferSize),
		channelRegistry: channelRegistry,
		messageUsecase:  messageUsecase,
		chatConfig:      chatConfig,
		logger:          logger,
	}
}

func (c *Client) ID() string {
	return c.connectionID
}

func (c *Client) UserID() string {
	return c.userID
}

// Deliver queues a payload for WritePump without blocking. A full buffer
// means the reader has fallen too far behind to catch up in-band. A
// connection already torn down reports false instead of delivering: the
// dispatcher may still hold it in a snapshot taken before the disconnect.
func (c *Client) Deliver(payload []byte) bool {
	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()

	if c.sendClosed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()

	if !c.sendClosed {
		c.sendClosed = true
		close(c.send)
	}
}

// ReadPump consumes inbound frames until the peer disconnects, then
// detaches the connection from its channel.
func (c *Client) ReadPump(sessionData string) {
	defer func() {
		c.channelRegistry.Leave(c.appointmentID, c)
		c.closeSend()
		c.conn.Close()
	}()

	pongWait := time.Duration(c.chatConfig.PongWaitInSeconds) * time.Second
	c.conn.SetReadLimit(c.chatConfig.MaxFrameSizeInBytes)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	limiter := rate.NewLimiter(rate.Limit(c.chatConfig.InboundFramesPerSecond), c.chatConfig.InboundFrameBurst)

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("unexpected websocket close",
					zap.String(constvars.LoggingConnectionIDKey, c.connectionID),
					zap.Error(err),
				)
			}
			return
		}
		if !limiter.Allow() {
			continue
		}
		c.handleInboundFrame(payload, sessionData)
	}
}

func (c *Client) handleInboundFrame(payload []byte, sessionData string) {
	var frame inboundFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return
	}

	switch frame.Type {
	case inboundFrameTypePing:
		// keepalive only, the pong handler already reset the deadline

	case inboundFrameTypeMarkRead:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		request := &requests.MarkMessagesRead{
			AppointmentID: c.appointmentID,
			SessionData:   sessionData,
		}
		if _, err := c.messageUsecase.MarkMessagesRead(ctx, request); err != nil {
			c.logger.Warn("failed to mark messages read from channel frame",
				zap.String(constvars.LoggingAppointmentIDKey, c.appointmentID),
				zap.String(constvars.LoggingConnectionIDKey, c.connectionID),
				zap.Error(err),
			)
		}
	}
}

// WritePump drains the send buffer onto the socket and keeps the peer
// alive with periodic pings.
func (c *Client) WritePump() {
	writeWait := time.Duration(c.chatConfig.WriteWaitInSeconds) * time.Second
	pingTicker := time.NewTicker(time.Duration(c.chatConfig.PingPeriodInSeconds) * time.Second)
	defer func() {
		pingTicker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-pingTicker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
