package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	domainerrors "github.com/DuongThanhTaii/HCMUE-Forum-sub003/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxIntentSize  = 1024
	sendBufferSize = 256
)

// Client is one live websocket connection of one authenticated user.
// It implements contract.EventSink: the fan-out worker pushes domain
// events into the send buffer, and the write pump flushes them out.
type Client struct {
	id      string
	userID  string
	conn    *websocket.Conn
	log     *slog.Logger
	gateway *Gateway
	send    chan ServerMessage
	stop    chan struct{}
	once    sync.Once
}

func newClient(userID string, conn *websocket.Conn, g *Gateway, log *slog.Logger) *Client {
	return &Client{
		id:      uuid.NewString(),
		userID:  userID,
		conn:    conn,
		log:     log,
		gateway: g,
		send:    make(chan ServerMessage, sendBufferSize),
		stop:    make(chan struct{}),
	}
}

func (c *Client) ID() string     { return c.id }
func (c *Client) UserID() string { return c.userID }

// Consume queues a domain event for delivery. It returns once the
// event is buffered or the fan-out deadline expires; a full buffer on
// a dead connection must never stall the dispatch path.
func (c *Client) Consume(ctx context.Context, evt event.DomainEvent) error {
	select {
	case c.send <- eventMessage(evt):
		return nil
	case <-c.stop:
		return fmt.Errorf("connection %s closed", c.id)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.log.Debug("Write failed, closing connection", "connection_id", c.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.stop:
			return
		}
	}
}

// readPump consumes intents until the connection drops, then triggers
// the gateway cleanup (presence teardown included).
func (c *Client) readPump() {
	defer func() {
		c.close()
		c.gateway.disconnect(c)
	}()

	c.conn.SetReadLimit(maxIntentSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.log.Debug("Unexpected close", "connection_id", c.id, "error", err)
			}
			return
		}

		var intent ClientIntent
		if err := json.Unmarshal(raw, &intent); err != nil {
			c.reply(errorMessage("malformed intent"))
			continue
		}
		if err := intent.Validate(); err != nil {
			c.gateway.stats.IncrIntentsRejected()
			c.reply(errorMessage(err.Error()))
			continue
		}

		c.handleIntent(intent)
	}
}

func (c *Client) handleIntent(intent ClientIntent) {
	targetID, err := uuid.Parse(intent.TargetID)
	if err != nil {
		c.reply(errorMessage("target_id is not a valid uuid"))
		return
	}

	switch intent.Action {
	case ActionSubscribeConversation:
		err = c.gateway.service.SubscribeConversation(c.id, targetID)
	case ActionUnsubscribeConversation:
		c.gateway.service.UnsubscribeConversation(c.id, targetID)
	case ActionSubscribeChannel:
		err = c.gateway.service.SubscribeChannel(c.id, targetID)
	case ActionUnsubscribeChannel:
		c.gateway.service.UnsubscribeChannel(c.id, targetID)
	}

	if err != nil {
		c.gateway.stats.IncrIntentsRejected()
		var domainErr *domainerrors.DomainError
		if errors.As(err, &domainErr) {
			c.reply(errorMessage(domainErr.Message))
			return
		}
		c.reply(errorMessage("internal error"))
		return
	}
	c.reply(ackMessage(intent.Action))
}

// reply queues a control message without ever blocking the read pump.
func (c *Client) reply(msg ServerMessage) {
	select {
	case c.send <- msg:
	default:
		c.log.Debug("Send buffer full, dropping reply", "connection_id", c.id)
	}
}

func (c *Client) close() {
	c.once.Do(func() { close(c.stop) })
}
