package gateway

import (
	"time"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/go-playground/validator/v10"
)

const (
	ActionSubscribeConversation   = "subscribe_conversation"
	ActionUnsubscribeConversation = "unsubscribe_conversation"
	ActionSubscribeChannel        = "subscribe_channel"
	ActionUnsubscribeChannel      = "unsubscribe_channel"
)

var validate = validator.New()

// ClientIntent is a subscribe/unsubscribe request issued by a client
// over its websocket connection.
type ClientIntent struct {
	Action   string `json:"action" validate:"required,oneof=subscribe_conversation unsubscribe_conversation subscribe_channel unsubscribe_channel"`
	TargetID string `json:"target_id" validate:"required,uuid"`
}

func (i ClientIntent) Validate() error {
	return validate.Struct(i)
}

// ServerMessage is the envelope pushed to clients: either a domain
// event or the outcome of an intent.
type ServerMessage struct {
	Type    string    `json:"type"` // event | ack | error
	Event   string    `json:"event,omitempty"`
	Payload any       `json:"payload,omitempty"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

func eventMessage(evt event.DomainEvent) ServerMessage {
	return ServerMessage{
		Type:    "event",
		Event:   evt.Name(),
		Payload: evt,
		At:      evt.OccurredAt(),
	}
}

func ackMessage(action string) ServerMessage {
	return ServerMessage{Type: "ack", Event: action, At: time.Now().UTC()}
}

func errorMessage(reason string) ServerMessage {
	return ServerMessage{Type: "error", Error: reason, At: time.Now().UTC()}
}
