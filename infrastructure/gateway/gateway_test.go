package gateway

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/auth"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/observability"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/runtime"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/services"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type gatewayFixture struct {
	gateway  *Gateway
	registry *runtime.Registry
	service  *services.MembershipService
	verifier *auth.TokenVerifier
	server   *httptest.Server
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log)
	events := make(chan event.DomainEvent, 64)
	service := services.NewMembershipService(log, registry, events)
	stats := observability.NewStatsCollector(log)
	verifier := auth.NewTokenVerifier("gateway-test-secret")
	gw := NewGateway(log, registry, service, verifier, stats)

	mux := http.NewServeMux()
	mux.Handle("/ws", gw)
	mux.HandleFunc("/debug/stats", gw.StatsHandler())
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &gatewayFixture{gateway: gw, registry: registry, service: service, verifier: verifier, server: server}
}

func (f *gatewayFixture) dial(t *testing.T, userID string) *websocket.Conn {
	t.Helper()
	token, err := f.verifier.GenerateToken(userID, nil, time.Minute)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestGateway_RejectsInvalidToken(t *testing.T) {
	req := require.New(t)
	f := newGatewayFixture(t)

	wsURL := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=bogus"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	req.Error(err)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestGateway_ConnectRegistersPresence(t *testing.T) {
	req := require.New(t)
	f := newGatewayFixture(t)
	user := uuid.NewString()

	conn := f.dial(t, user)

	req.Eventually(func() bool {
		return f.registry.IsUserOnline(user)
	}, 2*time.Second, 10*time.Millisecond)

	// When the connection closes, the user eventually goes offline
	req.NoError(conn.Close())
	req.Eventually(func() bool {
		return !f.registry.IsUserOnline(user)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGateway_SubscribeConversation(t *testing.T) {
	req := require.New(t)
	f := newGatewayFixture(t)
	alice := uuid.NewString()
	bob := uuid.NewString()

	conversation, err := f.service.CreateDirectConversation(alice, bob, alice)
	req.NoError(err)

	conn := f.dial(t, alice)
	req.Eventually(func() bool {
		return f.registry.IsUserOnline(alice)
	}, 2*time.Second, 10*time.Millisecond)

	// When alice subscribes to her conversation
	req.NoError(conn.WriteJSON(ClientIntent{
		Action:   ActionSubscribeConversation,
		TargetID: conversation.ID().String(),
	}))

	msg := readEnvelope(t, conn)
	req.Equal("ack", msg.Type)
	req.Contains(f.registry.GetConversationUsers(conversation.ID()), alice)
}

func TestGateway_SubscribeUnknownConversation(t *testing.T) {
	req := require.New(t)
	f := newGatewayFixture(t)
	user := uuid.NewString()

	conn := f.dial(t, user)
	req.Eventually(func() bool {
		return f.registry.IsUserOnline(user)
	}, 2*time.Second, 10*time.Millisecond)

	req.NoError(conn.WriteJSON(ClientIntent{
		Action:   ActionSubscribeConversation,
		TargetID: uuid.NewString(),
	}))

	msg := readEnvelope(t, conn)
	req.Equal("error", msg.Type)
	req.Equal("conversation does not exist", msg.Error)
}

func TestGateway_MalformedIntent(t *testing.T) {
	req := require.New(t)
	f := newGatewayFixture(t)

	conn := f.dial(t, uuid.NewString())

	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"action":"shout"}`)))
	msg := readEnvelope(t, conn)
	req.Equal("error", msg.Type)
}

func TestGateway_StatsEndpoint(t *testing.T) {
	req := require.New(t)
	f := newGatewayFixture(t)

	resp, err := http.Get(f.server.URL + "/debug/stats")
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("application/json", resp.Header.Get("Content-Type"))
}
