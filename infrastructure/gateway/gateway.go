// Package gateway is the dispatch edge of the presence core: it
// authenticates websocket connections, registers them with the presence
// registry, translates client subscribe/unsubscribe intents into
// membership-checked registry calls, and exposes each connection as an
// event sink for the fan-out worker.
package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/auth"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/contract"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/observability"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/services"
	"github.com/gorilla/websocket"
)

type Gateway struct {
	log      *slog.Logger
	registry contract.IRegistry
	service  services.IMembershipService
	verifier *auth.TokenVerifier
	stats    *observability.StatsCollector
	upgrader websocket.Upgrader
	clients  sync.Map // connection id -> *Client
}

func NewGateway(log *slog.Logger, registry contract.IRegistry,
	service services.IMembershipService, verifier *auth.TokenVerifier,
	stats *observability.StatsCollector) *Gateway {
	return &Gateway{
		log:      log,
		registry: registry,
		service:  service,
		verifier: verifier,
		stats:    stats,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeHTTP upgrades an authenticated request to a websocket
// connection and registers it as a live connection of the verified
// user. The token travels in the "token" query parameter.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, err := g.verifier.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	client := newClient(claims.UserID, conn, g, g.log)
	g.clients.Store(client.ID(), client)
	g.registry.AddConnection(client.UserID(), client.ID())
	g.stats.IncrConnectionsOpened()
	g.log.Info("connection opened", "connection_id", client.ID(), "user_id", client.UserID())

	go client.writePump()
	go client.readPump()
}

// Sink resolves a connection id to its event sink for the fan-out
// worker. Implements contract.SinkResolver.
func (g *Gateway) Sink(connectionID string) (contract.EventSink, bool) {
	client, ok := g.clients.Load(connectionID)
	if !ok {
		return nil, false
	}
	return client.(*Client), true
}

// StatsHandler exposes the current traffic counters as JSON for the
// debug surface.
func (g *Gateway) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(g.stats.Snapshot())
	}
}

// disconnect tears one connection down. The registry performs the full
// presence cleanup once the user's last connection drops.
func (g *Gateway) disconnect(c *Client) {
	g.clients.Delete(c.ID())
	g.registry.RemoveConnection(c.ID())
	g.stats.IncrConnectionsClosed()
	g.log.Info("connection closed", "connection_id", c.ID(), "user_id", c.UserID())
}
