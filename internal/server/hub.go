package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/actor"
)

var _ usecase.Broadcaster = (*Hub)(nil)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Envelope is the wire format for every pushed event.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type session struct {
	conn  *websocket.Conn
	send  chan []byte
	actor actor.Actor
}

// Hub fans events out to connected browser sessions. The admin dashboard
// receives full collection snapshots; client portals receive only events
// addressed to their own account.
type Hub struct {
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[*session]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		sessions: make(map[*session]struct{}),
	}
}

// ServeWS upgrades an already-authenticated connection and registers it for
// broadcasts until the peer disconnects.
func (h *Hub) ServeWS(c echo.Context, a actor.Actor) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	s := &session{
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		actor: a,
	}
	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()

	ctx := c.Request().Context()
	log.Infow(ctx, "websocket connected", "admin", a.Admin, "client_id", a.ClientID)

	go s.writePump()
	go func() {
		s.readPump()
		h.mu.Lock()
		delete(h.sessions, s)
		h.mu.Unlock()
		close(s.send)
	}()
	return nil
}

func (h *Hub) BroadcastToAdmin(event string, payload any) {
	h.broadcast(func(a actor.Actor) bool { return a.Admin }, event, payload)
}

func (h *Hub) BroadcastToClient(clientID string, event string, payload any) {
	h.broadcast(func(a actor.Actor) bool { return a.IsClient(clientID) }, event, payload)
}

// BroadcastSnapshot delivers a collection snapshot to admin sessions. It is
// the mongodb.SnapshotSink wired into the watcher.
func (h *Hub) BroadcastSnapshot(snap mongodb.Snapshot) {
	h.BroadcastToAdmin("snapshot", snap)
}

func (h *Hub) broadcast(match func(actor.Actor) bool, event string, payload any) {
	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.sessions {
		if !match(s.actor) {
			continue
		}
		select {
		case s.send <- msg:
		default:
			// slow consumer, drop rather than block the write path
		}
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains inbound frames; the protocol is push-only but reads keep
// pong handling and close detection alive.
func (s *session) readPump() {
	defer s.conn.Close()
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}
