package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/tipsplit/internal/form"
	"github.com/muurk/tipsplit/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// Reply is sent to the browser after every event: the full view of the
// session's form, plus an error for events the form did not understand.
// Seq echoes the event's Seq; the initial view carries 0.
type Reply struct {
	form.View
	Seq   uint64 `json:"seq,omitempty"`
	Error string `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// session is one browser tab. It owns its form state; nothing is shared
// with other sessions.
type session struct {
	id         string
	remoteAddr string
	conn       *websocket.Conn
	state      form.State
	metrics    *Metrics
}

// handleWebSocket upgrades the request and runs the session until the peer
// disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error response
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	sess := &session{
		id:         uuid.NewString(),
		remoteAddr: r.RemoteAddr,
		conn:       conn,
		state:      form.NewState(),
		metrics:    s.metrics,
	}

	if !s.trackConn(sess.id, conn) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	s.metrics.SessionOpened()
	logging.LogConnection(sess.remoteAddr, sess.id, "session_opened")

	defer func() {
		_ = conn.Close()
		s.metrics.SessionClosed()
		s.untrackConn(sess.id)
		logging.LogConnection(sess.remoteAddr, sess.id, "session_closed")
	}()

	if err := sess.run(); err != nil {
		logging.Info("Session ended",
			zap.String("session", sess.id),
			zap.Error(err),
		)
	}
}

// run sends the initial view, then answers every event with the new view
func (sess *session) run() error {
	conn := sess.conn
	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)
	go sess.ping(stopPing)

	if err := sess.send(Reply{View: form.NewView(sess.state)}); err != nil {
		return err
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		if err := sess.send(sess.handleMessage(data)); err != nil {
			return err
		}
	}
}

// handleMessage decodes one client message and applies it
func (sess *session) handleMessage(data []byte) Reply {
	var event form.Event
	if err := json.Unmarshal(data, &event); err != nil {
		logging.Warn("Malformed form event",
			zap.String("session", sess.id),
			zap.Error(err),
		)
		return Reply{View: form.NewView(sess.state), Error: "malformed event: " + err.Error()}
	}
	reply := sess.handle(event)
	reply.Seq = event.Seq
	return reply
}

// handle applies one event to the session's form
func (sess *session) handle(event form.Event) Reply {
	next, accepted, err := sess.state.Apply(event)
	if err != nil {
		logging.Warn("Rejected form event",
			zap.String("session", sess.id),
			zap.String("event", event.String()),
			zap.Error(err),
		)
		return Reply{View: form.NewView(sess.state), Error: err.Error()}
	}

	sess.state = next
	sess.metrics.Observe(event, accepted)

	view := form.NewView(sess.state)
	logging.LogFormEvent(sess.id, event.String(), accepted, view.TipPerPerson, view.TotalPerPerson)
	return Reply{View: view}
}

func (sess *session) send(reply Reply) error {
	if err := sess.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return sess.conn.WriteJSON(reply)
}

// ping keeps the connection alive until stop is closed
func (sess *session) ping(stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := sess.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
