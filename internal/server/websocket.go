package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Previews are opened from local tooling on any origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket streams a snapshot of the state to the client right away
// and after every reduction. Text messages from the client are decoded as
// actions and dispatched like POST /api/actions.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := r.RemoteAddr
	s.track(remoteAddr, conn)
	logging.LogConnection(remoteAddr, "websocket_upgraded")

	sub := s.store.Subscribe(remoteAddr)
	done := make(chan struct{})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		s.readActions(conn, remoteAddr)
	}()

	s.writeSnapshots(conn, sub, done)

	s.store.Unsubscribe(sub)
	s.untrack(remoteAddr)
	_ = conn.Close()
	<-done
	logging.LogConnection(remoteAddr, "websocket_closed")
}

// readActions consumes client messages until the connection fails
func (s *Server) readActions(conn *websocket.Conn, remoteAddr string) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("WebSocket read failed",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		if messageType != websocket.TextMessage {
			logging.Debug("Ignoring non-text WebSocket message",
				zap.String("remote_addr", remoteAddr),
				zap.Int("message_type", messageType),
			)
			continue
		}

		action, err := automation.DecodeAction(data)
		if err != nil {
			logging.LogActionRejected("ws", err)
			continue
		}
		state := s.store.Dispatch(action)
		logging.LogAction("ws", action, state)
	}
}

// writeSnapshots sends every state from sub until the reader stops, the
// subscription is closed or a write fails
func (s *Server) writeSnapshots(conn *websocket.Conn, sub *Subscription, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case state, ok := <-sub.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(state); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
