package web

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"gpufleet/internal/render"
)

// closeSentinel is the text payload a viewer sends to end its session.
// Any other text message is a refresh request.
const closeSentinel = "close"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 8192,
	// The dashboard is unauthenticated; the page itself is served from
	// this process, so cross-origin upgrades are not a concern worth
	// rejecting here.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleViewer runs one viewer's session: a pure request/response cycle per
// inbound text message. The server never pushes unsolicited data; refresh
// cadence is entirely viewer-driven.
func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	s.log.Info("viewer connected from %s", r.RemoteAddr)
	defer func() {
		conn.Close()
		s.log.Info("viewer from %s disconnected", r.RemoteAddr)
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("viewer from %s read error: %v", r.RemoteAddr, err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		if string(data) == closeSentinel {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		}

		// Any other payload is a refresh request; its content is ignored.
		body := render.HTML(s.store)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(body)); err != nil {
			s.log.Error("viewer from %s write failed: %v", r.RemoteAddr, err)
			return
		}
	}
}
