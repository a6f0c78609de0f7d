package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/assistant"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/config"
)

const (
	wsReadLimit    = 16 << 10
	wsPongWait     = 60 * time.Second
	wsPingInterval = 45 * time.Second
	wsWriteWait    = 10 * time.Second
	wsQueueSize    = 8
)

// ChatSocket relays a duplex session: each inbound frame is one utterance,
// each outbound frame is one envelope, in order.
type ChatSocket struct {
	replier  Replier
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewChatSocket builds the websocket relay.
func NewChatSocket(cfg *config.Config, replier Replier, logger *slog.Logger) *ChatSocket {
	allowed := cfg.HTTP.CORSOrigins
	return &ChatSocket{
		replier: replier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"), allowed)
			},
		},
		logger: logger.With("component", "http.websocket"),
	}
}

// Serve upgrades the request and runs the session until the peer leaves.
func (s *ChatSocket) Serve(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	sessionID := uuid.NewString()
	logger := s.logger.With("user_id", userID, "session_id", sessionID)
	logger.Info("websocket session opened")

	// The session context ends when the peer disconnects so in-flight
	// pipeline work is abandoned.
	ctx, cancel := context.WithCancel(context.Background())
	session := &wsSession{conn: conn}
	defer func() {
		cancel()
		_ = conn.Close()
		logger.Info("websocket session closed")
	}()

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go session.keepAlive(ctx)

	utterances := make(chan string, wsQueueSize)
	go s.readPump(ctx, cancel, conn, utterances, logger)

	// Replies go out in arrival order. Blank frames still get the error
	// envelope so the client is never left waiting.
	for utterance := range utterances {
		env := s.replier.Reply(ctx, utterance)
		if ctx.Err() != nil {
			return
		}
		if err := session.writeJSON(env); err != nil {
			logger.Warn("websocket write failed", "error", err)
			return
		}
	}
}

// readPump feeds inbound utterances to the reply loop. A read error or a
// close frame cancels the session context and closes the channel.
func (s *ChatSocket) readPump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, out chan<- string, logger *slog.Logger) {
	defer close(out)
	defer cancel()
	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("websocket read ended", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))

		select {
		case out <- decodeUtterance(payload):
		case <-ctx.Done():
			return
		}
	}
}

// decodeUtterance accepts either a bare text frame or {"message": "..."}.
func decodeUtterance(payload []byte) string {
	text := strings.TrimSpace(string(payload))
	if strings.HasPrefix(text, "{") {
		var req assistant.Request
		if err := json.Unmarshal(payload, &req); err == nil {
			return strings.TrimSpace(req.Message)
		}
	}
	return text
}

type wsSession struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *wsSession) writeJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return s.conn.WriteJSON(v)
}

func (s *wsSession) keepAlive(ctx context.Context) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait))
			s.mu.Unlock()
			if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				return
			}
		}
	}
}
