package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/assistant"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// Replier answers one utterance with an envelope.
type Replier interface {
	Reply(ctx context.Context, utterance string) assistant.Envelope
}

// ReadinessChecker reports whether the FAQ corpus is loaded.
type ReadinessChecker interface {
	Ready() bool
}

// Handler wires the HTTP transport to the assistant pipeline.
type Handler struct {
	replier Replier
	ready   ReadinessChecker
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(replier Replier, ready ReadinessChecker, logger *slog.Logger) *Handler {
	return &Handler{
		replier: replier,
		ready:   ready,
		logger:  logger.With("component", "http.handler"),
	}
}

// Chat answers a single utterance.
func (h *Handler) Chat(c *gin.Context) {
	var req assistant.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		abortWithError(c, apperrors.Wrap(apperrors.CodeInvalidInput, "message cannot be empty", nil))
		return
	}

	env := h.replier.Reply(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, env)
}

// Root is the liveness check kept for existing clients.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Chatbot backend running"})
}

// Healthz reports readiness of the FAQ corpus.
func (h *Handler) Healthz(c *gin.Context) {
	if h.ready != nil && !h.ready.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting", "corpusReady": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "corpusReady": true})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
