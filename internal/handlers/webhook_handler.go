package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/bosesayankolkata/dairyexpress/internal/conversation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Sender is the outbound side of the messaging gateway.
type Sender interface {
	SendText(ctx context.Context, phone, body string) (bool, error)
}

// WebhookHandler receives inbound provider batches and drives the
// conversation engine.
type WebhookHandler struct {
	engine *conversation.Engine
	sender Sender
	log    *zap.Logger
}

func NewWebhookHandler(engine *conversation.Engine, sender Sender, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{engine: engine, sender: sender, log: log}
}

type webhookRequest struct {
	Messages []webhookMessage `json:"messages"`
}

type webhookMessage struct {
	ChatID string `json:"chat_id"`
	FromMe bool   `json:"from_me"`
	Text   struct {
		Body string `json:"body"`
	} `json:"text"`
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// HandleWebhook processes a provider batch. Messages are independent: one
// failing message is logged and does not block its siblings.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	for _, msg := range req.Messages {
		if msg.FromMe {
			continue
		}

		phoneNumber := strings.TrimSuffix(msg.ChatID, "@s.whatsapp.net")
		if phoneNumber == "" {
			continue
		}

		reply, err := h.engine.HandleMessage(c.Request.Context(), phoneNumber, msg.Text.Body)
		if err != nil {
			h.log.Error("failed to process message",
				zap.String("phone", phoneNumber),
				zap.Error(err))
			continue
		}
		if reply == "" {
			continue
		}

		// Send failure never rolls back the committed transition.
		delivered, err := h.sender.SendText(c.Request.Context(), phoneNumber, reply)
		if err != nil || !delivered {
			h.log.Warn("failed to deliver reply",
				zap.String("phone", phoneNumber),
				zap.Bool("delivered", delivered),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// SendMessage lets an admin push an arbitrary outbound message.
func (h *WebhookHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	delivered, err := h.sender.SendText(c.Request.Context(), req.ChatID, req.Text)
	if err != nil {
		h.log.Warn("manual send failed", zap.String("chat_id", req.ChatID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": delivered})
}
