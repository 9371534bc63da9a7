package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/swagateam/swagabot/internal/bot"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type UpdateHandler struct {
	gateway *bot.Gateway
}

func NewUpdateHandler(gateway *bot.Gateway) *UpdateHandler {
	return &UpdateHandler{
		gateway: gateway,
	}
}

// UpdateRequest is the inbound webhook payload from the chat transport.
type UpdateRequest struct {
	UpdateID int64  `json:"update_id"`
	ChatID   int64  `json:"chat_id" binding:"required"`
	UserID   int64  `json:"user_id" binding:"required"`
	Username string `json:"username" binding:"omitempty,max=64"`
	Text     string `json:"text" binding:"omitempty,max=4096"`
}

// OutboundMessage is one message the bot wants delivered to the chat.
type OutboundMessage struct {
	ChatID  int64    `json:"chat_id"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// UpdateResponse carries the bot's replies back to the transport.
type UpdateResponse struct {
	Messages []OutboundMessage `json:"messages"`
}

// replyCollector implements bot.Sender by buffering outbound messages for the
// webhook response. One collector per request; the per-chat lock inside the
// gateway keeps it single-writer.
type replyCollector struct {
	messages []OutboundMessage
}

func (c *replyCollector) SendText(_ context.Context, chatID int64, text string) error {
	c.messages = append(c.messages, OutboundMessage{ChatID: chatID, Text: text})
	return nil
}

func (c *replyCollector) SendTextWithOptions(_ context.Context, chatID int64, text string, options []string) error {
	c.messages = append(c.messages, OutboundMessage{ChatID: chatID, Text: text, Options: options})
	return nil
}

// HandleUpdate handles POST /updates
// @Summary Process a chat update
// @Description Dispatch one inbound chat message through the conversation state machine
// @Tags updates
// @Accept json
// @Produce json
// @Param request body UpdateRequest true "Inbound update"
// @Success 200 {object} UpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /updates [post]
func (h *UpdateHandler) HandleUpdate(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid field: " + verrs[0].Field(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	collector := &replyCollector{}
	upd := bot.Update{
		UpdateID: req.UpdateID,
		ChatID:   req.ChatID,
		UserID:   req.UserID,
		Username: req.Username,
		Text:     req.Text,
	}

	if err := h.gateway.HandleUpdate(c.Request.Context(), upd, collector); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to process update",
		})
		return
	}

	c.JSON(http.StatusOK, UpdateResponse{Messages: collector.messages})
}
