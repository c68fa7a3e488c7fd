package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthapp/hearth-api/internal/api/metrics"
	"github.com/hearthapp/hearth-api/internal/core/ports"
)

type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Conversation returns the messages exchanged between the caller and a peer,
// oldest first.
//
// @Summary      Conversation with a user
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        peer  path      string  true  "Peer username"
// @Success      200   {array}   messageResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/messages/{peer} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	msgs, err := h.messages.Conversation(c.Request().Context(), id, c.Param("peer"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMessageResponses(msgs))
}

// Send delivers a direct message from the caller.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Recipient and text"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	msg, err := h.messages.Send(c.Request().Context(), id, req.To, req.Message)
	if err != nil {
		return err
	}
	metrics.MessagesSentTotal.Inc()

	return c.JSON(http.StatusOK, toMessageResponse(msg))
}
