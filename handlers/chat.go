package handlers

import (
	"errors"
	"net/http"

	"fixdesk/models"
	"fixdesk/services/conversation"
	"fixdesk/services/detection"
	"fixdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the guided ticket-creation conversation.
type ChatHandler struct {
	Svc    conversation.ChatService
	Logger *zap.Logger

	// Debouncer, when set, has its pending remote detection dropped as a
	// session is cancelled.
	Debouncer *detection.Debouncer
}

func NewChatHandler(svc conversation.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

// StartSessionHandler handles POST /api/chat/sessions.
func (h *ChatHandler) StartSessionHandler(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	// The body is optional: starting with no text just opens the flow.
	_ = c.ShouldBindJSON(&body)

	reply, err := h.Svc.StartSession(c.Request.Context(), sessionUserID(c), body.Text)
	if err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// MessageHandler handles POST /api/chat/sessions/:sessionID/message.
func (h *ChatHandler) MessageHandler(c *gin.Context) {
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reply, err := h.Svc.HandleMessage(c.Request.Context(), c.Param("sessionID"), sessionUserID(c), body.Text)
	if err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// ActionHandler handles POST /api/chat/sessions/:sessionID/action.
func (h *ChatHandler) ActionHandler(c *gin.Context) {
	var body struct {
		Action models.ChatAction `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reply, err := h.Svc.HandleAction(c.Request.Context(), c.Param("sessionID"), sessionUserID(c), body.Action)
	if err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// CancelSessionHandler handles DELETE /api/chat/sessions/:sessionID.
func (h *ChatHandler) CancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if h.Debouncer != nil {
		h.Debouncer.Cancel(sessionID)
	}
	reply, err := h.Svc.HandleAction(c.Request.Context(), sessionID, sessionUserID(c), models.ActionCancel)
	if err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) chatError(c *gin.Context, err error) {
	var transition *conversation.TransitionError
	switch {
	case errors.Is(err, conversation.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "chat session not found or expired", "")
	case errors.Is(err, conversation.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "you need to be signed in to create tickets", "")
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, transition.Error(), "")
	default:
		h.Logger.Error("chat turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong handling the conversation", "")
	}
}

// sessionUserID returns the authenticated user ID set by the auth
// middleware, or "" when the request is unauthenticated.
func sessionUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
