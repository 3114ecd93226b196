package handlers

import (
	"errors"
	"net/http"

	"fixdesk/services/conversation"
	"fixdesk/services/detection"
	"fixdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DetectionHandler exposes the local classifier and the debounced remote
// detection path.
type DetectionHandler struct {
	Detector  detection.DetectionService
	Debouncer *detection.Debouncer
	Chat      conversation.ChatService
	Logger    *zap.Logger
}

func NewDetectionHandler(detector detection.DetectionService, debouncer *detection.Debouncer, chat conversation.ChatService, logger *zap.Logger) *DetectionHandler {
	return &DetectionHandler{Detector: detector, Debouncer: debouncer, Chat: chat, Logger: logger}
}

// ClassifyHandler handles POST /api/detect: local, synchronous
// classification with no network involved.
func (h *DetectionHandler) ClassifyHandler(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Detector.Classify(body.Text))
}

// ScheduleRemoteHandler handles POST /api/detect/remote. The call is
// debounced per session: only the last text within the quiet window reaches
// the suggestion endpoint. While the upstream ticket API is known to be
// down the remote path is skipped entirely and the fallback result is
// delivered at once.
func (h *DetectionHandler) ScheduleRemoteHandler(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId" binding:"required"`
		Text      string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if !utils.TicketAPIUp() {
		fallback := h.Detector.Classify("")
		if err := h.Chat.RecordRemoteDetection(c.Request.Context(), body.SessionID, fallback); err != nil {
			h.Logger.Warn("failed to record fallback detection", zap.Error(err))
		}
		c.JSON(http.StatusAccepted, gin.H{"scheduled": false, "reason": "detection temporarily unavailable"})
		return
	}

	scheduled := h.Debouncer.Schedule(body.SessionID, body.Text)
	c.JSON(http.StatusAccepted, gin.H{"scheduled": scheduled})
}

// LatestRemoteHandler handles GET /api/detect/remote/:sessionID, returning
// the most recent delivered remote detection for the session.
func (h *DetectionHandler) LatestRemoteHandler(c *gin.Context) {
	result, err := h.Chat.LatestRemoteDetection(c.Request.Context(), c.Param("sessionID"), sessionUserID(c))
	if err != nil {
		if errors.Is(err, conversation.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "chat session not found or expired", "")
			return
		}
		h.Logger.Error("failed to read remote detection", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to read detection result", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
