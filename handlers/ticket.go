package handlers

import (
	"errors"
	"net/http"

	"fixdesk/models"
	"fixdesk/services/conversation"
	"fixdesk/services/detection"
	"fixdesk/services/ticket"
	"fixdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TicketHandler serves the classic (non-chat) ticket form. It goes through
// the same draft builder as the guided flow so the normalization rules
// cannot diverge between the two entry paths.
type TicketHandler struct {
	Gateway ticket.Gateway
	Logger  *zap.Logger
}

func NewTicketHandler(gw ticket.Gateway, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{Gateway: gw, Logger: logger}
}

// CreateTicketHandler handles POST /api/tickets.
func (h *TicketHandler) CreateTicketHandler(c *gin.Context) {
	var body struct {
		IssueText  string          `json:"issueText" binding:"required"`
		Location   string          `json:"location"`
		Urgency    models.Urgency  `json:"urgency"`
		Category   models.Category `json:"category"`
		OnBehalfOf string          `json:"onBehalfOf"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft := models.IssueDraft{
		IssueText:    body.IssueText,
		Location:     body.Location,
		UrgencyLabel: body.Urgency,
		Category:     body.Category,
	}
	payload, err := conversation.BuildTicketPayload(draft, sessionUserID(c), body.OnBehalfOf)
	if err != nil {
		if errors.Is(err, conversation.ErrUnauthenticated) {
			utils.JSONError(c, http.StatusUnauthorized, "you need to be signed in to create tickets", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	created, err := h.Gateway.CreateTicket(c.Request.Context(), payload)
	if err != nil {
		var rejected *ticket.SubmissionRejectedError
		if errors.As(err, &rejected) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejected.Message, "retryable": true})
			return
		}
		h.Logger.Error("ticket submission failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "the ticket service is unavailable, please retry", "retryable": true})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SuggestHandler handles GET /api/tickets/suggest?text=. It aggregates
// remote suggestions per category to predict a category for the plain form.
func (h *TicketHandler) SuggestHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		utils.JSONError(c, http.StatusBadRequest, "text query parameter is required", "")
		return
	}

	recs, err := h.Gateway.GetKeywordSuggestions(c.Request.Context(), text)
	if err != nil {
		// Degraded, never broken: the form falls back to no prediction.
		c.JSON(http.StatusOK, gin.H{"suggestions": []models.SuggestionRecord{}})
		return
	}

	response := gin.H{"suggestions": recs}
	if category, total, ok := detection.AggregateSuggestions(recs); ok {
		confidence, level := detection.Score(total)
		response["predictedCategory"] = category
		response["predictedCategoryText"] = category.Name()
		response["confidence"] = confidence
		response["confidenceLevel"] = level
	}
	c.JSON(http.StatusOK, response)
}
