package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	StartChatSessionHandler  gin.HandlerFunc
	ChatMessageHandler       gin.HandlerFunc
	ChatActionHandler        gin.HandlerFunc
	CancelChatSessionHandler gin.HandlerFunc

	// Detection endpoints
	ClassifyHandler       gin.HandlerFunc
	ScheduleRemoteHandler gin.HandlerFunc
	LatestRemoteHandler   gin.HandlerFunc

	// Ticket form endpoints
	CreateTicketHandler gin.HandlerFunc
	SuggestHandler      gin.HandlerFunc
}
