package routes

import (
	"net/http"
	"time"

	"fixdesk/handlers"
	"fixdesk/middleware"
	"fixdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the guided conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/sessions", hb.StartChatSessionHandler)
		api.POST("/sessions/:sessionID/message", hb.ChatMessageHandler)
		api.POST("/sessions/:sessionID/action", hb.ChatActionHandler)
		api.DELETE("/sessions/:sessionID", hb.CancelChatSessionHandler)
	}
}

// RegisterDetectionRoutes registers the classifier endpoints.
func RegisterDetectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/detect")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.ClassifyHandler)
		api.POST("/remote", hb.ScheduleRemoteHandler)
		api.GET("/remote/:sessionID", hb.LatestRemoteHandler)
	}
}

// RegisterTicketRoutes registers the classic ticket-form endpoints.
func RegisterTicketRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tickets")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateTicketHandler)
		api.GET("/suggest", hb.SuggestHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterDetectionRoutes(r, hb)
	RegisterTicketRoutes(r, hb)
	RegisterHealthRoute(r)
}
