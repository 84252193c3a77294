package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/parkguard-dev/parkguard/internal/alerts"
	"github.com/parkguard-dev/parkguard/internal/handlers"
	"github.com/parkguard-dev/parkguard/internal/types"
	"gorm.io/gorm"
)

// RequestID tags every request with an id so log lines from the same
// request can be correlated.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-ID")

		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set("request_id", requestID)
		ctx.Header("X-Request-ID", requestID)
		ctx.Next()
	}
}

func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	alertHandler := handlers.NewAlertHandler(alerts.NewService(db))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws", handlers.WebSocket)

		alertRoutes := api.Group("/alerts")
		{
			alertRoutes.POST("", alertHandler.CreateAlert)
			alertRoutes.GET("", alertHandler.ListAlerts)
			alertRoutes.PATCH("/:id", alertHandler.UpdateAlert)
			alertRoutes.DELETE("/:id", alertHandler.DeleteAlert)
		}
	}

	return r
}
