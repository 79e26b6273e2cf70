package app

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/seva-mitra/core/internal/config"
	"github.com/seva-mitra/core/internal/middleware"
	"github.com/seva-mitra/core/internal/modules/activity"
	"github.com/seva-mitra/core/internal/modules/complaint"
	"github.com/seva-mitra/core/internal/pkg/response"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies at 10 MB.
const maxBodyBytes = 10 << 20

// NewRouter assembles the Gin engine with the middleware chain and the
// full route table.
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, complaintHandler *complaint.Handler, activityHandler *activity.Handler) *gin.Engine {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(bodyLimit())

	// Open cross-origin policy: every origin permitted, no credentials.
	router.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowOriginFunc: func(origin string) bool { return true },
	}))

	router.NoRoute(func(c *gin.Context) {
		response.RouteNotFound(c)
	})
	router.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Seva Mitra backend running"})
	})

	api := router.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	complaintHandler.RegisterRoutes(api)
	activityHandler.RegisterRoutes(api)

	return router
}

func bodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		}
		c.Next()
	}
}
