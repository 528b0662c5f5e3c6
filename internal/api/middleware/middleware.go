package middleware

import (
	"time"

	"org-portal-backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger logs each request with method, path, status and latency
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString("request_id"),
		}).Info("request completed")
	}
}

// Recovery recovers from panics and returns a generic 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
			"panic":      recovered,
		}).Error("panic recovered")

		c.AbortWithStatusJSON(500, gin.H{
			"status":     "Internal Server Error",
			"message":    "Internal server error",
			"statusCode": 500,
		})
	})
}

// RequestID attaches a unique id to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// CORS configures cross-origin access from the allowed origins
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowCredentials = true
	return cors.New(corsConfig)
}
