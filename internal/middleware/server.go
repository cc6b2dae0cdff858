package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/pkg/apperrors"
	"uniadvisor_backend/pkg/contextkeys"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps a caller-supplied UUID request id, otherwise generates one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"duration", duration,
			"size_bytes", c.Writer.Size(),
		}
		if c.Writer.Status() >= 500 {
			log.Errorw("HTTP Server Error", fields...)
		} else if c.Writer.Status() >= 400 {
			log.Warnw("HTTP Client Error", fields...)
		} else {
			log.Infow("HTTP Request", fields...)
		}
	}
}

// CORSMiddleware разрешает запросы с фронтенда. "*" в списке открывает доступ всем.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = origins
	return cors.New(cfg)
}

// CatalogMiddleware кладёт в контекст снимок каталога, с которым работает запрос.
// Весь запрос видит один и тот же снимок, даже если каталог перезагрузится посередине.
func CatalogMiddleware(provider catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := provider.Snapshot(c.Request.Context())
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.Set(string(contextkeys.CatalogContextKey), snap)
		c.Next()
	}
}
