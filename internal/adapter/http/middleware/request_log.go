package middleware

import (
	"net/http"
	"strings"
	"time"

	"installer_crm/internal/identity"
	"installer_crm/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if owner, ok := identity.Owner(c.Request.Context()); ok {
			fields = append(fields, "owner_id", owner)
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// Recovery logs the panic and answers 500.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if log != nil {
			log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
