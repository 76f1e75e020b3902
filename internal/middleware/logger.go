package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saferoute/saferoute-api/internal/pkg/logger"
)

// LoggerConfig controls which paths are skipped by the request logger.
type LoggerConfig struct {
	SkipPaths []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		SkipPaths: []string{"/health", "/ping"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		userID := c.GetString("userID")

		if userID != "" {
			logger.Info("%s %s -> %d (%v) user=%s", c.Request.Method, path, status, latency, userID)
		} else {
			logger.Info("%s %s -> %d (%v)", c.Request.Method, path, status, latency)
		}

		if status >= 500 && len(c.Errors) > 0 {
			logger.Error("%s %s: %s", c.Request.Method, path, c.Errors.String())
		}
	}
}
