package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/3zk9/portfolio/pkg/apperror"
	"github.com/3zk9/portfolio/pkg/logger"
)

// ErrorMiddleware renders the last error pushed with c.Error as JSON.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, zap.String("path", c.Request.URL.Path))
		} else {
			log.Warn("Request rejected", zap.String("path", c.Request.URL.Path), zap.String("reason", appErr.Details))
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
