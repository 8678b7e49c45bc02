package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler answers requests a handler left without a body and logs
// the stack of every 5xx cause.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			resp, ok := e.Meta.(httperr.Response)
			if ok && resp.Status < http.StatusInternalServerError {
				continue
			}
			logger.Error("request failed",
				slog.String("request_id", c.GetString(httperr.RequestIDKey)),
				slog.String("path", c.FullPath()),
				slog.Any("stack", errs.ExtractStackLines(e.Err, stackLines)),
			)
		}

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
			c.JSON(http.StatusInternalServerError, httperr.Internal(c))
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
		}
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("recovered from panic",
					slog.String("panic", fmt.Sprint(r)),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", c.GetString(httperr.RequestIDKey)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal(c))
			}
		}()
		c.Next()
	}
}
