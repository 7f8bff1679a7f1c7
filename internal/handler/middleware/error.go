package middleware

import (
	"log/slog"
	"net/http"

	"event-booking/internal/handler/httperr"
	"event-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 12

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
	}
}

// logServerErrors records the stack of errors behind a 5xx; clients only see the opaque message.
func logServerErrors(c *gin.Context) {
	for _, ginErr := range c.Errors {
		resp, ok := ginErr.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.Error("request failed",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", ginErr.Err.Error(),
			"stack", errs.ExtractStackLines(ginErr.Err, maxStackLines),
		)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}
