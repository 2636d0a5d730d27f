package middleware

import (
	"log/slog"
	"net/http"

	"lab-dashboard/internal/handler/httperr"
	"lab-dashboard/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if resp, ok := e.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				logger.Error("request failed",
					"request_id", GetRequestID(c),
					"error", e.Err.Error(),
					"stack", errs.ExtractStackLines(e.Err, stackLinesLogged))
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
