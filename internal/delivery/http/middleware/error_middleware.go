package middleware

import (
	"errors"
	"net/http"

	"go-landing-backend/internal/delivery/http/response"
	"go-landing-backend/pkg/apperror"
	"go-landing-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "path", c.FullPath(), "status", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("internal server error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
