package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kudosboard/kudos-board/internal/common"
	"github.com/kudosboard/kudos-board/pkg/logger"
)

// PanicMessage is the body error for any unhandled panic.
const PanicMessage = "Something went wrong!"

// Recovery turns a panic into 500 {error: "Something went wrong!"}.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.GetLogger().Error().
			Interface("panic", recovered).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, common.ErrorBody{Error: PanicMessage})
	})
}
