package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskify-app/taskify-api/internal/dto"
	"github.com/taskify-app/taskify-api/internal/logger"
)

// Recovery is the outermost request boundary: any panic is logged with
// detail server-side and surfaced to the client as a generic envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("unhandled panic",
			"error", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.ErrorResponse("An internal server error occurred. Please try again later."))
	})
}
