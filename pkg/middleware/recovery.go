package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery converts a panic anywhere below into a 500 response. The visitor
// redirect path carries its own recover that turns panics into a fallback
// redirect, so this boundary mostly guards the management API.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Msg("Request panicked")

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"code":    500,
						"message": "Internal server error",
					})
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
