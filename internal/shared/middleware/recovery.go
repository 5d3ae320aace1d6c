package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into a 500 error page.
func Recovery(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", rec).
					Msg("Panic recovered")

				if !c.Writer.Written() {
					renderError(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), debug)
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
