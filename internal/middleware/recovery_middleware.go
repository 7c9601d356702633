package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Shubham126710/products-api/internal/utils"
)

// RecoveryMiddleware converts handler panics into the standard error
// envelope. The panic value reaches the response only outside production;
// it is always logged together with the stack.
func RecoveryMiddleware(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("recovered from panic")

				resp := utils.Response{
					Success: false,
					Message: "Internal Server Error",
				}
				if env != "production" {
					resp.Error = fmt.Sprintf("%v", rec)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
