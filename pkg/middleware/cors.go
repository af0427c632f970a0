package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS sets permissive cross-origin headers and answers OPTIONS preflights.
// The static bundle and the API are normally served from the same origin;
// the open policy exists so a separately hosted preview frontend still works.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Admin-Password")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			// only short-circuit preflights for paths with no OPTIONS route of
			// their own; a registered handler (FullPath non-empty) must still
			// run so it can set its Allow header
			if c.FullPath() == "" {
				c.AbortWithStatus(http.StatusOK)
				return
			}
		}
		c.Next()
	}
}
