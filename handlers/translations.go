package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joelle-memorial/backend/internal/i18n"
)

// cookie lifetime for the persisted language choice
const languageCookieMaxAge = 365 * 24 * 60 * 60

// RegisterTranslationRoutes exposes the interaction dictionary and the
// language toggle. The chosen language persists in a cookie so every later
// request resolves it without the frontend re-sending it.
func RegisterTranslationRoutes(r *gin.Engine) {
	r.GET("/api/translations/:lang", func(c *gin.Context) {
		lang, ok := i18n.Parse(c.Param("lang"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language; use en or fr"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"language":     string(lang),
			"translations": i18n.Dict(lang),
		})
	})

	r.PUT("/api/language", func(c *gin.Context) {
		var req struct {
			Language string `json:"language"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language; use en or fr"})
			return
		}
		lang, ok := i18n.Parse(req.Language)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language; use en or fr"})
			return
		}
		c.SetCookie(i18n.CookieName, string(lang), languageCookieMaxAge, "/", "", false, false)
		c.JSON(http.StatusOK, gin.H{"language": string(lang)})
	})
}
