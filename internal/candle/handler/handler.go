package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joelle-memorial/backend/internal/candle/service"
	"github.com/joelle-memorial/backend/internal/i18n"
	"github.com/joelle-memorial/backend/pkg/logger"
)

// RegisterCandleRoutes wires the virtual-candle endpoints.
func RegisterCandleRoutes(r *gin.Engine, svc *service.Service) {
	r.POST("/api/candles", func(c *gin.Context) {
		lang := i18n.FromRequest(c.Request)
		var req struct {
			Name string `json:"name"`
		}
		// empty body is fine: an anonymous candle
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "candles.errors.lightFailed")})
				return
			}
		}

		lit, err := svc.Light(c.Request.Context(), req.Name)
		if err != nil {
			if errors.Is(err, service.ErrNameTooLong) {
				c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "candles.errors.nameTooLong")})
				return
			}
			logger.Errorf("light candle: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, "candles.errors.lightFailed")})
			return
		}

		total, err := svc.Count(c.Request.Context())
		if err != nil {
			logger.Warnf("candle count after light: %v", err)
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": i18n.T(lang, "candles.success"),
			"candle":  lit,
			"total":   total,
		})
	})

	r.GET("/api/candles/recent", func(c *gin.Context) {
		lang := i18n.FromRequest(c.Request)
		recent, err := svc.Recent(c.Request.Context())
		if err != nil {
			logger.Errorf("recent candles: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, "candles.errors.loadFailed")})
			return
		}
		total, err := svc.Count(c.Request.Context())
		if err != nil {
			logger.Errorf("candle count: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, "candles.errors.loadFailed")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"candles": recent, "total": total})
	})

	r.GET("/api/candles/count", func(c *gin.Context) {
		lang := i18n.FromRequest(c.Request)
		total, err := svc.Count(c.Request.Context())
		if err != nil {
			logger.Errorf("candle count: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, "candles.errors.loadFailed")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": total})
	})
}
