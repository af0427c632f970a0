package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joelle-memorial/backend/internal/cooldown"
	"github.com/joelle-memorial/backend/internal/i18n"
	"github.com/joelle-memorial/backend/internal/testimonial"
	"github.com/joelle-memorial/backend/internal/testimonial/service"
	"github.com/joelle-memorial/backend/pkg/logger"
)

// RegisterTestimonialRoutes wires the public guestbook endpoints.
func RegisterTestimonialRoutes(r *gin.Engine, svc *service.Service) {
	r.GET("/api/testimonials", func(c *gin.Context) {
		lang := i18n.FromRequest(c.Request)
		list, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Errorf("list testimonials: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, "testimonials.errors.loadFailed")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"testimonials": list})
	})

	r.POST("/api/testimonials", func(c *gin.Context) {
		lang := i18n.FromRequest(c.Request)
		var sub testimonial.Submission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(lang, "testimonials.errors.badRequest")})
			return
		}

		t, err := svc.Submit(c.Request.Context(), c.ClientIP(), sub)
		if err != nil {
			var verr *testimonial.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": validationMessage(lang, verr.Kind),
					"kind":  string(verr.Kind),
				})
				return
			}
			var lerr *cooldown.LimitedError
			if errors.As(err, &lerr) {
				c.JSON(http.StatusTooManyRequests, gin.H{
					"error":            fmt.Sprintf(i18n.T(lang, "testimonials.errors.rateLimited"), lerr.MinutesRemaining),
					"minutesRemaining": lerr.MinutesRemaining,
				})
				return
			}
			// backend failure: generic retryable message, details stay in the log
			logger.Errorf("submit testimonial: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(lang, "testimonials.errors.submitFailed")})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"message":     i18n.T(lang, "testimonials.success"),
			"testimonial": t,
		})
	})
}

func validationMessage(lang i18n.Language, kind testimonial.FailureKind) string {
	switch kind {
	case testimonial.MissingField:
		return i18n.T(lang, "testimonials.errors.missingFields")
	case testimonial.TooLong:
		return i18n.T(lang, "testimonials.errors.tooLong")
	case testimonial.Profanity:
		return i18n.T(lang, "testimonials.errors.profanity")
	case testimonial.LinkNotAllowed:
		return i18n.T(lang, "testimonials.errors.links")
	}
	return i18n.T(lang, "testimonials.errors.badRequest")
}
