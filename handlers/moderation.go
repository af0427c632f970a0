package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joelle-memorial/backend/internal/config"
	"github.com/joelle-memorial/backend/internal/testimonial/repository"
	"github.com/joelle-memorial/backend/internal/testimonial/service"
	"github.com/joelle-memorial/backend/pkg/logger"
	"github.com/joelle-memorial/backend/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const moderationPath = "/api/testimonials/delete"

// ModerationHandler guards the testimonial delete endpoint with the shared
// admin password. The secret travels in the X-Admin-Password header, never
// in a query parameter, so it stays out of access logs.
type ModerationHandler struct {
	cfg *config.Config
	svc *service.Service
}

func NewModerationHandler(cfg *config.Config, svc *service.Service) *ModerationHandler {
	return &ModerationHandler{cfg: cfg, svc: svc}
}

// Register wires the moderation endpoint. DELETE does the work, OPTIONS
// advertises the allowed methods, everything else is 405.
func (h *ModerationHandler) Register(r *gin.Engine) {
	r.DELETE(moderationPath, h.Delete)
	r.OPTIONS(moderationPath, func(c *gin.Context) {
		c.Header("Allow", "DELETE, OPTIONS")
		c.Status(http.StatusOK)
	})
	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch} {
		r.Handle(m, moderationPath, func(c *gin.Context) {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed. Use DELETE."})
		})
	}
}

type deleteRequest struct {
	TestimonialID string `json:"testimonialId"`
}

// Delete removes one testimonial after authenticating the shared secret.
// The configuration check runs first so an unconfigured server answers 500
// for every request and never leaks whether a document exists.
func (h *ModerationHandler) Delete(c *gin.Context) {
	serverPassword := h.cfg.Admin.Password
	if serverPassword == "" {
		logger.Errorf("ADMIN_PASSWORD environment variable is not configured")
		metrics.ModerationDenied.WithLabelValues("not_configured").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error. Admin password not set."})
		return
	}

	supplied := c.GetHeader("X-Admin-Password")
	if supplied == "" {
		metrics.ModerationDenied.WithLabelValues("missing_password").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin password required. Please provide X-Admin-Password header."})
		return
	}

	if subtle.ConstantTimeCompare([]byte(supplied), []byte(serverPassword)) != 1 {
		// best-effort diagnostics only; no lockout or audit trail by design
		logger.Warnf("failed admin authentication attempt from %s", c.ClientIP())
		metrics.ModerationDenied.WithLabelValues("wrong_password").Inc()
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid admin password."})
		return
	}

	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid testimonial ID is required."})
		return
	}
	id := strings.TrimSpace(req.TestimonialID)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid testimonial ID is required."})
		return
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid testimonial ID is required."})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found."})
			return
		}
		logger.Errorf("delete testimonial %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial from database."})
		return
	}

	logger.Infof("testimonial %s deleted by admin", id)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Testimonial deleted successfully.",
		"testimonialId": id,
	})
}
