package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hackmyway/hackmyway/internal/models"
	"github.com/hackmyway/hackmyway/internal/notify"
)

// ListSaved handles GET /api/saved.
func (s *Server) ListSaved(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	ids, err := s.store.ListSavedIDs(c.Request.Context(), id.UID)
	if err != nil {
		slog.Error("Failed to list saved hackathons", "user", id.UID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch saved hackathons", "savedIds": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedIds": ids})
}

// ToggleSaved handles POST /api/saved/:id/toggle: flips membership of the
// listing in the caller's saved set and reports the new state.
func (s *Server) ToggleSaved(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	hackathonID := c.Param("id")
	saved, err := s.store.ToggleSaved(c.Request.Context(), id.UID, hackathonID)
	if err != nil {
		slog.Error("Failed to toggle saved hackathon", "user", id.UID, "hackathon", hackathonID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update saved list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hackathonId": hackathonID, "saved": saved})
}

// RegisterForHackathon handles POST /api/hackathons/:id/register.
func (s *Server) RegisterForHackathon(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	hackathonID := c.Param("id")

	h, err := s.store.GetHackathon(c.Request.Context(), hackathonID)
	if err != nil {
		slog.Error("Failed to get hackathon for registration", "id", hackathonID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hackathon"})
		return
	}
	if h == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hackathon not found"})
		return
	}

	if err := s.store.Register(c.Request.Context(), id.UID, hackathonID); err != nil {
		if errors.Is(err, models.ErrAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": "already registered for this hackathon"})
			return
		}
		slog.Error("Failed to register", "user", id.UID, "hackathon", hackathonID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register"})
		return
	}

	s.notifier.RegistrationConfirmed(c.Request.Context(), id.UID, *h)
	c.JSON(http.StatusCreated, gin.H{"hackathonId": hackathonID, "registered": true})
}

// UnregisterFromHackathon handles DELETE /api/hackathons/:id/register.
func (s *Server) UnregisterFromHackathon(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	hackathonID := c.Param("id")
	if err := s.store.Unregister(c.Request.Context(), id.UID, hackathonID); err != nil {
		slog.Error("Failed to unregister", "user", id.UID, "hackathon", hackathonID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unregister"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hackathonId": hackathonID, "registered": false})
}

// ListRegistrations handles GET /api/registrations.
func (s *Server) ListRegistrations(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	ids, err := s.store.ListRegisteredIDs(c.Request.Context(), id.UID)
	if err != nil {
		slog.Error("Failed to list registrations", "user", id.UID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch registrations", "hackathonIds": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hackathonIds": ids})
}

// GetMe handles GET /api/me. A user without a profile document yet gets one
// synthesized from the identity token.
func (s *Server) GetMe(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	profile, err := s.store.GetProfile(c.Request.Context(), id.UID)
	if err != nil {
		slog.Error("Failed to get profile", "user", id.UID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}
	if profile == nil {
		profile = &models.UserProfile{
			ID:    id.UID,
			Name:  id.Name,
			Email: id.Email,
		}
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	Name         string   `json:"name"`
	AvatarURL    string   `json:"avatarUrl"`
	UserType     string   `json:"userType"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	College      string   `json:"college"`
	Organization string   `json:"organization"`
	Country      string   `json:"country"`
}

// UpdateMe handles PATCH /api/me: a merge update, set fields only.
func (s *Server) UpdateMe(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.UserType != "" && req.UserType != models.UserTypeParticipant && req.UserType != models.UserTypeOrganization {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userType must be participant or organization"})
		return
	}

	p := models.UserProfile{
		ID:           id.UID,
		Name:         req.Name,
		Email:        id.Email,
		AvatarURL:    req.AvatarURL,
		UserType:     req.UserType,
		Bio:          req.Bio,
		Skills:       req.Skills,
		College:      req.College,
		Organization: req.Organization,
		Country:      req.Country,
	}
	if err := s.store.UpsertProfile(c.Request.Context(), p); err != nil {
		slog.Error("Failed to update profile", "user", id.UID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// ListMyHackathons handles GET /api/me/hackathons: the caller's own listings.
func (s *Server) ListMyHackathons(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	hackathons, err := s.store.ListHackathonsByOrganizer(c.Request.Context(), id.UID)
	if err != nil {
		slog.Error("Failed to list organizer hackathons", "user", id.UID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hackathons", "hackathons": []models.Hackathon{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hackathons": hackathons, "count": len(hackathons)})
}

// ListNotifications handles GET /api/notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	notifications, err := s.store.ListNotifications(c.Request.Context(), id.UID)
	if err != nil {
		slog.Error("Failed to list notifications", "user", id.UID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications", "notifications": []models.Notification{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead handles POST /api/notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	if err := s.store.MarkNotificationRead(c.Request.Context(), id.UID, c.Param("id")); err != nil {
		slog.Error("Failed to mark notification read", "user", id.UID, "notification", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}

// Leaderboard handles GET /api/leaderboard.
func (s *Server) Leaderboard(c *gin.Context) {
	users, err := s.store.Leaderboard(c.Request.Context(), s.config.LeaderboardSize)
	if err != nil {
		slog.Error("Failed to build leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leaderboard", "users": []models.UserProfile{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// SeedDatabase handles POST /api/admin/seed.
func (s *Server) SeedDatabase(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}
	message, err := s.store.SeedHackathons(c.Request.Context(), id.UID)
	if err != nil {
		slog.Error("Failed to seed database", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "seeding failed"})
		return
	}
	if err := s.store.SeedWelcomeNotifications(c.Request.Context(), id.UID, notify.WelcomeSet(time.Now())); err != nil {
		slog.Warn("Failed to seed notifications", "user", id.UID, "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
