package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hackmyway/hackmyway/internal/hackathon"
	"github.com/hackmyway/hackmyway/internal/models"
)

// criteriaFromQuery builds the filter selection from repeatable query
// parameters. Unknown values pass through; the filter simply won't match
// them.
func criteriaFromQuery(c *gin.Context) hackathon.Criteria {
	return hackathon.Criteria{
		Search:       strings.TrimSpace(c.Query("search")),
		Modes:        c.QueryArray("mode"),
		Locations:    c.QueryArray("location"),
		Prizes:       c.QueryArray("prize"),
		Themes:       c.QueryArray("theme"),
		Difficulties: c.QueryArray("difficulty"),
		Sources:      c.QueryArray("source"),
	}
}

// ListHackathons handles GET /api/hackathons: the browse pipeline
// (filter, sort, optional tab classification) runs server-side.
func (s *Server) ListHackathons(c *gin.Context) {
	hackathons, err := s.store.ListHackathons(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list hackathons", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "failed to fetch hackathons",
			"hackathons": []models.Hackathon{},
		})
		return
	}

	criteria := criteriaFromQuery(c)
	sortKey := hackathon.ParseSortKey(c.Query("sort"))
	status, _ := hackathon.ParseStatus(c.Query("tab"))

	result := hackathon.Pipeline(hackathons, criteria, sortKey, status, time.Now())
	c.JSON(http.StatusOK, gin.H{"hackathons": result, "count": len(result)})
}

// GetHackathon handles GET /api/hackathons/:id.
func (s *Server) GetHackathon(c *gin.Context) {
	h, err := s.store.GetHackathon(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("Failed to get hackathon", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hackathon"})
		return
	}
	if h == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hackathon not found"})
		return
	}
	c.JSON(http.StatusOK, h)
}

// createHackathonRequest is the organizer-supplied subset of listing fields.
type createHackathonRequest struct {
	Title                string    `json:"title"`
	OrganizerName        string    `json:"organizerName"`
	Description          string    `json:"description"`
	Location             string    `json:"location"`
	City                 string    `json:"city"`
	Mode                 string    `json:"mode"`
	Difficulty           string    `json:"difficulty"`
	MaxTeamSize          int       `json:"maxTeamSize"`
	PrizeMoney           int       `json:"prizeMoney"`
	Theme                string    `json:"theme"`
	Tags                 []string  `json:"tags"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`
	RegistrationURL      string    `json:"registrationUrl"`
	CoverImageURL        string    `json:"coverImageUrl"`
}

// CreateHackathon handles POST /api/hackathons.
func (s *Server) CreateHackathon(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req createHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	now := time.Now()
	city := req.City
	if city == "" {
		city = "Online"
	}
	h := models.Hackathon{
		ID:                   s.store.NewHackathonID(),
		Title:                req.Title,
		OrganizerName:        req.OrganizerName,
		OrganizerID:          id.UID,
		Description:          req.Description,
		Location:             req.Location,
		City:                 city,
		Mode:                 req.Mode,
		Difficulty:           req.Difficulty,
		MaxTeamSize:          req.MaxTeamSize,
		PrizeMoney:           req.PrizeMoney,
		Prize1st:             req.PrizeMoney,
		Theme:                req.Theme,
		Tags:                 req.Tags,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		RegistrationURL:      req.RegistrationURL,
		CoverImageURL:        req.CoverImageURL,
		SourcePlatform:       "User Created",
		IsScraped:            false,
		Status:               "pending_review",
		ParticipantCount:     0,
		CreatedAt:            now,
		LastUpdated:          now,
	}

	// End-before-start and enum violations are rejected here, at creation
	// time only.
	if err := s.validate.ValidateStruct(h); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.TryCreateHackathon(c.Request.Context(), h); err != nil {
		slog.Error("Failed to create hackathon", "title", h.Title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create hackathon"})
		return
	}

	s.notifier.NewHackathonPosted(c.Request.Context(), id.UID, h)
	c.JSON(http.StatusCreated, h)
}

// UpdateHackathon handles PATCH /api/hackathons/:id. Only the owning
// organizer may mutate a listing.
func (s *Server) UpdateHackathon(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	existing, err := s.store.GetHackathon(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("Failed to get hackathon for update", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hackathon"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hackathon not found"})
		return
	}
	if existing.OrganizerID != id.UID {
		auditLog.Warn("Denied hackathon update", "hackathon", existing.ID, "owner", existing.OrganizerID, "caller", id.UID)
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owning organizer may update this hackathon"})
		return
	}

	var req createHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	applyUpdate(existing, req)
	existing.LastUpdated = time.Now()

	if err := s.validate.ValidateStruct(*existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.UpdateHackathon(c.Request.Context(), *existing); err != nil {
		slog.Error("Failed to update hackathon", "id", existing.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update hackathon"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// applyUpdate copies the set fields of req onto h. Zero values mean "leave
// unchanged"; a PATCH cannot clear a field.
func applyUpdate(h *models.Hackathon, req createHackathonRequest) {
	if req.Title != "" {
		h.Title = req.Title
	}
	if req.OrganizerName != "" {
		h.OrganizerName = req.OrganizerName
	}
	if req.Description != "" {
		h.Description = req.Description
	}
	if req.Location != "" {
		h.Location = req.Location
	}
	if req.City != "" {
		h.City = req.City
	}
	if req.Mode != "" {
		h.Mode = req.Mode
	}
	if req.Difficulty != "" {
		h.Difficulty = req.Difficulty
	}
	if req.MaxTeamSize != 0 {
		h.MaxTeamSize = req.MaxTeamSize
	}
	if req.PrizeMoney != 0 {
		h.PrizeMoney = req.PrizeMoney
	}
	if req.Theme != "" {
		h.Theme = req.Theme
	}
	if req.Tags != nil {
		h.Tags = req.Tags
	}
	if !req.StartDate.IsZero() {
		h.StartDate = req.StartDate
	}
	if !req.EndDate.IsZero() {
		h.EndDate = req.EndDate
	}
	if !req.RegistrationDeadline.IsZero() {
		h.RegistrationDeadline = req.RegistrationDeadline
	}
	if req.RegistrationURL != "" {
		h.RegistrationURL = req.RegistrationURL
	}
	if req.CoverImageURL != "" {
		h.CoverImageURL = req.CoverImageURL
	}
}

// ValidateHackathon handles POST /api/hackathons/:id/validate: the AI-backed
// accuracy check.
func (s *Server) ValidateHackathon(c *gin.Context) {
	if s.ai == nil || !s.ai.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI validation is not configured"})
		return
	}
	if !s.aiLimiter.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "validation rate limit exceeded, try again shortly"})
		return
	}

	h, err := s.store.GetHackathon(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("Failed to get hackathon for validation", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hackathon"})
		return
	}
	if h == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hackathon not found"})
		return
	}

	result, err := s.ai.ValidateHackathon(c.Request.Context(), h)
	if err != nil {
		slog.Error("AI validation failed", "id", h.ID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "validation service failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// HackathonFeed handles GET /api/hackathons/feed: the machine-readable dump
// of the listing collection.
func (s *Server) HackathonFeed(c *gin.Context) {
	hackathons, err := s.store.ListHackathons(c.Request.Context())
	if err != nil {
		slog.Error("Failed to build feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"generatedAt": time.Now().UTC(),
		"count":       len(hackathons),
		"hackathons":  hackathons,
	})
}

// StreamHackathons handles GET /api/hackathons/stream: server-sent events
// re-delivering the full listing snapshot on every remote change. The
// subscription ends silently when the client disconnects.
func (s *Server) StreamHackathons(c *gin.Context) {
	snapshots := s.store.WatchHackathons(c.Request.Context())

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		snapshot, ok := <-snapshots
		if !ok {
			return false
		}
		c.SSEvent("hackathons", snapshot)
		return true
	})
}
