package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/hackmyway/hackmyway/internal/auth"
	"github.com/hackmyway/hackmyway/internal/config"
	"github.com/hackmyway/hackmyway/internal/validator"
)

const identityKey = "identity"

// auditLog is the dedicated diagnostic channel for authorization denials.
var auditLog = slog.With("channel", "audit")

type Server struct {
	store     Store
	ai        ListingValidator
	notifier  Notifier
	verifier  auth.Verifier
	validate  *validator.Validator
	config    *config.Config
	aiLimiter *rate.Limiter
}

func New(store Store, aiClient ListingValidator, n Notifier, v auth.Verifier, cfg *config.Config) *Server {
	return &Server{
		store:     store,
		ai:        aiClient,
		notifier:  n,
		verifier:  v,
		validate:  validator.New(),
		config:    cfg,
		// The AI endpoint is expensive; cap it well below the model quota.
		aiLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	corsConfig := cors.DefaultConfig()
	if len(s.config.AllowedOrigins) == 1 && s.config.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.config.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(s.identityMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/hackathons", s.ListHackathons)
		api.GET("/hackathons/feed", s.HackathonFeed)
		api.GET("/hackathons/stream", s.StreamHackathons)
		api.GET("/hackathons/:id", s.GetHackathon)
		api.POST("/hackathons", s.CreateHackathon)
		api.PATCH("/hackathons/:id", s.UpdateHackathon)
		api.POST("/hackathons/:id/validate", s.ValidateHackathon)
		api.POST("/hackathons/:id/register", s.RegisterForHackathon)
		api.DELETE("/hackathons/:id/register", s.UnregisterFromHackathon)

		api.GET("/saved", s.ListSaved)
		api.POST("/saved/:id/toggle", s.ToggleSaved)

		api.GET("/registrations", s.ListRegistrations)

		api.GET("/me", s.GetMe)
		api.PATCH("/me", s.UpdateMe)
		api.GET("/me/hackathons", s.ListMyHackathons)

		api.GET("/notifications", s.ListNotifications)
		api.POST("/notifications/:id/read", s.MarkNotificationRead)

		api.GET("/leaderboard", s.Leaderboard)

		api.POST("/admin/seed", s.SeedDatabase)
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() >= http.StatusInternalServerError {
			slog.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status())
		}
	}
}

// identityMiddleware resolves the bearer credential, if any, into an Identity
// stored on the request context. Absent or invalid credentials leave the
// request anonymous; write handlers enforce authentication themselves.
func (s *Server) identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}
		id, err := s.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			auditLog.Warn("Rejected bearer credential", "path", c.Request.URL.Path, "error", err)
			c.Next()
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// currentIdentity returns the request's identity, if authenticated.
func currentIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*auth.Identity)
	return id, ok
}

// requireIdentity responds 401 and returns false when the request is
// anonymous.
func requireIdentity(c *gin.Context) (*auth.Identity, bool) {
	id, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	return id, true
}
