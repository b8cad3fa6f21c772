package server

import (
	"context"

	"github.com/hackmyway/hackmyway/internal/ai"
	"github.com/hackmyway/hackmyway/internal/models"
)

// HackathonStore abstracts listing persistence.
type HackathonStore interface {
	GetHackathon(ctx context.Context, id string) (*models.Hackathon, error)
	TryCreateHackathon(ctx context.Context, h models.Hackathon) error
	UpdateHackathon(ctx context.Context, h models.Hackathon) error
	ListHackathons(ctx context.Context) ([]models.Hackathon, error)
	ListHackathonsByOrganizer(ctx context.Context, organizerID string) ([]models.Hackathon, error)
	NewHackathonID() string
	WatchHackathons(ctx context.Context) <-chan []models.Hackathon
}

// UserStore abstracts per-user state: profile, saved set, registrations,
// notifications.
type UserStore interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, p models.UserProfile) error
	Leaderboard(ctx context.Context, limit int) ([]models.UserProfile, error)

	ListSavedIDs(ctx context.Context, userID string) ([]string, error)
	ToggleSaved(ctx context.Context, userID, hackathonID string) (bool, error)

	Register(ctx context.Context, userID, hackathonID string) error
	Unregister(ctx context.Context, userID, hackathonID string) error
	ListRegisteredIDs(ctx context.Context, userID string) ([]string, error)

	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}

// SeedStore abstracts the bulk-seed operation.
type SeedStore interface {
	SeedHackathons(ctx context.Context, organizerID string) (string, error)
	SeedWelcomeNotifications(ctx context.Context, userID string, notifications []models.Notification) error
}

// Store is the full persistence surface the server consumes.
type Store interface {
	HackathonStore
	UserStore
	SeedStore
}

// ListingValidator abstracts the AI accuracy check.
type ListingValidator interface {
	Available() bool
	ValidateHackathon(ctx context.Context, h *models.Hackathon) (*ai.ValidationResult, error)
}

// Notifier abstracts transient per-user notifications emitted on state
// changes.
type Notifier interface {
	NewHackathonPosted(ctx context.Context, userID string, h models.Hackathon)
	RegistrationConfirmed(ctx context.Context, userID string, h models.Hackathon)
}
