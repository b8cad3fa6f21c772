package scraper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hackmyway/hackmyway/internal/models"
)

// Store is the slice of the listing store the ingestor needs.
type Store interface {
	GetHackathon(ctx context.Context, id string) (*models.Hackathon, error)
	TryCreateHackathon(ctx context.Context, h models.Hackathon) error
	UpdateHackathon(ctx context.Context, h models.Hackathon) error
}

// Announcer publishes a notification for freshly ingested listings.
type Announcer interface {
	NewHackathonPosted(ctx context.Context, userID string, h models.Hackathon)
}

// Ingestor reconciles scraped listings against the store.
type Ingestor struct {
	store     Store
	announcer Announcer
	// announceTo receives one notification per newly created listing.
	// Empty disables announcements.
	announceTo string
}

func NewIngestor(store Store, announcer Announcer, announceTo string) *Ingestor {
	return &Ingestor{store: store, announcer: announcer, announceTo: announceTo}
}

// Reconcile writes scraped listings into the store. New listings are created
// and announced; previously seen listings have their mutable fields refreshed.
// Listings missing either date are stored anyway but never surface in a status
// bucket. One listing failing does not stop the batch.
func (in *Ingestor) Reconcile(ctx context.Context, listings []models.Hackathon) (created, updated int) {
	now := time.Now()
	for _, h := range listings {
		h.LastUpdated = now

		err := in.store.TryCreateHackathon(ctx, withCreateDefaults(h, now))
		if err == nil {
			created++
			slog.Info("Ingested new hackathon", "id", h.ID, "title", h.Title, "platform", h.SourcePlatform)
			if in.announcer != nil && in.announceTo != "" {
				in.announcer.NewHackathonPosted(ctx, in.announceTo, h)
			}
			continue
		}
		if !errors.Is(err, models.ErrHackathonExists) {
			slog.Error("Failed to ingest hackathon", "id", h.ID, "title", h.Title, "error", err)
			continue
		}

		if err := in.refresh(ctx, h); err != nil {
			slog.Error("Failed to refresh hackathon", "id", h.ID, "error", err)
			continue
		}
		updated++
	}
	slog.Info("Reconciled scraped listings", "total", len(listings), "created", created, "updated", updated)
	return created, updated
}

// refresh overlays a rescrape onto the stored listing. Fields the aggregator
// no longer exposes keep their stored values.
func (in *Ingestor) refresh(ctx context.Context, scraped models.Hackathon) error {
	existing, err := in.store.GetHackathon(ctx, scraped.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		// Deleted between create attempt and refresh. Next run recreates it.
		return nil
	}
	// Manual edits win over rescrapes.
	if !existing.IsScraped {
		return nil
	}

	merged := *existing
	merged.Title = scraped.Title
	merged.OrganizerName = scraped.OrganizerName
	merged.Mode = scraped.Mode
	merged.LastUpdated = scraped.LastUpdated
	if scraped.Theme != "" {
		merged.Theme = scraped.Theme
	}
	if scraped.Location != "" {
		merged.Location = scraped.Location
	}
	if !scraped.StartDate.IsZero() {
		merged.StartDate = scraped.StartDate
	}
	if !scraped.EndDate.IsZero() {
		merged.EndDate = scraped.EndDate
	}
	if !scraped.RegistrationDeadline.IsZero() {
		merged.RegistrationDeadline = scraped.RegistrationDeadline
	}
	if scraped.PrizeMoney > 0 {
		merged.PrizeMoney = scraped.PrizeMoney
	}
	if scraped.RegistrationURL != "" {
		merged.RegistrationURL = scraped.RegistrationURL
	}
	return in.store.UpdateHackathon(ctx, merged)
}

func withCreateDefaults(h models.Hackathon, now time.Time) models.Hackathon {
	h.CreatedAt = now
	if h.Location == "" {
		h.Location = "Online"
	}
	if h.Theme == "" {
		h.Theme = "Open Innovation"
	}
	h.Status = "pending_review"
	return h
}
