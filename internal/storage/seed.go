package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/iterator"

	"github.com/hackmyway/hackmyway/internal/models"
)

//go:embed seed_hackathons.json
var seedHackathonData []byte

type seedHackathon struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	OrganizerName   string   `json:"organizerName"`
	Location        string   `json:"location"`
	City            string   `json:"city"`
	Mode            string   `json:"mode"`
	PrizeMoney      int      `json:"prizeMoney"`
	Difficulty      string   `json:"difficulty"`
	Theme           string   `json:"theme"`
	Tags            []string `json:"tags"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	DurationDays    int      `json:"durationDays"`
	RegistrationURL string   `json:"registrationUrl"`
	MaxTeamSize     int      `json:"maxTeamSize"`
}

// SeedHackathons bulk-loads the embedded sample listings under organizerID.
// It is idempotent: when the collection already holds data, nothing is
// written and the skip is reported in the returned message.
func (c *Client) SeedHackathons(ctx context.Context, organizerID string) (string, error) {
	collectionRef := c.client.Collection(hackathonsCollection)

	// One document is enough to decide the collection is already seeded.
	iter := collectionRef.Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != iterator.Done {
		if err != nil {
			return "", fmt.Errorf("failed to check existing hackathons: %w", err)
		}
		return "Database already contains data. Seeding skipped.", nil
	}

	var seeds []seedHackathon
	if err := json.Unmarshal(seedHackathonData, &seeds); err != nil {
		return "", fmt.Errorf("failed to parse embedded seed data: %w", err)
	}

	now := time.Now()
	bulkWriter := c.client.BulkWriter(ctx)
	defer bulkWriter.End()

	count := 0
	for _, s := range seeds {
		h := models.Hackathon{
			ID:              s.ID,
			Title:           s.Title,
			OrganizerName:   s.OrganizerName,
			OrganizerID:     organizerID,
			Location:        s.Location,
			City:            s.City,
			Mode:            s.Mode,
			PrizeMoney:      s.PrizeMoney,
			Prize1st:        s.PrizeMoney,
			Difficulty:      s.Difficulty,
			Theme:           s.Theme,
			Tags:            s.Tags,
			Description:     s.Description,
			SourcePlatform:  "User Created",
			RegistrationURL: s.RegistrationURL,
			MaxTeamSize:     s.MaxTeamSize,
			Status:          s.Status,
			CreatedAt:       now,
			LastUpdated:     now,
		}
		h.StartDate, h.EndDate, h.RegistrationDeadline = seedDates(s.Status, s.DurationDays, now)

		if _, err := bulkWriter.Set(collectionRef.Doc(h.ID), h); err != nil {
			slog.Warn("Failed to queue seed write", "id", h.ID, "error", err)
			continue
		}
		count++
	}
	bulkWriter.Flush()

	slog.Info("Seeded hackathons", "count", count)
	return fmt.Sprintf("Seeded %d hackathons.", count), nil
}

// seedDates derives plausible start/end/deadline instants from a listing's
// declared lifecycle status so seeded data lands in the right tab.
func seedDates(status string, durationDays int, now time.Time) (start, end, deadline time.Time) {
	if durationDays <= 0 {
		durationDays = 2
	}
	d := time.Duration(durationDays) * 24 * time.Hour
	switch status {
	case "Ongoing":
		start = now.Add(-d / 2)
		end = start.Add(d)
		deadline = start.Add(-7 * 24 * time.Hour)
	case "Ended":
		end = now.Add(-time.Duration(7+durationDays) * 24 * time.Hour)
		start = end.Add(-d)
		deadline = start.Add(-7 * 24 * time.Hour)
	default: // Upcoming
		start = now.Add(21 * 24 * time.Hour)
		end = start.Add(d)
		deadline = start.Add(-7 * 24 * time.Hour)
	}
	return start, end, deadline
}

// SeedWelcomeNotifications writes the sample notification set for userID if
// that user has none yet.
func (c *Client) SeedWelcomeNotifications(ctx context.Context, userID string, notifications []models.Notification) error {
	iter := c.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsSubcoll).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != iterator.Done {
		if err != nil {
			return fmt.Errorf("failed to check existing notifications: %w", err)
		}
		return nil
	}

	bulkWriter := c.client.BulkWriter(ctx)
	defer bulkWriter.End()
	for _, n := range notifications {
		ref := c.client.Collection(usersCollection).Doc(userID).
			Collection(notificationsSubcoll).Doc(n.ID)
		if _, err := bulkWriter.Set(ref, n); err != nil {
			slog.Warn("Failed to queue notification seed", "id", n.ID, "error", err)
		}
	}
	bulkWriter.Flush()
	return nil
}
