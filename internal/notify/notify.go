package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackmyway/hackmyway/internal/models"
)

// NotificationStore abstracts the persistence of user notifications.
type NotificationStore interface {
	AddNotification(ctx context.Context, userID string, n models.Notification) error
}

// Notifier writes per-user notification documents. Failures are logged and
// swallowed: a missed notification never fails the operation that caused it.
type Notifier struct {
	store NotificationStore
}

func New(store NotificationStore) *Notifier {
	return &Notifier{store: store}
}

func (n *Notifier) send(ctx context.Context, userID string, notification models.Notification) {
	notification.ID = uuid.NewString()
	notification.CreatedAt = time.Now()
	if err := n.store.AddNotification(ctx, userID, notification); err != nil {
		slog.Warn("Failed to write notification", "user", userID, "title", notification.Title, "error", err)
	}
}

// NewHackathonPosted announces a freshly ingested or created listing.
func (n *Notifier) NewHackathonPosted(ctx context.Context, userID string, h models.Hackathon) {
	n.send(ctx, userID, models.Notification{
		Title:       "New Hackathon Posted",
		Description: fmt.Sprintf("%s is now accepting applications. Check it out!", h.Title),
		Icon:        models.IconPlusCircle,
		Link:        "/hackathons/" + h.ID,
	})
}

// RegistrationConfirmed confirms a participant's signup.
func (n *Notifier) RegistrationConfirmed(ctx context.Context, userID string, h models.Hackathon) {
	n.send(ctx, userID, models.Notification{
		Title:       "Registration Confirmed",
		Description: fmt.Sprintf("You are registered for %s.", h.Title),
		Icon:        models.IconBell,
		Link:        "/hackathons/" + h.ID,
	})
}

// DeadlineApproaching warns that a saved listing's registration closes soon.
func (n *Notifier) DeadlineApproaching(ctx context.Context, userID string, h models.Hackathon, daysLeft int) {
	n.send(ctx, userID, models.Notification{
		Title:       "Deadline Approaching",
		Description: fmt.Sprintf("Registration for %s closes in %d days.", h.Title, daysLeft),
		Icon:        models.IconAlertTriangle,
		Link:        "/hackathons/" + h.ID,
	})
}

// WelcomeSet is the sample notification batch written for a newly seeded
// account.
func WelcomeSet(now time.Time) []models.Notification {
	mk := func(title, description, icon, link string, read bool) models.Notification {
		return models.Notification{
			ID:          uuid.NewString(),
			Title:       title,
			Description: description,
			Icon:        icon,
			Link:        link,
			IsRead:      read,
			CreatedAt:   now,
		}
	}
	return []models.Notification{
		mk("You won 1st place!", "Congratulations on winning Innovate India 2024. Your prize will be processed shortly.", models.IconTrophy, "/hackathons/hck-001", false),
		mk("New Hackathon Posted", "Code for a Cause is now accepting applications. Check it out!", models.IconPlusCircle, "/hackathons/hck-003", false),
		mk("Deadline Approaching", "Your submission for the Web3 Builders Summit is due in 3 days.", models.IconAlertTriangle, "/hackathons/hck-002", true),
	}
}
