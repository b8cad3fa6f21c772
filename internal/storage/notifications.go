package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/hackmyway/hackmyway/internal/models"
)

// ListNotifications returns userID's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	iter := c.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsSubcoll).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	notifications := make([]models.Notification, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notifications: %w", err)
		}
		var n models.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification %s: %w", doc.Ref.ID, err)
		}
		n.ID = doc.Ref.ID
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// AddNotification writes a notification document for userID.
func (c *Client) AddNotification(ctx context.Context, userID string, n models.Notification) error {
	docRef := c.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsSubcoll).Doc(n.ID)
	if _, err := docRef.Set(ctx, n); err != nil {
		return fmt.Errorf("failed to add notification for %s: %w", userID, err)
	}
	return nil
}

// MarkNotificationRead flags a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	docRef := c.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsSubcoll).Doc(notificationID)
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}
