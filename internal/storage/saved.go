package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hackmyway/hackmyway/internal/models"
)

func (c *Client) savedRef(userID, hackathonID string) *firestore.DocumentRef {
	return c.client.Collection(usersCollection).Doc(userID).
		Collection(savedSubcollection).Doc(hackathonID)
}

// ListSavedIDs returns the hackathon IDs in userID's saved set.
func (c *Client) ListSavedIDs(ctx context.Context, userID string) ([]string, error) {
	iter := c.client.Collection(usersCollection).Doc(userID).
		Collection(savedSubcollection).Documents(ctx)
	defer iter.Stop()

	ids := make([]string, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate saved hackathons: %w", err)
		}
		ids = append(ids, doc.Ref.ID)
	}
	return ids, nil
}

// ToggleSaved flips hackathonID's membership in userID's saved set and
// reports the resulting state. The read and the inverse write run in one
// transaction so two concurrent toggles cannot both observe "not saved".
func (c *Client) ToggleSaved(ctx context.Context, userID, hackathonID string) (saved bool, err error) {
	ref := c.savedRef(userID, hackathonID)
	err = c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil && doc.Exists() {
			saved = false
			return tx.Delete(ref)
		}
		saved = true
		return tx.Set(ref, models.SavedHackathon{
			HackathonID: hackathonID,
			SavedAt:     time.Now(),
		})
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle saved hackathon %s: %w", hackathonID, err)
	}
	return saved, nil
}
