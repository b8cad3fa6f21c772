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

func (c *Client) registrationRef(userID, hackathonID string) *firestore.DocumentRef {
	return c.client.Collection(usersCollection).Doc(userID).
		Collection(registrationsSubcoll).Doc(hackathonID)
}

// Register records userID signing up for hackathonID and bumps the listing's
// participant count, both inside one transaction. Registering twice returns
// models.ErrAlreadyRegistered.
func (c *Client) Register(ctx context.Context, userID, hackathonID string) error {
	regRef := c.registrationRef(userID, hackathonID)
	hackRef := c.client.Collection(hackathonsCollection).Doc(hackathonID)

	err := c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(regRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil && doc.Exists() {
			return models.ErrAlreadyRegistered
		}
		if err := tx.Update(hackRef, []firestore.Update{
			{Path: "participantCount", Value: firestore.Increment(1)},
		}); err != nil {
			return err
		}
		return tx.Set(regRef, models.Registration{
			HackathonID:  hackathonID,
			RegisteredAt: time.Now(),
		})
	})
	if err == nil || err == models.ErrAlreadyRegistered {
		return err
	}
	return fmt.Errorf("failed to register for hackathon %s: %w", hackathonID, err)
}

// Unregister removes userID's registration and decrements the participant
// count. Unregistering when not registered is a no-op.
func (c *Client) Unregister(ctx context.Context, userID, hackathonID string) error {
	regRef := c.registrationRef(userID, hackathonID)
	hackRef := c.client.Collection(hackathonsCollection).Doc(hackathonID)

	err := c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(regRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return err
		}
		if !doc.Exists() {
			return nil
		}
		if err := tx.Update(hackRef, []firestore.Update{
			{Path: "participantCount", Value: firestore.Increment(-1)},
		}); err != nil {
			return err
		}
		return tx.Delete(regRef)
	})
	if err != nil {
		return fmt.Errorf("failed to unregister from hackathon %s: %w", hackathonID, err)
	}
	return nil
}

// ListRegisteredIDs returns the hackathon IDs userID has registered for.
func (c *Client) ListRegisteredIDs(ctx context.Context, userID string) ([]string, error) {
	iter := c.client.Collection(usersCollection).Doc(userID).
		Collection(registrationsSubcoll).Documents(ctx)
	defer iter.Stop()

	ids := make([]string, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate registrations: %w", err)
		}
		ids = append(ids, doc.Ref.ID)
	}
	return ids, nil
}
