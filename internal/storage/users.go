package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hackmyway/hackmyway/internal/models"
)

// GetProfile retrieves a user profile. Returns nil, nil when no profile
// document exists for the user yet.
func (c *Client) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	doc, err := c.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}
	if !doc.Exists() {
		return nil, nil
	}

	var p models.UserProfile
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile data: %w", err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

// UpsertProfile merges the given fields into the user's profile document,
// creating it if absent. Fields left zero in p are not cleared.
func (c *Client) UpsertProfile(ctx context.Context, p models.UserProfile) error {
	docRef := c.client.Collection(usersCollection).Doc(p.ID)
	fields := map[string]any{"id": p.ID}
	if p.Name != "" {
		fields["name"] = p.Name
	}
	if p.Email != "" {
		fields["email"] = p.Email
	}
	if p.AvatarURL != "" {
		fields["avatarUrl"] = p.AvatarURL
	}
	if p.UserType != "" {
		fields["userType"] = p.UserType
	}
	if p.Bio != "" {
		fields["bio"] = p.Bio
	}
	if p.Skills != nil {
		fields["skills"] = p.Skills
	}
	if p.College != "" {
		fields["college"] = p.College
	}
	if p.Organization != "" {
		fields["organization"] = p.Organization
	}
	if p.Country != "" {
		fields["country"] = p.Country
	}
	if !p.CreatedAt.IsZero() {
		fields["createdAt"] = p.CreatedAt
	}
	if _, err := docRef.Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", p.ID, err)
	}
	return nil
}

// Leaderboard returns the top limit users ordered by XP descending.
func (c *Client) Leaderboard(ctx context.Context, limit int) ([]models.UserProfile, error) {
	iter := c.client.Collection(usersCollection).
		OrderBy("xp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	users := make([]models.UserProfile, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
		}
		var p models.UserProfile
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		users = append(users, p)
	}
	return users, nil
}
