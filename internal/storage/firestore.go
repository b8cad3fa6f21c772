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

const (
	hackathonsCollection = "hackathons"
	usersCollection      = "users"
	savedSubcollection   = "savedHackathons"
	notificationsSubcoll = "notifications"
	registrationsSubcoll = "registrations"
)

type Client struct {
	client *firestore.Client
}

func New(ctx context.Context, projectID string) (*Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %w", err)
	}
	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GetHackathon retrieves a hackathon by document ID. Returns nil, nil when
// the document does not exist.
func (c *Client) GetHackathon(ctx context.Context, id string) (*models.Hackathon, error) {
	doc, err := c.client.Collection(hackathonsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hackathon %s: %w", id, err)
	}
	if !doc.Exists() {
		return nil, nil
	}

	var h models.Hackathon
	if err := doc.DataTo(&h); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hackathon data: %w", err)
	}
	h.ID = doc.Ref.ID
	return &h, nil
}

// TryCreateHackathon creates a new hackathon document. Returns
// models.ErrHackathonExists if the document is already present.
func (c *Client) TryCreateHackathon(ctx context.Context, h models.Hackathon) error {
	docRef := c.client.Collection(hackathonsCollection).Doc(h.ID)
	// Create fails if the document already exists.
	if _, err := docRef.Create(ctx, h); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return models.ErrHackathonExists
		}
		return fmt.Errorf("failed to create hackathon %s: %w", h.ID, err)
	}
	return nil
}

// UpdateHackathon rewrites the mutable listing fields of an existing document.
func (c *Client) UpdateHackathon(ctx context.Context, h models.Hackathon) error {
	docRef := c.client.Collection(hackathonsCollection).Doc(h.ID)
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "title", Value: h.Title},
		{Path: "organizerName", Value: h.OrganizerName},
		{Path: "location", Value: h.Location},
		{Path: "city", Value: h.City},
		{Path: "mode", Value: h.Mode},
		{Path: "startDate", Value: h.StartDate},
		{Path: "endDate", Value: h.EndDate},
		{Path: "registrationDeadline", Value: h.RegistrationDeadline},
		{Path: "prizeMoney", Value: h.PrizeMoney},
		{Path: "difficulty", Value: h.Difficulty},
		{Path: "theme", Value: h.Theme},
		{Path: "tags", Value: h.Tags},
		{Path: "description", Value: h.Description},
		{Path: "registrationUrl", Value: h.RegistrationURL},
		{Path: "coverImageUrl", Value: h.CoverImageURL},
		{Path: "maxTeamSize", Value: h.MaxTeamSize},
		{Path: "lastUpdated", Value: h.LastUpdated},
	})
	if err != nil {
		return fmt.Errorf("failed to update hackathon %s: %w", h.ID, err)
	}
	return nil
}

// ListHackathons returns the whole listing collection.
func (c *Client) ListHackathons(ctx context.Context) ([]models.Hackathon, error) {
	return c.queryHackathons(ctx, c.client.Collection(hackathonsCollection).Query)
}

// ListHackathonsByOrganizer returns the listings owned by organizerID.
func (c *Client) ListHackathonsByOrganizer(ctx context.Context, organizerID string) ([]models.Hackathon, error) {
	q := c.client.Collection(hackathonsCollection).Where("organizerId", "==", organizerID)
	return c.queryHackathons(ctx, q)
}

func (c *Client) queryHackathons(ctx context.Context, q firestore.Query) ([]models.Hackathon, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	hackathons := make([]models.Hackathon, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate hackathons: %w", err)
		}
		var h models.Hackathon
		if err := doc.DataTo(&h); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hackathon %s: %w", doc.Ref.ID, err)
		}
		h.ID = doc.Ref.ID
		hackathons = append(hackathons, h)
	}
	return hackathons, nil
}

// NewHackathonID allocates a fresh document ID without writing anything.
func (c *Client) NewHackathonID() string {
	return c.client.Collection(hackathonsCollection).NewDoc().ID
}
