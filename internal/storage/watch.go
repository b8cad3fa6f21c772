package storage

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hackmyway/hackmyway/internal/models"
)

// WatchHackathons subscribes to the listing collection and delivers a full
// snapshot on every remote change, starting with the current contents. The
// channel is closed when ctx is cancelled or the listener fails; cancellation
// is silent, consistent with a consumer going away mid-request.
func (c *Client) WatchHackathons(ctx context.Context) <-chan []models.Hackathon {
	out := make(chan []models.Hackathon, 1)

	go func() {
		defer close(out)
		snapIter := c.client.Collection(hackathonsCollection).Snapshots(ctx)
		defer snapIter.Stop()

		for {
			snap, err := snapIter.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || ctx.Err() != nil {
					return
				}
				slog.Error("Hackathon snapshot listener failed", "error", err)
				return
			}

			hackathons, err := decodeHackathonDocs(snap.Documents)
			if err != nil {
				slog.Warn("Failed to decode hackathon snapshot", "error", err)
				continue
			}

			select {
			case out <- hackathons:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func decodeHackathonDocs(iter *firestore.DocumentIterator) ([]models.Hackathon, error) {
	defer iter.Stop()
	hackathons := make([]models.Hackathon, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return hackathons, nil
		}
		if err != nil {
			return nil, err
		}
		var h models.Hackathon
		if err := doc.DataTo(&h); err != nil {
			return nil, err
		}
		h.ID = doc.Ref.ID
		hackathons = append(hackathons, h)
	}
}
