package hackathon

import (
	"time"

	"github.com/hackmyway/hackmyway/internal/models"
)

// Status is the temporal bucket of a listing relative to some instant.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusPast     Status = "past"
	// StatusNone marks a listing missing a start or end date. Such listings
	// belong to no bucket rather than a guessed one.
	StatusNone Status = ""
)

// ParseStatus reports whether s names a real bucket.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusUpcoming, StatusOngoing, StatusPast:
		return Status(s), true
	}
	return StatusNone, false
}

// ClassifyStatus buckets h by now. Ongoing is checked before upcoming so a
// listing starting exactly at now is never misclassified as upcoming.
func ClassifyStatus(h models.Hackathon, now time.Time) Status {
	start, startOK := NormalizeDate(h.StartDate)
	end, endOK := NormalizeDate(h.EndDate)
	if !startOK || !endOK {
		return StatusNone
	}
	switch {
	case !start.After(now) && !end.Before(now):
		return StatusOngoing
	case start.After(now):
		return StatusUpcoming
	default:
		return StatusPast
	}
}

// Bucket returns the listings from hs whose status at now equals status,
// preserving input order. The past bucket is the exception: it is always
// re-sorted by end date descending regardless of how its input was ordered.
func Bucket(hs []models.Hackathon, status Status, now time.Time) []models.Hackathon {
	out := make([]models.Hackathon, 0, len(hs))
	for _, h := range hs {
		if ClassifyStatus(h, now) == status {
			out = append(out, h)
		}
	}
	if status == StatusPast {
		sortByEndDesc(out)
	}
	return out
}
