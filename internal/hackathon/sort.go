package hackathon

import (
	"sort"
	"time"

	"github.com/hackmyway/hackmyway/internal/models"
)

// SortKey selects the comparator used by SortListings.
type SortKey string

const (
	SortUpcoming  SortKey = "upcoming"   // start date ascending (default)
	SortPrizeDesc SortKey = "prize-desc" // prize high to low
	SortPrizeAsc  SortKey = "prize-asc"  // prize low to high
	SortDeadline  SortKey = "deadline"   // registration deadline ascending
	SortRecent    SortKey = "recent"     // end date descending
)

// ParseSortKey returns the key named by s, defaulting to SortUpcoming.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPrizeDesc, SortPrizeAsc, SortDeadline, SortRecent:
		return SortKey(s)
	}
	return SortUpcoming
}

// sortMillis flattens a possibly-missing date for comparison. A missing date
// compares as the earliest possible instant.
func sortMillis(v any) int64 {
	t, ok := NormalizeDate(v)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// SortListings orders hs in place by key. The sort is not stable; callers
// must not rely on the relative order of equal keys.
func SortListings(hs []models.Hackathon, key SortKey) {
	var less func(a, b models.Hackathon) bool
	switch key {
	case SortPrizeDesc:
		less = func(a, b models.Hackathon) bool { return a.PrizeMoney > b.PrizeMoney }
	case SortPrizeAsc:
		less = func(a, b models.Hackathon) bool { return a.PrizeMoney < b.PrizeMoney }
	case SortDeadline:
		less = func(a, b models.Hackathon) bool {
			return sortMillis(a.RegistrationDeadline) < sortMillis(b.RegistrationDeadline)
		}
	case SortRecent:
		less = func(a, b models.Hackathon) bool { return sortMillis(a.EndDate) > sortMillis(b.EndDate) }
	default:
		less = func(a, b models.Hackathon) bool { return sortMillis(a.StartDate) < sortMillis(b.StartDate) }
	}
	sort.Slice(hs, func(i, j int) bool { return less(hs[i], hs[j]) })
}

func sortByEndDesc(hs []models.Hackathon) {
	SortListings(hs, SortRecent)
}

// Pipeline runs the full browse transformation: filter, sort, and, when
// status names a bucket, classify against now.
func Pipeline(hs []models.Hackathon, c Criteria, key SortKey, status Status, now time.Time) []models.Hackathon {
	out := c.Filter(hs)
	SortListings(out, key)
	if status != StatusNone {
		out = Bucket(out, status, now)
	}
	return out
}
