package hackathon

import (
	"strings"

	"github.com/hackmyway/hackmyway/internal/models"
)

// Criteria is one filter selection per facet plus a free-text search term.
// An empty slice on a facet means no constraint on that facet.
type Criteria struct {
	Search       string
	Modes        []string
	Locations    []string
	Prizes       []string
	Themes       []string
	Difficulties []string
	Sources      []string
}

// IsZero reports whether no facet and no search term is set.
func (c Criteria) IsZero() bool {
	return c.Search == "" &&
		len(c.Modes) == 0 && len(c.Locations) == 0 && len(c.Prizes) == 0 &&
		len(c.Themes) == 0 && len(c.Difficulties) == 0 && len(c.Sources) == 0
}

// Matches evaluates h against every facet: AND across facets, OR within a
// facet's selections.
func (c Criteria) Matches(h models.Hackathon) bool {
	return c.matchesSearch(h) &&
		c.matchesModes(h) &&
		c.matchesLocations(h) &&
		c.matchesDifficulties(h) &&
		c.matchesThemes(h) &&
		c.matchesSources(h) &&
		c.matchesPrizes(h)
}

// Filter returns the members of hs matched by c, in input order.
func (c Criteria) Filter(hs []models.Hackathon) []models.Hackathon {
	out := make([]models.Hackathon, 0, len(hs))
	for _, h := range hs {
		if c.Matches(h) {
			out = append(out, h)
		}
	}
	return out
}

func (c Criteria) matchesSearch(h models.Hackathon) bool {
	if c.Search == "" {
		return true
	}
	term := strings.ToLower(c.Search)
	if strings.Contains(strings.ToLower(h.Title), term) ||
		strings.Contains(strings.ToLower(h.OrganizerName), term) ||
		strings.Contains(strings.ToLower(h.Theme), term) {
		return true
	}
	for _, tag := range h.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesModes(h models.Hackathon) bool {
	return len(c.Modes) == 0 || contains(c.Modes, h.Mode)
}

// matchesLocations treats "Online" as matching any Online-mode listing
// regardless of its location field.
func (c Criteria) matchesLocations(h models.Hackathon) bool {
	if len(c.Locations) == 0 {
		return true
	}
	if h.Location != "" && contains(c.Locations, h.Location) {
		return true
	}
	return h.Mode == models.ModeOnline && contains(c.Locations, "Online")
}

func (c Criteria) matchesDifficulties(h models.Hackathon) bool {
	return len(c.Difficulties) == 0 || (h.Difficulty != "" && contains(c.Difficulties, h.Difficulty))
}

func (c Criteria) matchesThemes(h models.Hackathon) bool {
	return len(c.Themes) == 0 || (h.Theme != "" && contains(c.Themes, h.Theme))
}

func (c Criteria) matchesSources(h models.Hackathon) bool {
	return len(c.Sources) == 0 || (h.SourcePlatform != "" && contains(c.Sources, h.SourcePlatform))
}

func (c Criteria) matchesPrizes(h models.Hackathon) bool {
	if len(c.Prizes) == 0 {
		return true
	}
	for _, label := range c.Prizes {
		r, ok := prizeRangeByLabel(label)
		if !ok {
			continue
		}
		if h.PrizeMoney >= r.Min && h.PrizeMoney <= r.Max {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
