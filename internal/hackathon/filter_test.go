package hackathon

import (
	"testing"

	"github.com/hackmyway/hackmyway/internal/models"
)

func sample() []models.Hackathon {
	return []models.Hackathon{
		{
			ID: "a", Title: "Innovate India", OrganizerName: "TechMinds",
			Mode: "Offline", Location: "Mumbai", Theme: "AI/ML",
			Difficulty: "Beginner", SourcePlatform: "User Created",
			PrizeMoney: 40000, Tags: []string{"students", "genai"},
		},
		{
			ID: "b", Title: "Web3 Challenge", OrganizerName: "ChainWorks",
			Mode: "Online", Location: "Remote", Theme: "Web3",
			Difficulty: "Advanced", SourcePlatform: "Devfolio",
			PrizeMoney: 120000,
		},
		{
			ID: "c", Title: "Code for a Cause", OrganizerName: "Helping Hands",
			Mode: "Hybrid", Location: "Bangalore", Theme: "Social Good",
			Difficulty: "Intermediate", SourcePlatform: "MLH",
			PrizeMoney: 600000, Tags: []string{"ngo"},
		},
	}
}

func ids(hs []models.Hackathon) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Hackathon, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestCriteria_EmptyMatchesAll(t *testing.T) {
	got := Criteria{}.Filter(sample())
	assertIDs(t, got, "a", "b", "c")
}

func TestCriteria_Facets(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"single mode", Criteria{Modes: []string{"Online"}}, []string{"b"}},
		{"or within facet", Criteria{Modes: []string{"Online", "Hybrid"}}, []string{"b", "c"}},
		{"and across facets", Criteria{Modes: []string{"Online", "Hybrid"}, Themes: []string{"Web3"}}, []string{"b"}},
		{"location literal", Criteria{Locations: []string{"Mumbai"}}, []string{"a"}},
		{"online location matches online mode", Criteria{Locations: []string{"Online"}}, []string{"b"}},
		{"difficulty", Criteria{Difficulties: []string{"Intermediate"}}, []string{"c"}},
		{"source", Criteria{Sources: []string{"Devfolio", "MLH"}}, []string{"b", "c"}},
		{"prize under 50k", Criteria{Prizes: []string{"Under ₹50K"}}, []string{"a"}},
		{"prize multi range", Criteria{Prizes: []string{"Under ₹50K", "₹5L-₹10L"}}, []string{"a", "c"}},
		{"prize boundary exclusive of next band", Criteria{Prizes: []string{"₹50K-₹1L"}}, []string{}},
		{"unknown prize label matches nothing", Criteria{Prizes: []string{"bogus"}}, []string{}},
		{"search title", Criteria{Search: "innovate"}, []string{"a"}},
		{"search organizer", Criteria{Search: "chainworks"}, []string{"b"}},
		{"search tag", Criteria{Search: "NGO"}, []string{"c"}},
		{"search theme", Criteria{Search: "social"}, []string{"c"}},
		{"search no match", Criteria{Search: "quantum"}, []string{}},
		{"search and facet combine", Criteria{Search: "a", Modes: []string{"Offline"}}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, tt.c.Filter(sample()), tt.want...)
		})
	}
}

func TestCriteria_PrizeBands(t *testing.T) {
	// Each band is inclusive of both bounds and the partition has no gaps.
	cases := []struct {
		prize int
		label string
	}{
		{0, "Under ₹50K"},
		{50000, "Under ₹50K"},
		{50001, "₹50K-₹1L"},
		{100000, "₹50K-₹1L"},
		{100001, "₹1L-₹5L"},
		{500001, "₹5L-₹10L"},
		{1000000, "₹5L-₹10L"},
		{1000001, "Above ₹10L"},
		{25000000, "Above ₹10L"},
	}
	for _, tc := range cases {
		h := models.Hackathon{ID: "x", PrizeMoney: tc.prize}
		for _, r := range PrizeRanges {
			c := Criteria{Prizes: []string{r.Label}}
			want := r.Label == tc.label
			if got := c.Matches(h); got != want {
				t.Errorf("prize %d against %q: match = %v, want %v", tc.prize, r.Label, got, want)
			}
		}
	}
}
