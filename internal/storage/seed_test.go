package storage

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeedData_Parses(t *testing.T) {
	var seeds []seedHackathon
	if err := json.Unmarshal(seedHackathonData, &seeds); err != nil {
		t.Fatalf("embedded seed data failed to parse: %v", err)
	}
	if len(seeds) == 0 {
		t.Fatal("embedded seed data is empty")
	}

	ids := map[string]bool{}
	for _, s := range seeds {
		if s.ID == "" || s.Title == "" || s.Theme == "" || s.Description == "" {
			t.Errorf("seed %q missing required fields", s.ID)
		}
		if ids[s.ID] {
			t.Errorf("duplicate seed id %q", s.ID)
		}
		ids[s.ID] = true
		switch s.Mode {
		case "Online", "Offline", "Hybrid":
		default:
			t.Errorf("seed %q has invalid mode %q", s.ID, s.Mode)
		}
		switch s.Status {
		case "Upcoming", "Ongoing", "Ended":
		default:
			t.Errorf("seed %q has invalid status %q", s.ID, s.Status)
		}
		if s.PrizeMoney < 0 {
			t.Errorf("seed %q has negative prize", s.ID)
		}
	}
}

func TestSeedDates(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		status string
		check  func(t *testing.T, start, end, deadline time.Time)
	}{
		{
			status: "Upcoming",
			check: func(t *testing.T, start, end, deadline time.Time) {
				if !start.After(now) {
					t.Errorf("upcoming start %v not after now", start)
				}
				if !deadline.Before(start) {
					t.Errorf("deadline %v not before start %v", deadline, start)
				}
			},
		},
		{
			status: "Ongoing",
			check: func(t *testing.T, start, end, deadline time.Time) {
				if start.After(now) || end.Before(now) {
					t.Errorf("ongoing window [%v, %v] does not span now", start, end)
				}
			},
		},
		{
			status: "Ended",
			check: func(t *testing.T, start, end, deadline time.Time) {
				if !end.Before(now) {
					t.Errorf("ended end %v not before now", end)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			start, end, deadline := seedDates(tt.status, 2, now)
			if end.Before(start) {
				t.Fatalf("end %v precedes start %v", end, start)
			}
			tt.check(t, start, end, deadline)
		})
	}
}

func TestSeedDates_ZeroDurationDefaults(t *testing.T) {
	now := time.Now()
	start, end, _ := seedDates("Upcoming", 0, now)
	if !end.After(start) {
		t.Error("zero duration should still produce a non-empty window")
	}
}
