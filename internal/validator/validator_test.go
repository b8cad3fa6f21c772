package validator

import (
	"testing"
	"time"

	"github.com/hackmyway/hackmyway/internal/models"
)

func validHackathon() models.Hackathon {
	return models.Hackathon{
		ID:            "h1",
		Title:         "Test Hack",
		OrganizerName: "Org",
		Mode:          "Online",
		Theme:         "AI/ML",
		Description:   "A test hackathon.",
		StartDate:     time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateStruct_ValidHackathon(t *testing.T) {
	v := New()
	if err := v.ValidateStruct(validHackathon()); err != nil {
		t.Errorf("valid hackathon rejected: %v", err)
	}
}

func TestValidateStruct_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Hackathon)
	}{
		{"missing title", func(h *models.Hackathon) { h.Title = "" }},
		{"invalid mode", func(h *models.Hackathon) { h.Mode = "Virtual" }},
		{"end before start", func(h *models.Hackathon) {
			h.EndDate = h.StartDate.Add(-24 * time.Hour)
		}},
		{"negative prize", func(h *models.Hackathon) { h.PrizeMoney = -1 }},
		{"invalid difficulty", func(h *models.Hackathon) { h.Difficulty = "Expert" }},
		{"bad registration url", func(h *models.Hackathon) { h.RegistrationURL = "not a url" }},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHackathon()
			tt.mutate(&h)
			if err := v.ValidateStruct(h); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateStruct_EndEqualsStartAllowed(t *testing.T) {
	h := validHackathon()
	h.EndDate = h.StartDate
	if err := New().ValidateStruct(h); err != nil {
		t.Errorf("single-day hackathon rejected: %v", err)
	}
}
