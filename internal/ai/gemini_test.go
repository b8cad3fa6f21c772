package ai

import (
	"context"
	"testing"
	"time"

	"github.com/hackmyway/hackmyway/internal/models"
)

func TestNewClient_NoKey(t *testing.T) {
	client, err := NewClient(context.Background(), "", "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Error("expected nil client when no API key is provided")
	}
	if client.Available() {
		t.Error("nil client must report unavailable")
	}
}

func TestValidateHackathon_NilClientDegrades(t *testing.T) {
	var client *Client
	result, err := client.ValidateHackathon(context.Background(), &models.Hackathon{Title: "x"})
	if err != nil {
		t.Fatalf("nil client should not error, got: %v", err)
	}
	if result != nil {
		t.Error("nil client should return nil result")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.73, 0.73},
		{1, 1},
		{1.8, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(time.Time{}); got != "unknown" {
		t.Errorf("zero time = %q, want unknown", got)
	}
	d := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if got := formatDate(d); got != "2024-06-10T00:00:00Z" {
		t.Errorf("got %q", got)
	}
}
