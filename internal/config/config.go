package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ProjectID       string
	Port            string
	GeminiAPIKey    string
	GeminiModelID   string
	AllowedOrigins  []string
	AuthAudience    string
	LeaderboardSize int
	ScrapeInterval  time.Duration
	SeedOrganizerID string
}

func Load() (*Config, error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT environment variable is required but not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		slog.Info("Defaulting to port", "port", port)
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, AI listing validation will be unavailable")
	}

	geminiModelID := os.Getenv("GEMINI_MODEL_ID")
	if geminiModelID == "" {
		geminiModelID = "gemini-2.0-flash"
	}

	allowedOrigins := []string{"*"}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		allowedOrigins = []string{v}
	}

	// Empty audience accepts tokens minted for any client.
	authAudience := os.Getenv("AUTH_AUDIENCE")

	leaderboardSize := 50
	if v := os.Getenv("LEADERBOARD_SIZE"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LEADERBOARD_SIZE %q: %w", v, err)
		}
		leaderboardSize = parsed
	}

	scrapeIntervalStr := os.Getenv("SCRAPE_INTERVAL")
	if scrapeIntervalStr == "" {
		scrapeIntervalStr = "6h"
	}
	scrapeInterval, err := time.ParseDuration(scrapeIntervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPE_INTERVAL %q: %w", scrapeIntervalStr, err)
	}

	// Scraped listings and seed notifications are attributed to this account.
	seedOrganizerID := os.Getenv("SEED_ORGANIZER_ID")
	if seedOrganizerID == "" {
		seedOrganizerID = "hackmyway-bot"
	}

	return &Config{
		ProjectID:       projectID,
		Port:            port,
		GeminiAPIKey:    geminiAPIKey,
		GeminiModelID:   geminiModelID,
		AllowedOrigins:  allowedOrigins,
		AuthAudience:    authAudience,
		LeaderboardSize: leaderboardSize,
		ScrapeInterval:  scrapeInterval,
		SeedOrganizerID: seedOrganizerID,
	}, nil
}
