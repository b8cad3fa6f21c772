package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hackmyway/hackmyway/internal/models"
)

type Client struct {
	model *genai.GenerativeModel
}

// ValidationResult is the structured verdict on a listing's accuracy.
type ValidationResult struct {
	ConfidenceRating     float64  `json:"confidence_rating"`
	ValidationSummary    string   `json:"validation_summary"`
	SuggestedResolutions []string `json:"suggested_resolutions"`
}

func NewClient(ctx context.Context, apiKey, modelID string) (*Client, error) {
	if apiKey == "" {
		return nil, nil // Return nil client if no key provided
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelID)
	model.SetTemperature(0.1) // Low temperature for deterministic output
	model.ResponseMIMEType = "application/json"

	// Define the schema for Structured Outputs
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"confidence_rating": {
				Type:        genai.TypeNumber,
				Description: "A confidence rating (0-1) indicating the likelihood that the hackathon data is accurate and not misleading.",
			},
			"validation_summary": {
				Type:        genai.TypeString,
				Description: "A summary of the validation results, highlighting any potential issues or discrepancies.",
			},
			"suggested_resolutions": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Suggested resolutions for any identified issues, each actionable by a human.",
			},
		},
		Required: []string{"confidence_rating", "validation_summary", "suggested_resolutions"},
	}

	return &Client{model: model}, nil
}

// Available reports whether an AI backend is configured.
func (c *Client) Available() bool {
	return c != nil && c.model != nil
}

// ValidateHackathon asks the model to assess a listing for misleading or
// inconsistent information.
func (c *Client) ValidateHackathon(ctx context.Context, h *models.Hackathon) (*ValidationResult, error) {
	if !c.Available() {
		return nil, nil // Graceful degradation
	}

	prompt := fmt.Sprintf(`
You are an expert in identifying potentially misleading or incorrect information in hackathon listings.

Assess the listing below and provide a confidence rating between 0 and 1 indicating the likelihood that the information is accurate and not misleading, a summary of your validation results highlighting any issues or discrepancies, and suggested resolutions meant to be performed by a human.

Title: "%s"
Description: "%s"
Organizer: "%s"
Location: "%s"
Start Date: %s
End Date: %s
Prize Money: %s
Source Platform: "%s"
Source URL: "%s"

Consider consistency (do the dates line up, is the prize plausible for this kind of event), plausibility (is the organizer known, does the location make sense), completeness (is crucial information missing), and source reliability.

Output JSON adhering to the schema.
`,
		h.Title, h.Description, h.OrganizerName, h.Location,
		formatDate(h.StartDate), formatDate(h.EndDate),
		fmt.Sprintf("₹%d", h.PrizeMoney), h.SourcePlatform, h.SourceURL)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			// Clean up potential markdown formatting just in case
			jsonStr := strings.TrimSpace(string(txt))
			jsonStr = strings.TrimPrefix(jsonStr, "```json")
			jsonStr = strings.TrimPrefix(jsonStr, "```")
			jsonStr = strings.TrimSuffix(jsonStr, "```")

			var result ValidationResult
			if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
				return nil, fmt.Errorf("failed to parse gemini response: %w", err)
			}
			result.ConfidenceRating = clamp01(result.ConfidenceRating)
			return &result, nil
		}
	}

	return nil, fmt.Errorf("no text part in response")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(time.RFC3339)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
