package models

import (
	"errors"
	"time"
)

// ErrHackathonExists is returned when attempting to create a hackathon that already exists.
var ErrHackathonExists = errors.New("hackathon already exists")

// ErrAlreadyRegistered is returned when a user registers twice for the same hackathon.
var ErrAlreadyRegistered = errors.New("already registered")

// ErrNotOwner is returned when a write is attempted by someone other than the owning organizer.
var ErrNotOwner = errors.New("not the owning organizer")

// Hackathon modes.
const (
	ModeOnline  = "Online"
	ModeOffline = "Offline"
	ModeHybrid  = "Hybrid"
)

// Hackathon represents a single hackathon listing.
// Temporal fields are stored as Firestore timestamps and decoded to time.Time;
// listings arriving over JSON (feed, seed data, scraped payloads) may carry
// other date shapes and go through hackathon.NormalizeDate before comparison.
type Hackathon struct {
	ID                   string    `firestore:"id" json:"id"`
	Title                string    `firestore:"title" json:"title" validate:"required"`
	OrganizerName        string    `firestore:"organizerName" json:"organizerName" validate:"required"`
	OrganizerID          string    `firestore:"organizerId,omitempty" json:"organizerId,omitempty"`
	Location             string    `firestore:"location" json:"location"`
	City                 string    `firestore:"city,omitempty" json:"city,omitempty"`
	Mode                 string    `firestore:"mode" json:"mode" validate:"required,oneof=Online Offline Hybrid"`
	StartDate            time.Time `firestore:"startDate" json:"startDate" validate:"required"`
	EndDate              time.Time `firestore:"endDate" json:"endDate" validate:"required,gtefield=StartDate"`
	RegistrationDeadline time.Time `firestore:"registrationDeadline" json:"registrationDeadline"`
	PrizeMoney           int       `firestore:"prizeMoney" json:"prizeMoney" validate:"gte=0"`
	Prize1st             int       `firestore:"prize1st,omitempty" json:"prize1st,omitempty" validate:"gte=0"`
	Prize2nd             int       `firestore:"prize2nd,omitempty" json:"prize2nd,omitempty" validate:"gte=0"`
	Prize3rd             int       `firestore:"prize3rd,omitempty" json:"prize3rd,omitempty" validate:"gte=0"`
	ParticipantCount     int       `firestore:"participantCount" json:"participantCount" validate:"gte=0"`
	MaxTeamSize          int       `firestore:"maxTeamSize,omitempty" json:"maxTeamSize,omitempty" validate:"omitempty,gte=1"`
	Difficulty           string    `firestore:"difficulty,omitempty" json:"difficulty,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Theme                string    `firestore:"theme" json:"theme" validate:"required"`
	Tags                 []string  `firestore:"tags,omitempty" json:"tags,omitempty"`
	Description          string    `firestore:"description" json:"description" validate:"required"`
	SourcePlatform       string    `firestore:"sourcePlatform,omitempty" json:"sourcePlatform,omitempty"`
	SourceURL            string    `firestore:"sourceUrl,omitempty" json:"sourceUrl,omitempty" validate:"omitempty,url"`
	RegistrationURL      string    `firestore:"registrationUrl,omitempty" json:"registrationUrl,omitempty" validate:"omitempty,url"`
	CoverImageURL        string    `firestore:"coverImageUrl,omitempty" json:"coverImageUrl,omitempty" validate:"omitempty,url"`
	IsScraped            bool      `firestore:"isScraped" json:"isScraped"`
	IsVerified           bool      `firestore:"isVerified,omitempty" json:"isVerified,omitempty"`
	Status               string    `firestore:"status,omitempty" json:"status,omitempty"`
	CreatedAt            time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	LastUpdated          time.Time `firestore:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// SavedHackathon is one entry in a user's saved set.
type SavedHackathon struct {
	HackathonID string    `firestore:"hackathonId" json:"hackathonId"`
	SavedAt     time.Time `firestore:"savedAt" json:"savedAt"`
}

// Registration records a participant signing up for a hackathon.
type Registration struct {
	HackathonID  string    `firestore:"hackathonId" json:"hackathonId"`
	RegisteredAt time.Time `firestore:"registeredAt" json:"registeredAt"`
}
