package models

import "time"

// User types.
const (
	UserTypeParticipant  = "participant"
	UserTypeOrganization = "organization"
)

// UserProfile is the per-user document under users/{uid}.
type UserProfile struct {
	ID           string    `firestore:"id" json:"id"`
	Name         string    `firestore:"name" json:"name" validate:"required"`
	Email        string    `firestore:"email" json:"email" validate:"required,email"`
	AvatarURL    string    `firestore:"avatarUrl,omitempty" json:"avatarUrl,omitempty" validate:"omitempty,url"`
	UserType     string    `firestore:"userType,omitempty" json:"userType,omitempty" validate:"omitempty,oneof=participant organization"`
	Bio          string    `firestore:"bio,omitempty" json:"bio,omitempty"`
	Skills       []string  `firestore:"skills,omitempty" json:"skills,omitempty"`
	College      string    `firestore:"college,omitempty" json:"college,omitempty"`
	Organization string    `firestore:"organization,omitempty" json:"organization,omitempty"`
	Country      string    `firestore:"country,omitempty" json:"country,omitempty"`
	XP           int       `firestore:"xp,omitempty" json:"xp,omitempty" validate:"gte=0"`
	Badges       []string  `firestore:"badges,omitempty" json:"badges,omitempty"`
	CreatedAt    time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Notification icon names understood by the client.
const (
	IconTrophy        = "Trophy"
	IconPlusCircle    = "PlusCircle"
	IconAlertTriangle = "AlertTriangle"
	IconBell          = "Bell"
)

// Notification is one entry under users/{uid}/notifications.
type Notification struct {
	ID          string    `firestore:"id" json:"id"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	Icon        string    `firestore:"icon,omitempty" json:"icon,omitempty"`
	IsRead      bool      `firestore:"isRead" json:"isRead"`
	Link        string    `firestore:"link,omitempty" json:"link,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
