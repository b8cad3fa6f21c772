package auth

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

// Identity is the opaque current-user identity supplied by the token issuer.
type Identity struct {
	UID   string
	Name  string
	Email string
}

// Verifier checks a bearer credential and resolves it to an Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type googleVerifier struct {
	audience string
}

// NewVerifier returns a Verifier backed by Google ID token validation.
// audience may be empty, in which case the token's audience is not pinned.
func NewVerifier(audience string) Verifier {
	return &googleVerifier{audience: audience}
}

func (g *googleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, token, g.audience)
	if err != nil {
		return nil, fmt.Errorf("id token validation failed: %w", err)
	}

	id := &Identity{UID: payload.Subject}
	if name, ok := payload.Claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := payload.Claims["email"].(string); ok {
		id.Email = email
	}
	if id.UID == "" {
		return nil, fmt.Errorf("id token carries no subject")
	}
	return id, nil
}

// BearerToken extracts the credential from an Authorization header value.
// Returns "" when the header is absent or not a bearer scheme.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
