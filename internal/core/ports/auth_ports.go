package ports

import (
	"context"

	"github.com/google/uuid"
)

type AuthService interface {
	// StartSession finds or creates the user for email and returns a signed
	// access token for it.
	StartSession(ctx context.Context, email, name string) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
}
