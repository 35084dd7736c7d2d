package auth

import (
	"context"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthUsecase is a lookup gate, not a security boundary: a username that
// exists gets a session, anything else stays Guest.
type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
