package contracts

import (
	"context"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"time"
)

// TokenSource hands the lab backend bearer token to the API clients.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type AuthApiClient interface {
	Login(ctx context.Context, request *requests.Login) (*models.AuthGrant, error)
	FindCurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type SessionRepository interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type SessionUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Session, error)
	CheckSession(ctx context.Context, sessionID string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type Authorizer interface {
	Authorize(role, path, method string) (bool, error)
}
