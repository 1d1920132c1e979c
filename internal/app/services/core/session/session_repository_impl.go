package session

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionRepository struct {
	RedisRepository contracts.RedisRepository
}

// NewSessionRepository keeps gateway sessions in Redis, one JSON value per
// session id.
func NewSessionRepository(redisRepository contracts.RedisRepository) contracts.SessionRepository {
	return &sessionRepository{
		RedisRepository: redisRepository,
	}
}

func (repo *sessionRepository) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return repo.RedisRepository.Set(ctx, sessionKey(session.ID), session, ttl)
}

func (repo *sessionRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := repo.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseSessionData(err)
	}
	return session, nil
}

func (repo *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return repo.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionKeyPrefix + sessionID
}
