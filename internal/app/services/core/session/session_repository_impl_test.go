package session

import (
	"context"
	"errors"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveUsesPrefixedKey(t *testing.T) {
	redisRepo := new(MockRedisRepository)
	session := &models.Session{ID: "abc", Token: "t"}
	redisRepo.On("Set", mock.Anything, "medilabx:session:abc", session, 30*time.Minute).Return(nil).Once()

	err := NewSessionRepository(redisRepo).Save(context.Background(), session, 30*time.Minute)

	require.NoError(t, err)
	redisRepo.AssertExpectations(t)
}

func TestSessionRepository_Find(t *testing.T) {
	redisRepo := new(MockRedisRepository)
	redisRepo.On("Get", mock.Anything, "medilabx:session:abc").
		Return(`{"id":"abc","token":"t","user":{"id":3,"name":"Rina","email":"rina@lab.test","role":"doctor"}}`, nil).Once()

	session, err := NewSessionRepository(redisRepo).Find(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "t", session.Token)
	assert.Equal(t, constvars.RoleDoctor, session.User.Role)
}

func TestSessionRepository_FindMissing(t *testing.T) {
	redisRepo := new(MockRedisRepository)
	redisRepo.On("Get", mock.Anything, "medilabx:session:gone").Return("", nil).Once()

	_, err := NewSessionRepository(redisRepo).Find(context.Background(), "gone")

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestSessionRepository_FindCorrupt(t *testing.T) {
	redisRepo := new(MockRedisRepository)
	redisRepo.On("Get", mock.Anything, "medilabx:session:bad").Return("{not json", nil).Once()

	_, err := NewSessionRepository(redisRepo).Find(context.Background(), "bad")

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
}
