package session

import (
	"context"
	"fmt"
	"time"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

const sessionKeyFormat = "session:%s"

type sessionService struct {
	redisRepository contracts.RedisRepository
	internalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		redisRepository: redisRepository,
		internalConfig:  internalConfig,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) (string, error) {
	session.ExpiresAt = time.Now().Add(ttl)

	key := fmt.Sprintf(sessionKeyFormat, session.SessionID)
	if err := s.redisRepository.Set(ctx, key, session, ttl); err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, s.internalConfig.JWT.Secret, s.internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(sessionKeyFormat, sessionID)
	data, err := s.redisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(sessionKeyFormat, sessionID)
	return s.redisRepository.Delete(ctx, key)
}
