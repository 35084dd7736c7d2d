package session

import (
	"context"
	"time"

	"denials-tracker-service/internal/app/config"
	"denials-tracker-service/internal/app/models"
	sharedredis "denials-tracker-service/internal/app/services/shared/redis"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/exceptions"
	"denials-tracker-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository sharedredis.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository sharedredis.RedisRepository, internalConfig *config.InternalConfig) SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (s *sessionService) Create(ctx context.Context, user string) (*models.Session, error) {
	if user == "" {
		user = constvars.SessionGuestUser
	}
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		User:      user,
		ExpiresAt: time.Now().Add(s.expiry()),
	}
	err := s.store(ctx, session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.RedisRepository.Get(ctx, constvars.SessionRedisKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	var session models.Session
	err = json.Unmarshal([]byte(data), &session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (s *sessionService) SetUser(ctx context.Context, sessionID, user string) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	session.User = user
	return s.store(ctx, session)
}

func (s *sessionService) SetSelectedPatient(ctx context.Context, sessionID, patientID string) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	session.PatientID = patientID
	return s.store(ctx, session)
}

func (s *sessionService) SetSearchResults(ctx context.Context, sessionID string, options []models.PatientOption) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	session.PatientList = options
	return s.store(ctx, session)
}

func (s *sessionService) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, constvars.SessionRedisKeyPrefix+sessionID)
}

func (s *sessionService) store(ctx context.Context, session *models.Session) error {
	return s.RedisRepository.Set(ctx, constvars.SessionRedisKeyPrefix+session.SessionID, session, s.expiry())
}

func (s *sessionService) expiry() time.Duration {
	return time.Duration(s.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
}
