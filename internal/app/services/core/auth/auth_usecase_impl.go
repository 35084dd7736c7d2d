package auth

import (
	"context"

	"denials-tracker-service/internal/app/config"
	"denials-tracker-service/internal/app/services/core/session"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/dto/responses"
	"denials-tracker-service/internal/pkg/exceptions"
	"denials-tracker-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository UserRepository
	SessionService session.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userMongoRepository UserRepository,
	sessionService session.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.Log.Info("authUsecase.Login unknown username, staying Guest",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidUsername()
	}

	sessionData, err := uc.SessionService.Create(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	tokenString, err := utils.GenerateSessionJWT(sessionData.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, user.Username),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
	)
	return &responses.Login{
		Token: tokenString,
		User:  user.Username,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.SessionService.Delete(ctx, sessionID)
}
