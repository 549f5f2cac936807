package auth

import (
	"context"
	"newconsult-service/internal/app/config"
	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
	"newconsult-service/internal/pkg/exceptions"
	"newconsult-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  hashedPassword,
		Phone:     request.Phone,
		UserType:  request.UserType,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if user.IsCounselor() {
		user.LicenseNumber = request.LicenseNumber
		user.Specialization = request.Specialization
		user.Experience = request.Experience
		user.Bio = request.Bio
		user.HourlyRate = request.HourlyRate
		if user.HourlyRate == 0 {
			user.HourlyRate = 100
		}
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	return uc.buildAuthResponse(ctx, user)
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	user, err := uc.UserRepository.FindByEmailAndUserType(ctx, request.Email, request.UserType)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return uc.buildAuthResponse(ctx, user)
}

func (uc *authUsecase) LogoutUser(ctx context.Context, request *requests.Logout) error {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) buildAuthResponse(ctx context.Context, user *models.User) (*responses.Auth, error) {
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		UserType:  user.UserType,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour),
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token: token,
		User: &responses.User{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			UserType:  user.UserType,
		},
	}, nil
}
