package users

import (
	"context"
	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
	"newconsult-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			Log:            logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetProfile(ctx context.Context, request *requests.GetProfile) (*responses.User, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.User{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		UserType:  user.UserType,
	}, nil
}

func (uc *userUsecase) ListCounselors(ctx context.Context) ([]responses.Counselor, error) {
	counselors, err := uc.UserRepository.FindCounselors(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Counselor, 0, len(counselors))
	for _, counselor := range counselors {
		response = append(response, responses.Counselor{
			ID:             counselor.ID,
			FirstName:      counselor.FirstName,
			LastName:       counselor.LastName,
			Specialization: counselor.Specialization,
			Experience:     counselor.Experience,
			Bio:            counselor.Bio,
			HourlyRate:     counselor.HourlyRate,
		})
	}
	return response, nil
}
