package contracts

import (
	"context"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmailAndUserType(ctx context.Context, email, userType string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindCounselors(ctx context.Context) ([]models.User, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, request *requests.GetProfile) (*responses.User, error)
	ListCounselors(ctx context.Context) ([]responses.Counselor, error)
}
